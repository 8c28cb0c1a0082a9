package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citator/internal/citation"
	"citator/internal/expand"
	"citator/internal/ledger"
	"citator/internal/resolver"
	dErrors "citator/pkg/domain-errors"
	"citator/pkg/platform/sentinel"
)

type fakeStore struct {
	volumes map[int][]ledger.Entry
}

func (s *fakeStore) Volume(ctx context.Context, volume int) ([]ledger.Entry, error) {
	entries, ok := s.volumes[volume]
	if !ok {
		return nil, fmt.Errorf("ledger volume %d: %w", volume, sentinel.ErrNotFound)
	}
	return entries, nil
}

// stubResolver resolves statutes to a canned bill and records that it ran.
type stubResolver struct {
	ran bool
}

func (r *stubResolver) Name() string { return "stub" }

func (r *stubResolver) Applies(cite *citation.Citation, env *resolver.Environment) bool {
	return cite.Statute != nil
}

func (r *stubResolver) Resolve(ctx context.Context, cite *citation.Citation, env *resolver.Environment) resolver.Outcome {
	r.ran = true
	return resolver.Outcome{Found: []*citation.Citation{citation.NewBill(67, "hr", 1)}}
}

func newService(t *testing.T, volumes map[int][]ledger.Entry, stub *stubResolver) *Service {
	t.Helper()

	exploder, err := expand.New(&fakeStore{volumes: volumes})
	require.NoError(t, err)

	chains := map[citation.Type][]resolver.Resolver{}
	if stub != nil {
		chains[citation.TypeStatute] = []resolver.Resolver{stub}
	}
	orchestrator := resolver.NewOrchestrator(resolver.NewRegistry(chains), &resolver.Environment{})

	svc, err := New(exploder, orchestrator)
	require.NoError(t, err)
	return svc
}

func TestEnrichRejectsUntypedCitation(t *testing.T) {
	svc := newService(t, nil, nil)

	_, err := svc.Enrich(context.Background(), nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	_, err = svc.Enrich(context.Background(), &citation.Citation{})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestEnrichExpandsAndResolves(t *testing.T) {
	stub := &stubResolver{}
	svc := newService(t, map[int][]ledger.Entry{
		42: {{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1, Topic: "Appropriations"}},
	}, stub)

	result, err := svc.Enrich(context.Background(), citation.NewStatute("42", "1"))
	require.NoError(t, err)
	require.Len(t, result.Citations, 1)

	cand := result.Citations[0]
	assert.Equal(t, "Appropriations", cand.Title)
	assert.True(t, stub.ran)

	// Expansion contributes the law parallel, resolution appends the bill.
	require.Len(t, cand.Parallel, 2)
	assert.NotNil(t, cand.Parallel[0].Law)
	assert.NotNil(t, cand.Parallel[1].Bill)
}

func TestEnrichPassesThroughUnmatchedCitation(t *testing.T) {
	stub := &stubResolver{}
	svc := newService(t, map[int][]ledger.Entry{42: {}}, stub)

	cite := citation.NewStatute("42", "999")
	result, err := svc.Enrich(context.Background(), cite)
	require.NoError(t, err)
	require.Len(t, result.Citations, 1)
	assert.Same(t, cite, result.Citations[0],
		"an unmatched citation passes through as its own candidate")
	assert.True(t, stub.ran, "pass-through candidates still get source resolution")
	require.Len(t, cite.Parallel, 1)
	assert.NotNil(t, cite.Parallel[0].Bill)
}

func TestEnrichMissingVolumeIsNotFound(t *testing.T) {
	svc := newService(t, nil, nil)

	_, err := svc.Enrich(context.Background(), citation.NewStatute("42", "1"))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestLookupExpandsWithoutResolving(t *testing.T) {
	stub := &stubResolver{}
	svc := newService(t, map[int][]ledger.Entry{
		42: {{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1}},
	}, stub)

	result, err := svc.Lookup(context.Background(), 42, "1")
	require.NoError(t, err)
	require.Len(t, result.Citations, 1)
	assert.False(t, stub.ran, "lookup never contacts external sources")
}

func TestLookupValidatesArguments(t *testing.T) {
	svc := newService(t, nil, nil)

	_, err := svc.Lookup(context.Background(), 0, "1")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))

	_, err = svc.Lookup(context.Background(), 42, "95a")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
