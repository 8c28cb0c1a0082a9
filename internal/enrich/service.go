// Package enrich composes the expansion and parallel-resolution engines
// into the one-pass enrichment the HTTP and CLI surfaces expose.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"citator/internal/citation"
	"citator/internal/expand"
	"citator/internal/platform/metrics"
	"citator/internal/resolver"
	dErrors "citator/pkg/domain-errors"
	"citator/pkg/platform/sentinel"
)

// Service performs one enrichment pass per citation: ambiguous expansion
// first, then concurrent parallel-citation resolution per candidate. It
// holds no cross-invocation state.
type Service struct {
	exploder     *expand.Exploder
	orchestrator *resolver.Orchestrator
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches service-level metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs the enrichment service.
func New(exploder *expand.Exploder, orchestrator *resolver.Orchestrator, opts ...Option) (*Service, error) {
	if exploder == nil {
		return nil, fmt.Errorf("exploder is required")
	}
	if orchestrator == nil {
		return nil, fmt.Errorf("orchestrator is required")
	}
	s := &Service{exploder: exploder, orchestrator: orchestrator}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Result is one enrichment outcome. Candidates are independent top-level
// citations; discoveries made while resolving a candidate hang off that
// candidate's parallel list.
type Result struct {
	Citations []*citation.Citation `json:"citations"`
}

// Enrich expands the citation against the ledger when it is ambiguous, then
// resolves parallel citations for every candidate. A citation that cannot
// be enriched comes back unchanged, never omitted; multiple plausible
// historical matches come back as multiple candidates with disambiguation
// text rather than a guess.
func (s *Service) Enrich(ctx context.Context, cite *citation.Citation) (*Result, error) {
	if cite == nil || cite.Type == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "citation with a type is required")
	}

	candidates, err := s.exploder.Explode(ctx, cite)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "ledger data not available for cited volume")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "citation expansion failed")
	}

	for _, cand := range candidates {
		found := s.orchestrator.Resolve(ctx, cand)
		cand.Parallel = append(cand.Parallel, found...)
	}

	if s.metrics != nil {
		s.metrics.IncrementEnrichments()
		s.metrics.ObserveCandidates(len(candidates))
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "enriched citation",
			"citation", cite.Citation,
			"candidates", len(candidates),
		)
	}
	return &Result{Citations: candidates}, nil
}

// Lookup expands a raw volume/page reference against the ledger without
// running source resolvers, for callers that only want the candidate view.
func (s *Service) Lookup(ctx context.Context, volume int, page string) (*Result, error) {
	if volume <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "volume must be positive")
	}
	if _, err := strconv.Atoi(page); err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "page must be numeric")
	}

	cite := citation.NewStatute(strconv.Itoa(volume), page)
	candidates, err := s.exploder.Explode(ctx, cite)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "ledger data not available for cited volume")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "ledger lookup failed")
	}
	return &Result{Citations: candidates}, nil
}
