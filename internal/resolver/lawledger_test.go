package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citator/internal/citation"
	"citator/internal/ledger"
)

func TestLawLedgerApplies(t *testing.T) {
	env := newTestEnv(t, &fakeLedger{})
	r := &lawLedgerResolver{}

	t.Run("historical law in coverage", func(t *testing.T) {
		assert.True(t, r.Applies(citation.NewLaw("public", 67, 1), env))
	})

	t.Run("modern law defers to mods", func(t *testing.T) {
		assert.False(t, r.Applies(citation.NewLaw("public", 112, 29), env))
	})

	t.Run("congress outside coverage", func(t *testing.T) {
		assert.False(t, r.Applies(citation.NewLaw("public", 90, 1), env))
	})

	t.Run("already cross-referenced", func(t *testing.T) {
		cite := citation.NewLaw("public", 67, 1)
		cite.Law.Links.Set(citation.NewLegisworksLink("42/llsl-v42-p1.pdf", ""))
		assert.False(t, r.Applies(cite, env))
	})

	t.Run("no ledger configured", func(t *testing.T) {
		assert.False(t, r.Applies(citation.NewLaw("public", 67, 1), &Environment{}))
	})
}

func TestLawLedgerResolvesStatuteIdentity(t *testing.T) {
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		42: {
			{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1,
				Topic: "Appropriations", File: "42/llsl-v42-p1.pdf"},
			{Volume: 42, Page: 5, Type: "pvtlaw", Congress: 67, Number: 1,
				Topic: "Relief of John Doe", File: "42/llsl-v42-p5.pdf"},
		},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("public", 67, 1)
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)

	require.Len(t, out.Found, 1)
	stat := out.Found[0]
	require.NotNil(t, stat.Statute)
	assert.Equal(t, "stat/42/1", stat.Statute.ID)
	assert.Equal(t, "Appropriations", stat.Title)
	assert.Empty(t, stat.Statute.Links, "the scan link lives on the law, not the nested statute")

	lw := cite.Law.Links.Get("legisworks")
	require.NotNil(t, lw)
	assert.Equal(t, "https://legisworks.org/sal/42/llsl-v42-p1.pdf", lw.PDF)
	assert.Equal(t, "Appropriations", out.Title)
}

func TestLawLedgerMatchesPrivateLawsSeparately(t *testing.T) {
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		42: {
			{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1, File: "42/a.pdf"},
			{Volume: 42, Page: 5, Type: "pvtlaw", Congress: 67, Number: 1, File: "42/b.pdf"},
		},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("private", 67, 1)
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)

	require.Len(t, out.Found, 1)
	assert.Equal(t, "stat/42/5", out.Found[0].Statute.ID)
}

func TestLawLedgerSearchesBothVolumesOfSplitCongress(t *testing.T) {
	// The 75th Congress spans two volumes; the first holds no match here and
	// the search must continue into the second.
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		50: {{Volume: 50, Page: 1, Type: "publaw", Congress: 75, Number: 1, File: "50/a.pdf"}},
		52: {{Volume: 52, Page: 3, Type: "publaw", Congress: 75, Number: 401, File: "52/b.pdf"}},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("public", 75, 401)
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)

	require.Len(t, out.Found, 1)
	assert.Equal(t, "stat/52/3", out.Found[0].Statute.ID)
}

func TestLawLedgerToleratesMissingVolume(t *testing.T) {
	// Volume 50 is absent from the store entirely; the resolver moves on to
	// volume 52 instead of failing.
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		52: {{Volume: 52, Page: 3, Type: "publaw", Congress: 75, Number: 401, File: "52/b.pdf"}},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("public", 75, 401)
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)
	require.Len(t, out.Found, 1)
	assert.Equal(t, "stat/52/3", out.Found[0].Statute.ID)
}

func TestLawLedgerNoMatchYieldsNothing(t *testing.T) {
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		42: {{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1, File: "42/a.pdf"}},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("public", 67, 999)
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)
	assert.Equal(t, Outcome{}, out)
	assert.Nil(t, cite.Law.Links.Get("legisworks"))
}

func TestLawLedgerKeepsExistingTitle(t *testing.T) {
	store := &fakeLedger{volumes: map[int][]ledger.Entry{
		42: {{Volume: 42, Page: 1, Type: "publaw", Congress: 67, Number: 1,
			Topic: "Appropriations", File: "42/a.pdf"}},
	}}
	env := newTestEnv(t, store)

	cite := citation.NewLaw("public", 67, 1)
	cite.Title = "General Appropriations Act, 1922"
	out := (&lawLedgerResolver{}).Resolve(context.Background(), cite, env)

	assert.Empty(t, out.Title, "the ledger title only fills a blank")
	assert.Equal(t, "General Appropriations Act, 1922", cite.Title)
}
