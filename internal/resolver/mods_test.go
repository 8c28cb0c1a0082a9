package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citator/internal/citation"
)

func newMODSServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestMODSAppliesOnlyWithMODSLink(t *testing.T) {
	env := newTestEnv(t, nil)
	r := newMODSResolver(citation.TypeStatute)

	modern := citation.NewStatute("125", "284")
	assert.True(t, r.Applies(modern, env))

	historical := citation.NewStatute("43", "1")
	assert.False(t, r.Applies(historical, env))

	law := citation.NewLaw("public", 112, 29)
	assert.False(t, r.Applies(law, env), "statute resolver ignores law links")
	assert.True(t, newMODSResolver(citation.TypeLaw).Applies(law, env))
}

func TestMODSStatuteExtractsLawAndDedupes(t *testing.T) {
	// GPO repeats the law reference in every extension block of a granule.
	server := newMODSServer(t, `<?xml version="1.0"?>
<mods>
  <extension>
    <law congress="112" number="29" isPrivate="false"/>
    <shortTitle>Leahy-Smith America Invents Act</shortTitle>
  </extension>
  <extension>
    <law congress="112" number="29" isPrivate="false"/>
    <searchTitle>An Act to amend title 35</searchTitle>
  </extension>
</mods>`)

	cite := citation.NewStatute("125", "284")
	cite.Statute.Links.Get("usgpo").MODS = server.URL + "/mods.xml"

	out := newMODSResolver(citation.TypeStatute).Resolve(context.Background(), cite, newTestEnv(t, nil))
	require.Len(t, out.Found, 1, "repeated references collapse to one citation")
	require.NotNil(t, out.Found[0].Law)
	assert.Equal(t, "us-law/public/112/29", out.Found[0].Law.ID)
	assert.Equal(t, "Leahy-Smith America Invents Act", out.Title,
		"short title wins over search title")
}

func TestMODSLawExtractsPrimaryBillOnly(t *testing.T) {
	server := newMODSServer(t, `<?xml version="1.0"?>
<mods>
  <extension>
    <law congress="112" number="29" isPrivate="false"/>
    <bill congress="112" number="1249" type="hr" priority="primary"/>
    <bill congress="112" number="23" type="s" priority="secondary"/>
  </extension>
</mods>`)

	cite := citation.NewLaw("public", 112, 29)
	cite.Law.Links.Get("usgpo").MODS = server.URL + "/mods.xml"

	out := newMODSResolver(citation.TypeLaw).Resolve(context.Background(), cite, newTestEnv(t, nil))
	// The law reference matches the citation's own identity and is dropped;
	// only the primary bill survives.
	require.Len(t, out.Found, 1)
	require.NotNil(t, out.Found[0].Bill)
	assert.Equal(t, "us-bill/112/hr/1249", out.Found[0].Bill.ID)
	assert.True(t, out.Found[0].Bill.IsEnacted)
}

func TestMODSPrivateLawReference(t *testing.T) {
	server := newMODSServer(t, `<?xml version="1.0"?>
<mods>
  <extension>
    <law congress="106" number="8" isPrivate="true"/>
  </extension>
</mods>`)

	cite := citation.NewStatute("113", "1913")
	cite.Statute.Links.Get("usgpo").MODS = server.URL + "/mods.xml"

	out := newMODSResolver(citation.TypeStatute).Resolve(context.Background(), cite, newTestEnv(t, nil))
	require.Len(t, out.Found, 1)
	assert.Equal(t, "us-law/private/106/8", out.Found[0].Law.ID)
	assert.Equal(t, "Pvt. L. 106-8", out.Found[0].Citation)
}

func TestMODSSkipsReferencesAlreadyOnParallels(t *testing.T) {
	server := newMODSServer(t, `<?xml version="1.0"?>
<mods>
  <extension>
    <law congress="112" number="29" isPrivate="false"/>
  </extension>
</mods>`)

	cite := citation.NewStatute("125", "284")
	cite.Statute.Links.Get("usgpo").MODS = server.URL + "/mods.xml"
	cite.Parallel = append(cite.Parallel, citation.NewLaw("public", 112, 29))

	out := newMODSResolver(citation.TypeStatute).Resolve(context.Background(), cite, newTestEnv(t, nil))
	assert.Empty(t, out.Found, "a reference already attached in parallel is not re-emitted")
}

func TestMODSFetchFailureYieldsNothing(t *testing.T) {
	server := newMODSServer(t, "")
	server.Close()

	cite := citation.NewStatute("125", "284")
	cite.Statute.Links.Get("usgpo").MODS = server.URL + "/mods.xml"

	out := newMODSResolver(citation.TypeStatute).Resolve(context.Background(), cite, newTestEnv(t, nil))
	assert.Equal(t, Outcome{}, out)
}

func TestMODSMalformedDocumentYieldsNothing(t *testing.T) {
	server := newMODSServer(t, "<mods><extension>")

	cite := citation.NewStatute("125", "284")
	cite.Statute.Links.Get("usgpo").MODS = server.URL + "/mods.xml"

	out := newMODSResolver(citation.TypeStatute).Resolve(context.Background(), cite, newTestEnv(t, nil))
	assert.Equal(t, Outcome{}, out)
}
