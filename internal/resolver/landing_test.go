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

func TestLandingAppliesOnlyWithGovTrackLink(t *testing.T) {
	env := newTestEnv(t, nil)
	r := &landingResolver{}

	assert.True(t, r.Applies(citation.NewLaw("public", 112, 29), env))
	assert.False(t, r.Applies(citation.NewLaw("public", 67, 1), env),
		"pre-govtrack laws carry no landing link")
	assert.False(t, r.Applies(citation.NewStatute("125", "284"), env))
}

func TestLandingResolvesOriginatingBill(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/congress/bills/pl/112-29", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/congress/bills/112/hr1249", http.StatusFound)
	})
	mux.HandleFunc("/congress/bills/112/hr1249", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>bill page</html>"))
	})
	mux.HandleFunc("/congress/bills/112/hr1249.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"congress": 112,
			"number": 1249,
			"title": "H.R. 1249 (112th): Leahy-Smith America Invents Act",
			"title_without_number": "Leahy-Smith America Invents Act"
		}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cite := citation.NewLaw("public", 112, 29)
	cite.Law.Links.Get("govtrack").Landing = server.URL + "/congress/bills/pl/112-29"

	out := (&landingResolver{}).Resolve(context.Background(), cite, newTestEnv(t, nil))

	require.Len(t, out.Found, 1)
	bill := out.Found[0]
	require.NotNil(t, bill.Bill)
	assert.Equal(t, "us-bill/112/hr/1249", bill.Bill.ID)
	assert.True(t, bill.Bill.IsEnacted)
	assert.Equal(t, "Leahy-Smith America Invents Act", bill.Title,
		"title_without_number wins over the numbered display title")
	assert.Equal(t, "Leahy-Smith America Invents Act", out.Title)

	gt := bill.Bill.Links.Get("govtrack")
	require.NotNil(t, gt)
	assert.Equal(t, "https://www.govtrack.us/congress/bills/112/hr1249", gt.Landing)

	assert.Nil(t, cite.Law.Links.Get("govtrack"),
		"the law's search link is superseded by the bill's landing link")
}

func TestLandingNonBillDestinationIsANoOp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/congress/bills/pl/112-29", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search?q=112-29", http.StatusFound)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>search results</html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cite := citation.NewLaw("public", 112, 29)
	cite.Law.Links.Get("govtrack").Landing = server.URL + "/congress/bills/pl/112-29"

	out := (&landingResolver{}).Resolve(context.Background(), cite, newTestEnv(t, nil))

	assert.Equal(t, Outcome{}, out)
	assert.NotNil(t, cite.Law.Links.Get("govtrack"), "the search link stays for a human")
}

func TestLandingFetchFailureIsANoOp(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cite := citation.NewLaw("public", 112, 29)
	cite.Law.Links.Get("govtrack").Landing = server.URL + "/congress/bills/pl/112-29"

	out := (&landingResolver{}).Resolve(context.Background(), cite, newTestEnv(t, nil))
	assert.Equal(t, Outcome{}, out)
	assert.NotNil(t, cite.Law.Links.Get("govtrack"))
}

func TestLandingMalformedBillRecordIsANoOp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/congress/bills/112/hr1249", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bill page"))
	})
	mux.HandleFunc("/congress/bills/112/hr1249.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cite := citation.NewLaw("public", 112, 29)
	cite.Law.Links.Get("govtrack").Landing = server.URL + "/congress/bills/112/hr1249"

	out := (&landingResolver{}).Resolve(context.Background(), cite, newTestEnv(t, nil))
	assert.Equal(t, Outcome{}, out)
}
