// Package httpserver builds the HTTP server the enrichment surface runs on.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server. Enrichment handlers block on external source
// fetches, so the write timeout is derived from the per-fetch budget: the
// slowest request chains two sequential fetches (landing page, then bill
// record), plus headroom for expansion and encoding.
func New(addr string, handler http.Handler, fetchTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*fetchTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
