// Package resolver discovers parallel citations: for each sub-type present
// on a citation it consults the matching external source, merges what it
// finds, and augments the citation's links and titles in place.
package resolver

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"citator/internal/citation"
	"citator/internal/ledger/store"
	"citator/internal/platform/config"
	"citator/internal/platform/httpclient"
)

// Environment carries the shared collaborators and credentials resolvers
// need. It is read-only during resolution.
type Environment struct {
	Client        *httpclient.Client
	Ledger        store.Store
	CourtListener config.CourtListenerConfig
	Logger        *slog.Logger
}

// Outcome is the result of one resolver run. Found holds newly discovered
// parallel citations. Title and Citation are suggestions for the shared
// top-level fields: resolvers run concurrently and must not write those
// fields themselves, so the orchestrator applies non-empty suggestions
// serially after all resolvers have joined, in sub-type order.
type Outcome struct {
	Found    []*citation.Citation
	Title    string
	Citation string
}

// Resolver resolves one citation sub-type against one external source.
//
// Resolve may mutate the citation it was given, but only the fields and
// link-map keys belonging to its own sub-type/source; writes to the shared
// Title and Citation fields go through the Outcome instead. Failures are
// source-local: a resolver logs and returns an empty Outcome rather than
// propagating transport or parse errors.
type Resolver interface {
	Name() string
	// Applies reports whether the resolver's strategy can act on the
	// citation in the given environment.
	Applies(cite *citation.Citation, env *Environment) bool
	Resolve(ctx context.Context, cite *citation.Citation, env *Environment) Outcome
}

// Registry maps each sub-type to an ordered chain of candidate resolvers.
// Chains encode precedence as first-match-wins: for a law, structured
// metadata is consulted before the historical ledger, and the ledger before
// the landing-page fallback.
type Registry struct {
	chains map[citation.Type][]Resolver
}

// NewRegistry builds a registry from explicit chains. Sub-types absent from
// the map are skipped during resolution.
func NewRegistry(chains map[citation.Type][]Resolver) *Registry {
	return &Registry{chains: chains}
}

// Default returns the standard resolver registry.
func Default() *Registry {
	return NewRegistry(map[citation.Type][]Resolver{
		citation.TypeStatute: {
			newMODSResolver(citation.TypeStatute),
		},
		citation.TypeLaw: {
			newMODSResolver(citation.TypeLaw),
			&lawLedgerResolver{},
			&landingResolver{},
		},
		citation.TypeUSC: {
			&uscValidator{},
		},
		citation.TypeReporter: {
			&caseSearchResolver{},
		},
	})
}

// resolverFor returns the first applicable resolver in the sub-type's chain,
// or nil when none applies.
func (r *Registry) resolverFor(t citation.Type, cite *citation.Citation, env *Environment) Resolver {
	for _, res := range r.chains[t] {
		if res.Applies(cite, env) {
			return res
		}
	}
	return nil
}

// Orchestrator fans resolution out across all applicable resolvers.
type Orchestrator struct {
	registry *Registry
	env      *Environment
}

// NewOrchestrator constructs an orchestrator over a registry and shared
// environment.
func NewOrchestrator(registry *Registry, env *Environment) *Orchestrator {
	return &Orchestrator{registry: registry, env: env}
}

// Resolve runs every applicable resolver concurrently and returns the
// flattened list of newly discovered parallel citations.
//
// Outcomes are slotted by sub-type position so output order is deterministic
// regardless of completion order. Resolvers never contribute errors, so the
// group wait only joins the fan-out; during the fan-out each resolver writes
// exclusively under its own sub-type's fields and link keys, and suggestions
// for the shared Title and Citation fields are applied here, serially, once
// all resolvers have joined. Concurrent mutation of the shared citation is
// race-free by construction.
func (o *Orchestrator) Resolve(ctx context.Context, cite *citation.Citation) []*citation.Citation {
	outcomes := make([]Outcome, len(citation.SubTypes))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range citation.SubTypes {
		if !cite.Has(t) {
			continue
		}
		res := o.registry.resolverFor(t, cite, o.env)
		if res == nil {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			out := res.Resolve(ctx, cite, o.env)
			observeResolve(res.Name(), time.Since(start), len(out.Found))
			outcomes[i] = out
			return nil
		})
	}
	// Resolvers swallow their own failures, so Wait cannot return an error.
	_ = g.Wait()

	var flat []*citation.Citation
	for _, out := range outcomes {
		if out.Title != "" {
			cite.Title = out.Title
		}
		if out.Citation != "" {
			cite.Citation = out.Citation
		}
		flat = append(flat, out.Found...)
	}
	return flat
}
