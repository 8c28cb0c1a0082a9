package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and fetch layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: data source (e.g. a per-volume ledger file) does not exist
// - ErrUnavailable: external source temporarily unreachable
// - ErrMalformed: external document could not be parsed
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrMalformed   = errors.New("malformed")
)
