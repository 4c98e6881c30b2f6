// ABOUTME: Error taxonomy for the similarity search core
// ABOUTME: Distinguishes provider, data, not-found, and validation failures
package search

import "fmt"

// ProviderError wraps an embedding provider failure. Callers recover from it
// locally by falling back to text search; it is never surfaced as a hard
// failure unless the fallback also cannot run.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// DataError reports a malformed candidate embedding. The affected candidate
// is skipped and the scan continues.
type DataError struct {
	RecordID string
	Reason   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("bad embedding on record %s: %s", e.RecordID, e.Reason)
}

// NotFoundError reports a source idea id that does not resolve. Fatal for
// the call that referenced it.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user idea %s not found", e.ID)
}

// ValidationError reports a search parameter outside its declared range.
// Raised before any I/O is performed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
