package ingest

import "context"

// Classifier is the last-resort format detector, consulted only after
// filename and header inspection both come up empty. Implementations
// receive a small sample of parsed rows and answer with a format tag.
// Any error, timeout, or unrecognized answer must be reported as
// FormatUnknown by the caller, never as a fatal pipeline error.
type Classifier interface {
	ClassifyFormat(ctx context.Context, rows [][]string) (Format, error)
}
