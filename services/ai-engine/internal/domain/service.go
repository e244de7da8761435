package domain

import "context"

// CompletionClient invokes the external language model. The only component of
// the pipeline allowed to block on I/O; every transport failure must surface
// as ErrModelUnavailable so callers can tell it apart from parse failures.
type CompletionClient interface {
	Complete(ctx context.Context, messages []Turn) (string, error)
}
