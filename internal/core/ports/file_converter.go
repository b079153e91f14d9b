package ports

import (
	"context"

	"showcase/internal/core/domain/textproc"
)

// FileConverter rewrites a text file line by line.
type FileConverter interface {
	// ConvertFile reads in, applies processor to every line and writes the
	// result to out, creating or truncating it.
	// Returns an errs.ObjectNotFoundError if in does not exist.
	ConvertFile(ctx context.Context, in, out string, processor textproc.Processor) error
}
