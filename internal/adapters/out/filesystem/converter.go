package filesystem

import (
	"context"

	"showcase/internal/core/domain/textproc"
)

// Converter exposes ConvertFile as a ports.FileConverter.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

func (c *Converter) ConvertFile(ctx context.Context, in, out string, processor textproc.Processor) error {
	return ConvertFile(ctx, in, out, processor)
}
