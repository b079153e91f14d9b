package commands

import (
	"context"
	"log/slog"

	"showcase/internal/core/ports"
)

type ConvertFileCommandHandler struct {
	converter ports.FileConverter
	logger    *slog.Logger
}

func NewConvertFileCommandHandler(converter ports.FileConverter, logger *slog.Logger) ConvertFileCommandHandler {
	return ConvertFileCommandHandler{
		converter: converter,
		logger:    logger.With("component", "convert_file_handler"),
	}
}

func (h *ConvertFileCommandHandler) Handle(ctx context.Context, cmd ConvertFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.converter.ConvertFile(ctx, cmd.InPath(), cmd.OutPath(), cmd.Processor()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "File converted", "in", cmd.InPath(), "out", cmd.OutPath())
	return nil
}
