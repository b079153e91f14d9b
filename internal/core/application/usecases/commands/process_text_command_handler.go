package commands

import (
	"context"
)

type ProcessTextCommandHandler struct{}

func NewProcessTextCommandHandler() ProcessTextCommandHandler {
	return ProcessTextCommandHandler{}
}

// Handle returns the processed text. Processing is pure; the context is
// accepted for symmetry with the other handlers.
func (h *ProcessTextCommandHandler) Handle(_ context.Context, cmd ProcessTextCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return cmd.Processor().Process(cmd.Text()), nil
}
