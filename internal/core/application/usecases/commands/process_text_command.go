package commands

import (
	"errors"

	"showcase/internal/core/domain/textproc"
	"showcase/internal/pkg/guard"
)

var (
	ErrProcessTextCommandIsNotConstructed = errors.New(
		"ProcessTextCommand must be created via NewProcessTextCommand constructor",
	)
)

// ProcessTextCommand runs text through a pipeline built from stage names.
// The pipeline is built by the constructor, so an unknown stage is reported
// before the command reaches a handler.
type ProcessTextCommand struct {
	processor textproc.Processor
	text      string

	guard guard.ConstructorGuard
}

func NewProcessTextCommand(stages []string, text string) (ProcessTextCommand, error) {
	processor, err := textproc.Build(stages...)
	if err != nil {
		return ProcessTextCommand{}, err
	}

	return ProcessTextCommand{
		processor: processor,
		text:      text,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessTextCommand) Validate() error {
	return c.guard.Validate(ErrProcessTextCommandIsNotConstructed)
}

func (c ProcessTextCommand) Processor() textproc.Processor {
	return c.processor
}

func (c ProcessTextCommand) Text() string {
	return c.text
}
