package commands

import (
	"errors"
	"strings"

	"showcase/internal/core/domain/textproc"
	"showcase/internal/pkg/errs"
	"showcase/internal/pkg/guard"
)

var (
	ErrConvertFileCommandIsNotConstructed = errors.New(
		"ConvertFileCommand must be created via NewConvertFileCommand constructor",
	)
)

// ConvertFileCommand rewrites inPath into outPath through a text pipeline.
type ConvertFileCommand struct {
	inPath    string
	outPath   string
	processor textproc.Processor

	guard guard.ConstructorGuard
}

func NewConvertFileCommand(inPath, outPath string, stages []string) (ConvertFileCommand, error) {
	var validationErrs []error
	if strings.TrimSpace(inPath) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("inPath"))
	}
	if strings.TrimSpace(outPath) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("outPath"))
	}

	processor, err := textproc.Build(stages...)
	if err != nil {
		validationErrs = append(validationErrs, err)
	}

	if err = errors.Join(validationErrs...); err != nil {
		return ConvertFileCommand{}, err
	}

	return ConvertFileCommand{
		inPath:    inPath,
		outPath:   outPath,
		processor: processor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConvertFileCommand) Validate() error {
	return c.guard.Validate(ErrConvertFileCommandIsNotConstructed)
}

func (c ConvertFileCommand) InPath() string {
	return c.inPath
}

func (c ConvertFileCommand) OutPath() string {
	return c.outPath
}

func (c ConvertFileCommand) Processor() textproc.Processor {
	return c.processor
}
