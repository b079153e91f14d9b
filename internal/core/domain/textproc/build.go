package textproc

import (
	"fmt"
	"strings"

	"showcase/internal/pkg/errs"
)

// Stage names accepted by Build.
const (
	StageIdentity      = "identity"
	StageUpperCase     = "upper"
	StageTrim          = "trim"
	StageReplaceSpaces = "replace_spaces"
)

var decorators = map[string]func(Processor) Processor{
	StageIdentity:      func(inner Processor) Processor { return inner },
	StageUpperCase:     UpperCase,
	"uppercase":        UpperCase,
	StageTrim:          Trim,
	StageReplaceSpaces: ReplaceSpaces,
	"replace":          ReplaceSpaces,
}

// Build assembles a pipeline on top of Identity from stage names. The first
// name is the innermost stage, so it runs first:
//
//	p, _ := textproc.Build("replace_spaces", "trim") // Trim(ReplaceSpaces(Identity()))
//
// Names are matched case-insensitively. An unknown name fails the whole build
// with a *errs.ValueIsInvalidError; no partial pipeline is returned.
func Build(stages ...string) (Processor, error) {
	p := Identity()
	for i, stage := range stages {
		decorator, ok := decorators[strings.ToLower(strings.TrimSpace(stage))]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"stage",
				fmt.Errorf("stage %d: %q is not a known stage", i, stage),
			)
		}
		p = decorator(p)
	}
	return p, nil
}
