package http

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openapiDocument []byte

// embeddedDoc makes the embedded document the default swag instance, which
// the Swagger UI handler serves as /swagger/doc.json.
type embeddedDoc struct{}

func (embeddedDoc) ReadDoc() string {
	return string(openapiDocument)
}

func init() {
	swag.Register(swag.Name, embeddedDoc{})
}

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return doc, nil
}
