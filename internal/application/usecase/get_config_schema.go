package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/darkwatch/internal/application/port"
)

// GetConfigSchemaUseCase retrieves the configuration JSON schema.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct{}

// GetConfigSchemaOutput contains the schema document.
type GetConfigSchemaOutput struct {
	Schema []byte
}

// Execute generates the schema.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, _ GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	schema, err := uc.provider.Schema()
	if err != nil {
		return nil, fmt.Errorf("generate config schema: %w", err)
	}
	return &GetConfigSchemaOutput{
		Schema: schema,
	}, nil
}
