package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkwatch/internal/application/port/mocks"
	"github.com/bnema/darkwatch/internal/application/usecase"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema from provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().Schema().Return([]byte(`{"type":"object"}`), nil)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"object"}`, string(result.Schema))
	})

	t.Run("wraps provider error", func(t *testing.T) {
		boom := errors.New("reflect failed")
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().Schema().Return(nil, boom)

		uc := usecase.NewGetConfigSchemaUseCase(provider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.ErrorIs(t, err, boom)
		assert.Nil(t, result)
	})
}
