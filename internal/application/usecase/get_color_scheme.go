package usecase

import (
	"context"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/internal/logging"
	"github.com/bnema/darkwatch/pkg/appearance"
)

// SourcePortal names the raw portal reading.
const SourcePortal = "portal"

// GetColorSchemeInput holds the input for a one-shot read.
type GetColorSchemeInput struct {
	// PortalOnly bypasses the config override and fallback detectors and
	// reports the portal value or its error.
	PortalOnly bool
}

// GetColorSchemeOutput holds the mode and where it came from.
type GetColorSchemeOutput struct {
	Mode   appearance.Mode
	Source string
}

// GetColorSchemeUseCase reads the current color scheme once.
type GetColorSchemeUseCase struct {
	resolver port.ColorSchemeResolver
	source   port.AppearanceSource
}

// NewGetColorSchemeUseCase creates a new get color scheme use case.
func NewGetColorSchemeUseCase(resolver port.ColorSchemeResolver, source port.AppearanceSource) *GetColorSchemeUseCase {
	return &GetColorSchemeUseCase{
		resolver: resolver,
		source:   source,
	}
}

// Execute reads the color scheme.
func (uc *GetColorSchemeUseCase) Execute(ctx context.Context, input GetColorSchemeInput) (*GetColorSchemeOutput, error) {
	log := logging.FromContext(ctx)

	if input.PortalOnly {
		mode, err := uc.source.Detect(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("portal read failed")
			return nil, err
		}
		return &GetColorSchemeOutput{Mode: mode, Source: SourcePortal}, nil
	}

	pref := uc.resolver.Resolve()
	log.Debug().Str("mode", pref.Mode.String()).Str("source", pref.Source).Msg("color scheme resolved")
	return &GetColorSchemeOutput{Mode: pref.Mode, Source: pref.Source}, nil
}
