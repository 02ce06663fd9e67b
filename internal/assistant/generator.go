package assistant

import (
	"context"
	"errors"
)

var errGeneratorDisabled = errors.New("text generation is not configured")

// DisabledGenerator stands in when no model credential is configured. Every
// call fails, so the service serves its fallbacks.
type DisabledGenerator struct{}

func (DisabledGenerator) GenerateText(context.Context, string) (string, error) {
	return "", errGeneratorDisabled
}
