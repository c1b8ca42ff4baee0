package llm

import (
	"context"

	"rogsuchak-api/api/internal/llm/types"
)

// Engine produces a treatment plan for a plant disease. Implementations are
// safe for concurrent use; the handler holds one instance for the lifetime of
// the process.
type Engine interface {
	Name() string
	Treatment(ctx context.Context, disease string) (types.TreatmentPlan, error)
}

// GenerationError reports that the model call itself succeeded but produced
// no usable treatment plan: the response was blocked, empty, or did not
// conform to the expected JSON shape. Transport and auth failures are
// returned as-is, not wrapped in this type.
type GenerationError struct {
	Detail string
}

func (e *GenerationError) Error() string {
	return "treatment generation failed: " + e.Detail
}
