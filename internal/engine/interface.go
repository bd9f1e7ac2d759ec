// Package engine evaluates builds: buffs, debuffs, material costs and refine estimates.
// The package level functions are pure; Engine bundles them for the service layer.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/general-configurator/internal/engine Engine

import (
	"context"
)

// Engine evaluates a build in one call
type Engine interface {
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)
}
