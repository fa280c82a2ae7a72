package tui

import (
	"github.com/mortcalc/mortcalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneList Scene = iota
	SceneForm
	SceneResult
)

// Message types for the Bubble Tea update cycle

// CalculationCompleteMsg carries a finished calculator run. Result is nil
// when the inputs describe an impossible scenario.
type CalculationCompleteMsg struct {
	Slug   string
	Result *domain.Result
}
