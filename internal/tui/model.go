// Package tui is the interactive shell over the calculator registry: pick a
// calculator, fill in its fields, read the result.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mortcalc/mortcalc/internal/calculators"
	"github.com/mortcalc/mortcalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	registry   *calculators.Registry
	calcList   []*calculators.Descriptor
	listCursor int

	// Form state for the selected calculator
	selected   *calculators.Descriptor
	inputs     []textinput.Model
	focusIndex int
	formErr    string

	// Last run
	result *domain.Result
}

// NewModel creates a new application model over the given registry.
func NewModel(registry *calculators.Registry) Model {
	return Model{
		currentScene: SceneList,
		registry:     registry,
		calcList:     registry.All(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// startForm builds one text input per descriptor field, prefilled with the
// field's default, and focuses the first.
func (m *Model) startForm(desc *calculators.Descriptor) {
	m.selected = desc
	m.inputs = make([]textinput.Model, len(desc.Fields))
	m.focusIndex = 0
	m.formErr = ""

	for i, field := range desc.Fields {
		ti := textinput.New()
		ti.Placeholder = field.Default
		ti.CharLimit = 16
		ti.Width = 20
		if field.Default != "" {
			ti.SetValue(field.Default)
		}
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
}

// formParams collects the current input values into a parameter map,
// skipping blanks so calculator defaults apply.
func (m Model) formParams() calculators.Params {
	params := make(calculators.Params, len(m.inputs))
	for i, field := range m.selected.Fields {
		if v := m.inputs[i].Value(); v != "" {
			params[field.Key] = v
		}
	}
	return params
}

// runCalculatorCmd returns a command that runs the selected calculator.
func runCalculatorCmd(desc *calculators.Descriptor, params calculators.Params) tea.Cmd {
	return func() tea.Msg {
		return CalculationCompleteMsg{
			Slug:   desc.Slug,
			Result: desc.Run(params),
		}
	}
}

// GetSceneName returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneList:
		return "Calculators"
	case SceneForm:
		return "Inputs"
	case SceneResult:
		return "Result"
	default:
		return "Unknown"
	}
}
