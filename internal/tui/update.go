package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CalculationCompleteMsg:
		m.result = msg.Result
		m.currentScene = SceneResult
		if msg.Result == nil {
			m.formErr = "these inputs do not describe a workable scenario"
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input per scene
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentScene {
	case SceneList:
		return m.updateList(msg)
	case SceneForm:
		return m.updateForm(msg)
	case SceneResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(m.calcList)-1 {
			m.listCursor++
		}
	case "enter":
		m.startForm(m.calcList[m.listCursor])
		m.currentScene = SceneForm
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentScene = SceneList
		m.formErr = ""
		return m, nil

	case "tab", "down":
		m.focusField(min(m.focusIndex+1, len(m.inputs)-1))
		return m, nil

	case "shift+tab", "up":
		m.focusField(max(m.focusIndex-1, 0))
		return m, nil

	case "enter":
		if m.focusIndex < len(m.inputs)-1 {
			m.focusField(m.focusIndex + 1)
			return m, nil
		}
		params := m.formParams()
		if missing := m.selected.MissingRequired(params); len(missing) > 0 {
			m.formErr = "required: " + missing[0]
			return m, nil
		}
		m.formErr = ""
		return m, runCalculatorCmd(m.selected, params)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.currentScene = SceneForm
		m.formErr = ""
	case "enter":
		m.currentScene = SceneList
		m.formErr = ""
	}
	return m, nil
}

func (m *Model) focusField(idx int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = idx
	m.inputs[m.focusIndex].Focus()
}
