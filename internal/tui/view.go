package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneList:
		content = m.renderList()
	case SceneForm:
		content = m.renderForm()
	case SceneResult:
		content = m.renderResult()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar and help line
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("mortcalc")

	breadcrumb := m.currentScene.String()
	if m.selected != nil && m.currentScene != SceneList {
		breadcrumb = fmt.Sprintf("%s / %s", m.selected.Name, m.currentScene.String())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
		"",
		content,
		"",
		HelpStyle.Render(m.helpLine()),
	)
}

func (m Model) helpLine() string {
	switch m.currentScene {
	case SceneList:
		return "↑/↓ navigate · enter select · q quit"
	case SceneForm:
		return "tab next field · enter run · esc back"
	default:
		return "esc edit inputs · enter calculator list · q quit"
	}
}

func (m Model) renderList() string {
	var b strings.Builder
	for i, desc := range m.calcList {
		if i == m.listCursor {
			b.WriteString(SelectedItemStyle.Render("> " + desc.Name))
		} else {
			b.WriteString(UnselectedItemStyle.Render("  " + desc.Name))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder
	for i, field := range m.selected.Fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		b.WriteString(FieldLabelStyle.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.formErr))
	}
	return b.String()
}

func (m Model) renderResult() string {
	if m.result == nil {
		return ErrorStyle.Render(m.formErr)
	}

	var b strings.Builder
	for _, d := range m.result.Details {
		b.WriteString(DetailLabelStyle.Render(d.Label))
		b.WriteString(DetailValueStyle.Render(d.FormatValue()))
		b.WriteString("\n")
	}
	if len(m.result.Insights) > 0 {
		b.WriteString("\n")
		for _, insight := range m.result.Insights {
			b.WriteString(InsightStyle.Render("• " + insight))
			b.WriteString("\n")
		}
	}
	return b.String()
}
