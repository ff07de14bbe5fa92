// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Focus order: the three query inputs, then the report viewport.
const (
	focusZip = iota
	focusFrom
	focusTo
	focusReport
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	inputs         []textinput.Model
	reportViewport viewport.Model
	focusIndex     int

	store  *CollisionStore
	layout string

	lastReport string // plain text of the last report, for the clipboard
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles derives the styles from the detected color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

func newQueryInput(placeholder string, limit int, styles *Styles) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 12
	ti.PromptStyle = styles.InputPrompt
	return ti
}

// InitialModel creates the initial model
func InitialModel(store *CollisionStore, cfg *Config) Model {
	styles := NewStyles(GetColorScheme())

	inputs := []textinput.Model{
		newQueryInput("10001", 5, styles),
		newQueryInput(cfg.Data.DateFormat, 10, styles),
		newQueryInput(cfg.Data.DateFormat, 10, styles),
	}
	inputs[focusZip].Focus()

	reportViewport := viewport.New(0, 0)
	reportViewport.SetContent("Enter a zip code and a date range, then press enter...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		inputs:          inputs,
		reportViewport:  reportViewport,
		focusIndex:      focusZip,
		store:           store,
		layout:          cfg.Data.DateFormat,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("%d collisions indexed", store.Len()),
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.setFocus((m.focusIndex + 1) % focusCount)
		case "shift+tab":
			return m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		case "enter":
			m.runQuery()
			return m, nil
		case "ctrl+y":
			m.copyReport()
			return m, nil
		}

		var cmd tea.Cmd
		if m.focusIndex == focusReport {
			m.reportViewport, cmd = m.reportViewport.Update(msg)
		} else {
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) setFocus(index int) (tea.Model, tea.Cmd) {
	m.focusIndex = index
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// runQuery validates the inputs and shows the report for them
func (m *Model) runQuery() {
	q, err := newReportQuery(
		m.inputs[focusZip].Value(),
		m.inputs[focusFrom].Value(),
		m.inputs[focusTo].Value(),
		m.layout,
	)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	summary := m.store.Summarize(q.Zip, q.Begin, q.End)
	m.lastReport = formatReport(q.Zip, q.Begin, q.End, summary)

	content := m.lastReport
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(reportMarkdown(q.Zip, q.Begin, q.End, summary)); err == nil {
			content = rendered
		}
	}
	m.reportViewport.SetContent(content)
	m.reportViewport.GotoTop()
	m.setStatus(fmt.Sprintf("%d collisions in %s between %s and %s", summary.Collisions, q.Zip, q.Begin, q.End), false)
}

func (m *Model) copyReport() {
	if m.lastReport == "" {
		m.setStatus("Nothing to copy yet", true)
		return
	}
	if err := clipboard.WriteAll(m.lastReport); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus("📋 Report copied to clipboard", false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🚦 Motor Vehicle Collisions (%d indexed)", m.store.Len()))

	labels := []string{"Zip code", "Start date", "End date"}
	boxes := make([]string, 0, len(m.inputs))
	for i, input := range m.inputs {
		style := m.styles.BorderBlurred
		if i == m.focusIndex {
			style = m.styles.BorderFocused
		}
		boxes = append(boxes, style.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.HelpKey.Render(labels[i]),
			input.View(),
		)))
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)

	reportStyle := m.styles.BorderBlurred
	if m.focusIndex == focusReport {
		reportStyle = m.styles.BorderFocused
	}
	report := reportStyle.Render(m.reportViewport.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		inputRow,
		report,
		statusStyle.Render(m.status),
		m.renderHelp(),
	)
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"tab", "next field"},
		{"enter", "report"},
		{"ctrl+y", "copy report"},
		{"↑/↓", "scroll report"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWith(parts, "  •  ")...)
}

func joinWith(parts []string, sep string) []string {
	out := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func (m *Model) updateLayout() {
	// title, input row (3 lines + border), status and help lines
	const chrome = 1 + 4 + 1 + 1
	m.reportViewport.Width = max(m.width-2, 20)
	m.reportViewport.Height = max(m.height-chrome-2, 5)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(store *CollisionStore, cfg *Config) error {
	InitializeColors()

	model := InitialModel(store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
