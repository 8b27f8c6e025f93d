package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/canto/internal/annotate"
	"github.com/f3rmion/canto/internal/canto"
	"github.com/f3rmion/canto/internal/clipboard"
)

// Model is the interactive annotator: a single input line plus the token
// table for whatever was last annotated.
type Model struct {
	annotator *annotate.Annotator
	input     textinput.Model
	tokens    []canto.Token
	status    string
	width     int
}

// New creates the interactive annotator model.
func New(a *annotate.Annotator) Model {
	ti := textinput.New()
	ti.Placeholder = "輸入廣東話…"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	return Model{annotator: a, input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.tokens = m.annotator.Annotate(text)
				m.status = ""
			}
			return m, nil
		case tea.KeyCtrlY:
			if len(m.tokens) > 0 {
				if err := clipboard.Write(jyutpingLine(m.tokens)); err != nil {
					m.status = "clipboard unavailable"
				} else {
					m.status = "jyutping copied"
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("canto — Cantonese annotator"))
	b.WriteString("\n\n")
	b.WriteString(InputStyle.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.tokens) > 0 {
		b.WriteString(renderTokens(m.tokens))
	}

	if m.status != "" {
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("enter annotate · ctrl+y copy jyutping · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// renderTokens draws one column per token: the word on the first row,
// its Jyutping and Yale below, padded to CJK-aware display width.
func renderTokens(tokens []canto.Token) string {
	var words, jyut, yales []string
	for _, t := range tokens {
		w := runewidth.StringWidth(t.Word)
		w = max(w, runewidth.StringWidth(t.Jyutping))
		w = max(w, runewidth.StringWidth(t.Yale))

		if t.HasReading() {
			words = append(words, WordStyle.Render(pad(t.Word, w)))
		} else {
			words = append(words, PlainWordStyle.Render(pad(t.Word, w)))
		}
		jyut = append(jyut, ReadingStyle.Render(pad(t.Jyutping, w)))
		yales = append(yales, YaleStyle.Render(pad(t.Yale, w)))
	}

	var b strings.Builder
	b.WriteString(strings.Join(words, "  "))
	b.WriteString("\n")
	b.WriteString(strings.Join(jyut, "  "))
	b.WriteString("\n")
	b.WriteString(strings.Join(yales, "  "))
	b.WriteString("\n")
	return b.String()
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func jyutpingLine(tokens []canto.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.HasReading() {
			parts = append(parts, t.Jyutping)
		}
	}
	return strings.Join(parts, " ")
}
