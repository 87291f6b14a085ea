// Package quiz runs an interactive terminal quiz over generated questions.
package quiz

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/logiq/internal/engine"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/ui/components"
	"github.com/abhisek/logiq/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseFeedback
	phaseSummary
	phaseError
)

// questionsReadyMsg is sent when batch generation finishes.
type questionsReadyMsg struct {
	questions []*questiongen.Question
	err       error
}

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	engine *engine.Engine
	req    engine.Request
	count  int

	phase     phase
	spin      spinner.Model
	questions []*questiongen.Question
	index     int
	mc        components.MultiChoice
	score     int
	err       error
	width     int
}

// New creates a quiz session that generates count questions and walks the
// user through them.
func New(e *engine.Engine, req engine.Request, count int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Model{
		engine: e,
		req:    req,
		count:  count,
		phase:  phaseLoading,
		spin:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.generate())
}

func (m Model) generate() tea.Cmd {
	return func() tea.Msg {
		qs, err := m.engine.GenerateBatch(context.Background(), m.req, m.count)
		return questionsReadyMsg{questions: qs, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case questionsReadyMsg:
		if msg.err != nil && len(msg.questions) == 0 {
			m.phase = phaseError
			m.err = msg.err
			return m, nil
		}
		m.questions = msg.questions
		m.index = 0
		m.mc = newChoice(m.questions[0])
		m.phase = phaseAnswering
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseAnswering:
		if msg.String() == "esc" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.mc, cmd = m.mc.Update(msg)
		if m.mc.Submitted {
			if m.mc.IsCorrect() {
				m.score++
			}
			m.phase = phaseFeedback
		}
		return m, cmd

	case phaseFeedback:
		// Any key advances.
		if m.index+1 < len(m.questions) {
			m.index++
			m.mc = newChoice(m.questions[m.index])
			m.phase = phaseAnswering
			return m, nil
		}
		m.phase = phaseSummary
		return m, nil

	case phaseSummary, phaseError:
		return m, tea.Quit
	}

	return m, nil
}

func newChoice(q *questiongen.Question) components.MultiChoice {
	options := make([]string, len(q.Options))
	for i, opt := range q.Options {
		options[i] = opt.Text
	}
	return components.NewMultiChoice(q.Text, options, q.CorrectIndex())
}

func (m Model) View() tea.View {
	v := tea.NewView("")

	switch m.phase {
	case phaseLoading:
		v.SetContent(fmt.Sprintf("\n  %s Generating %d questions at level %d...\n",
			m.spin.View(), m.count, m.req.Level))

	case phaseAnswering:
		header := theme.Subtitle.Render(
			fmt.Sprintf("Question %d of %d  ·  level %d", m.index+1, len(m.questions), m.req.Level))
		v.SetContent("\n" + header + "\n\n" + m.mc.View() + "\n" +
			theme.Hint.Render("↑/↓ move · enter answer · esc quit"))

	case phaseFeedback:
		q := m.questions[m.index]
		var verdict string
		if m.mc.IsCorrect() {
			verdict = theme.Correct.Render("Correct!")
		} else {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		body := m.mc.View() + "\n" + verdict
		if q.Explanation != "" {
			body += "\n\n" + theme.Body.Render(q.Explanation)
		}
		body += "\n" + theme.Hint.Render("skills "+q.Profile.String())
		v.SetContent("\n" + body + "\n\n" + theme.Hint.Render("press any key to continue"))

	case phaseSummary:
		card := theme.Card.Render(fmt.Sprintf("%s\n\nScore: %d / %d",
			theme.Title.Render("Quiz complete"), m.score, len(m.questions)))
		v.SetContent("\n" + card + "\n\n" + theme.Hint.Render("press any key to exit"))

	case phaseError:
		v.SetContent("\n" + theme.Incorrect.Render("Could not generate questions:") +
			"\n  " + m.err.Error() + "\n\n" + theme.Hint.Render("press any key to exit"))
	}

	return v
}

// Score returns the final score. Valid after the program exits.
func (m Model) Score() (correct, total int) {
	return m.score, len(m.questions)
}

// Run generates the questions and plays the session in the terminal.
func Run(e *engine.Engine, req engine.Request, count int) error {
	p := tea.NewProgram(New(e, req, count))
	_, err := p.Run()
	return err
}
