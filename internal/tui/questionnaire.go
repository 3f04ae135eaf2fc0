// Package tui is the interactive ASQ-3 questionnaire.
//
// The model drives a screening.Questionnaire: blocking calls run inside
// tea.Cmd functions and report back with messages, and the model itself is
// the questionnaire's Navigator. Once the last answer is accepted the
// questionnaire view is replaced by the results view, which has no way back.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"kembang/internal/domain"
	"kembang/internal/render"
	"kembang/internal/services/screening"
)

type screen int

const (
	screenQuestionnaire screen = iota
	screenResults
)

const (
	loadingResultsText = "Memuat hasil..."
	pickFirstText      = "Pilih jawaban terlebih dahulu."
	submitFailedText   = "Gagal menyimpan jawaban. Tekan enter untuk mencoba lagi."
	errorText          = "Terjadi kesalahan saat memuat screening."
	resultsFailedText  = "Gagal memuat hasil screening."
)

// ResultsLoader fetches the results shown after completion.
type ResultsLoader func(ctx context.Context, route screening.ResultsRoute) (domain.ScreeningResults, error)

// Messages returned by commands.
type (
	startedMsg   struct{ err error }
	submittedMsg struct{ err error }
	resultsMsg   struct {
		res domain.ScreeningResults
		err error
	}
)

// Model is the bubbletea model for one questionnaire run.
type Model struct {
	ctx      context.Context
	q        *screening.Questionnaire
	load     ResultsLoader
	renderer *render.Renderer
	spinner  spinner.Model

	// routes receives the results route from Replace, which runs on a
	// command goroutine.
	routes chan screening.ResultsRoute

	screen     screen
	route      screening.ResultsRoute
	results    *domain.ScreeningResults
	resultsErr error
	submitting bool
	notice     string
	width      int
	quitting   bool
}

// New builds a model and begins a questionnaire with params.
func New(
	ctx context.Context,
	svc *screening.Service,
	params screening.Params,
	load ResultsLoader,
	renderer *render.Renderer,
) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = progressStyle
	m := &Model{
		ctx:      ctx,
		load:     load,
		renderer: renderer,
		spinner:  s,
		routes:   make(chan screening.ResultsRoute, 1),
	}
	m.q = svc.Begin(ctx, m, params)
	return m
}

// Replace implements screening.Navigator.
func (m *Model) Replace(route screening.ResultsRoute) {
	select {
	case m.routes <- route:
	default:
	}
}

// Questionnaire returns the underlying questionnaire.
func (m *Model) Questionnaire() *screening.Questionnaire { return m.q }

// Init starts resolution and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCmd())
}

func (m *Model) startCmd() tea.Cmd {
	q := m.q
	return func() tea.Msg { return startedMsg{err: q.Start()} }
}

func (m *Model) retryCmd() tea.Cmd {
	q := m.q
	return func() tea.Msg { return startedMsg{err: q.Retry()} }
}

func (m *Model) nextCmd() tea.Cmd {
	q := m.q
	return func() tea.Msg { return submittedMsg{err: q.Next()} }
}

func (m *Model) resultsCmd() tea.Cmd {
	ctx, load, route := m.ctx, m.load, m.route
	return func() tea.Msg {
		res, err := load(ctx, route)
		return resultsMsg{res: res, err: err}
	}
}

// Update handles input and command results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startedMsg:
		return m, nil

	case submittedMsg:
		m.submitting = false
		switch {
		case msg.err == nil:
			m.notice = ""
		case errors.Is(msg.err, screening.ErrClosed):
			return m, nil
		case errors.Is(msg.err, screening.ErrNoAnswer):
			m.notice = pickFirstText
		default:
			m.notice = submitFailedText
		}
		select {
		case route := <-m.routes:
			m.screen = screenResults
			m.route = route
			m.notice = ""
			return m, m.resultsCmd()
		default:
		}
		return m, nil

	case resultsMsg:
		if msg.err != nil {
			m.resultsErr = msg.err
			return m, nil
		}
		res := msg.res
		m.results = &res
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		m.q.Close()
		return m, tea.Quit
	}
	if m.screen == screenResults {
		return m, nil
	}

	snap := m.q.Snapshot()
	switch msg.String() {
	case "1", "y":
		m.selectChoice(screening.ChoiceYes)
	case "2", "k":
		m.selectChoice(screening.ChoiceSometimes)
	case "3", "t":
		m.selectChoice(screening.ChoiceNo)
	case "enter", "right":
		if m.submitting || snap.State != screening.StateAnswering || snap.Question == nil {
			return m, nil
		}
		if snap.Selected == screening.ChoiceNone {
			m.notice = pickFirstText
			return m, nil
		}
		m.submitting = true
		m.notice = ""
		return m, m.nextCmd()
	case "left", "backspace":
		if m.submitting {
			return m, nil
		}
		if err := m.q.Prev(); err == nil {
			m.notice = ""
		}
	case "r":
		if snap.State == screening.StateError && snap.Activity == screening.Idle {
			return m, m.retryCmd()
		}
	}
	return m, nil
}

func (m *Model) selectChoice(c screening.Choice) {
	if m.submitting {
		return
	}
	if err := m.q.Select(c); err == nil {
		m.notice = ""
	}
}

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenResults {
		return m.resultsView()
	}
	return m.questionnaireView()
}

func (m *Model) questionnaireView() string {
	snap := m.q.Snapshot()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Screening ASQ-3"))
	if snap.AgeInterval.AgeLabel != "" {
		sb.WriteString(" " + progressStyle.Render(snap.AgeInterval.AgeLabel))
	}
	sb.WriteString("\n\n")

	switch {
	case snap.Activity != screening.Idle:
		fmt.Fprintf(&sb, "%s %s\n", m.spinner.View(), snap.Activity.Text())
		if snap.Activity == screening.Submitting {
			m.writeQuestion(&sb, snap)
		}
	case snap.State == screening.StateError:
		sb.WriteString(errorStyle.Render(errorText) + "\n")
		sb.WriteString(helpStyle.Render("r coba lagi • q keluar") + "\n")
		return sb.String()
	case snap.NoQuestions:
		sb.WriteString(screening.NoQuestionsText + "\n")
		sb.WriteString(helpStyle.Render("q keluar") + "\n")
		return sb.String()
	case snap.State == screening.StateCompleting:
		sb.WriteString(loadingResultsText + "\n")
		return sb.String()
	default:
		m.writeQuestion(&sb, snap)
	}

	if m.notice != "" {
		sb.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + helpStyle.Render("1 ya • 2 kadang-kadang • 3 tidak • enter lanjut • ← kembali • q keluar") + "\n")
	return sb.String()
}

func (m *Model) writeQuestion(sb *strings.Builder, snap screening.Snapshot) {
	if snap.Question == nil {
		return
	}
	q := snap.Question
	fmt.Fprintf(sb, "%s\n", progressStyle.Render(fmt.Sprintf("Pertanyaan %d dari %d", snap.Index+1, snap.Total)))
	name := q.Domain.Name
	if name == "" {
		name = string(q.Domain.Code)
	}
	sb.WriteString(domainColor(q.Domain.Color).Render(name) + "\n")

	box := questionStyle
	if m.width > 8 {
		box = box.Width(m.width - 4)
	}
	sb.WriteString(box.Render(q.QuestionText) + "\n\n")

	for i, c := range screening.Choices {
		line := fmt.Sprintf("%d. %s", i+1, c)
		if c == snap.Selected {
			sb.WriteString(selectedStyle.Render("› "+line) + "\n")
			continue
		}
		sb.WriteString(choiceStyle.Render("  "+line) + "\n")
	}
}

func (m *Model) resultsView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Hasil Screening ASQ-3") + "\n\n")
	switch {
	case m.resultsErr != nil:
		sb.WriteString(errorStyle.Render(resultsFailedText) + "\n")
		fmt.Fprintf(&sb, "Lihat lagi dengan: kembang screening results %d --child %d\n", m.route.ScreeningID, m.route.ChildID)
	case m.results == nil:
		fmt.Fprintf(&sb, "%s %s\n", m.spinner.View(), loadingResultsText)
	default:
		sb.WriteString(m.renderer.Results(*m.results))
	}
	sb.WriteString("\n" + helpStyle.Render("q keluar") + "\n")
	return sb.String()
}
