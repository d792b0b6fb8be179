package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RINKESH2497/todo-app-fullstack/client"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

const requestTimeout = 15 * time.Second

type mode int

const (
	modeList mode = iota
	modeForm
	modeSearch
)

const (
	formText = iota
	formPriority
	formCategory
	formDue
)

var formLabels = [...]string{
	formText:     "text",
	formPriority: "priority (low/medium/high)",
	formCategory: "category",
	formDue:      "due (YYYY-MM-DD, empty for none)",
}

// taskForm collects one field per step; an empty id means create.
type taskForm struct {
	id     string
	step   int
	fields [len(formLabels)]string
}

type tuiModel struct {
	client  *client.Client
	view    *client.View
	profile client.Profile

	cursor int
	mode   mode
	form   taskForm
	input  string
	status string

	authErr error
}

type tasksMsg []core.Task

type errMsg struct{ err error }

func runTUI(c *client.Client, profile client.Profile) error {
	model := &tuiModel{
		client:  c,
		view:    client.NewView(),
		profile: profile,
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*tuiModel); ok && m.authErr != nil {
		return m.authErr
	}
	return nil
}

func (m *tuiModel) Init() tea.Cmd {
	return m.fetchTasks()
}

func (m *tuiModel) fetchTasks() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tasks, err := m.client.Tasks(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksMsg(tasks)
	}
}

// mutate runs an API call and re-fetches the whole list afterwards, so the
// local model never drifts from server truth.
func (m *tuiModel) mutate(call func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := call(ctx); err != nil {
			return errMsg{err}
		}

		tasks, err := m.client.Tasks(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksMsg(tasks)
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksMsg:
		m.view.SetTasks(msg)
		m.clampCursor()
		m.status = ""
		return m, nil

	case errMsg:
		if errors.Is(msg.err, core.ErrUnauthenticated) {
			m.authErr = core.ErrUnauthenticated
			return m, tea.Quit
		}
		m.status = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm, modeSearch:
			return m.updateTyping(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *tuiModel) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeSearch {
			m.view.SetSearch("")
		}
		m.mode = modeList
		m.input = ""
		return m, nil

	case "enter":
		if m.mode == modeForm {
			return m.advanceForm()
		}
		m.mode = modeList
		return m, nil

	case "backspace":
		if n := len(m.input); n > 0 {
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:n-size]
		}
	default:
		if len(msg.Runes) > 0 {
			m.input += string(msg.Runes)
		}
	}

	if m.mode == modeSearch {
		m.view.SetSearch(m.input)
		m.clampCursor()
	}
	return m, nil
}

// advanceForm commits the current field and steps to the next one; after the
// last field the form is submitted as a create or an edit.
func (m *tuiModel) advanceForm() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.input)

	switch m.form.step {
	case formPriority:
		val = strings.ToLower(val)
		if val != "" && !core.Priority(val).Valid() {
			m.status = "priority must be low, medium or high"
			return m, nil
		}
	case formDue:
		if _, err := parseDue(val); err != nil {
			m.status = err.Error()
			return m, nil
		}
	}
	m.form.fields[m.form.step] = val
	m.status = ""

	if m.form.step < formDue {
		m.form.step++
		m.input = m.form.fields[m.form.step]
		return m, nil
	}

	f := m.form
	m.mode = modeList
	m.input = ""
	if f.id == "" {
		return m, m.submitCreate(f)
	}
	return m, m.submitEdit(f)
}

func (m *tuiModel) submitCreate(f taskForm) tea.Cmd {
	if f.fields[formText] == "" {
		return nil
	}
	due, _ := parseDue(f.fields[formDue])
	return m.mutate(func(ctx context.Context) error {
		_, err := m.client.CreateTask(ctx, client.CreateTaskIn{
			Text:     f.fields[formText],
			Priority: f.fields[formPriority],
			Category: f.fields[formCategory],
			DueDate:  due,
		})
		return err
	})
}

// submitEdit always sends category and dueDate: the form shows the stored
// values, so whatever the user leaves in the field is the new truth. An
// emptied due field becomes an explicit null and clears the date.
func (m *tuiModel) submitEdit(f taskForm) tea.Cmd {
	due, _ := parseDue(f.fields[formDue])
	cat := f.fields[formCategory]
	in := client.UpdateTaskIn{Category: &cat, DueDate: &due}
	if text := f.fields[formText]; text != "" {
		in.Text = &text
	}
	if pr := f.fields[formPriority]; pr != "" {
		in.Priority = &pr
	}
	return m.mutate(func(ctx context.Context) error {
		_, err := m.client.UpdateTask(ctx, f.id, in)
		return err
	})
}

func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("due date must look like 2006-01-02")
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.view.Visible()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "J":
		return m, m.moveTask(1)
	case "K":
		return m, m.moveTask(-1)

	case " ":
		if m.cursor < len(visible) {
			t := visible[m.cursor]
			completed := !t.Completed
			return m, m.mutate(func(ctx context.Context) error {
				_, err := m.client.UpdateTask(ctx, t.ID, client.UpdateTaskIn{Completed: &completed})
				return err
			})
		}

	case "d":
		if m.cursor < len(visible) {
			id := visible[m.cursor].ID
			return m, m.mutate(func(ctx context.Context) error {
				_, err := m.client.DeleteTask(ctx, id)
				return err
			})
		}

	case "a":
		m.mode = modeForm
		m.form = taskForm{}
		m.input = ""

	case "e":
		if m.cursor < len(visible) {
			t := visible[m.cursor]
			f := taskForm{id: t.ID}
			f.fields[formText] = t.Text
			f.fields[formPriority] = string(t.Priority)
			f.fields[formCategory] = t.Category
			if t.DueDate != nil {
				f.fields[formDue] = t.DueDate.Format("2006-01-02")
			}
			m.mode = modeForm
			m.form = f
			m.input = f.fields[formText]
		}

	case "/":
		m.mode = modeSearch
		m.input = m.view.Search()

	case "f":
		m.view.CycleFilter()
		m.clampCursor()

	case "r":
		return m, m.fetchTasks()
	}
	return m, nil
}

func (m *tuiModel) moveTask(delta int) tea.Cmd {
	ids, ok := m.view.Move(m.cursor, delta)
	if !ok {
		return nil
	}
	m.cursor += delta
	return m.mutate(func(ctx context.Context) error {
		_, err := m.client.Reorder(ctx, ids)
		return err
	})
}

func (m *tuiModel) clampCursor() {
	if n := len(m.view.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder

	stats := m.view.Stats()
	fmt.Fprintf(&b, "%s <%s>  —  %d tasks, %d done (%d%%)\n",
		m.profile.Name, m.profile.Email, stats.Total, stats.Completed, stats.Percent)
	fmt.Fprintf(&b, "filter: %s", m.view.Filter())
	if q := m.view.Search(); q != "" {
		fmt.Fprintf(&b, "   search: %q", q)
	}
	b.WriteString("\n\n")

	visible := m.view.Visible()
	if len(visible) == 0 {
		b.WriteString("  nothing to show\n")
	}
	for i, t := range visible {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%s)", cursor, check, t.Text, t.Priority)
		if t.Category != "" {
			line += " #" + t.Category
		}
		if t.DueDate != nil {
			line += " due " + t.DueDate.Format("2006-01-02")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case modeForm:
		verb := "new task"
		if m.form.id != "" {
			verb = "edit task"
		}
		fmt.Fprintf(&b, "%s · %s: %s█\n", verb, formLabels[m.form.step], m.input)
	case modeSearch:
		fmt.Fprintf(&b, "search: %s█\n", m.input)
	default:
		b.WriteString("j/k move · J/K reorder · space toggle · a add · e edit · d delete · f filter · / search · r refresh · q quit\n")
	}

	if m.status != "" {
		fmt.Fprintf(&b, "\n! %s\n", m.status)
	}
	return b.String()
}
