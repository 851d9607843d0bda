// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/workers"
	"github.com/MKhiriev/go-posts-client/models"
)

// Fixed fields of the focus ring. Per-post edit fields follow them, two per
// post: title then content.
const (
	fieldBaseURL = iota
	fieldSortField
	fieldSortDirection
	fieldNewTitle
	fieldNewContent
	fieldSearchTitle
	fieldSearchContent
	fixedFieldCount
)

const (
	inputWidth      = 48
	maxVisiblePosts = 4
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// boardModel is the single screen of the client: configuration, sort
// selectors, create and search forms and the rendered posts.
type boardModel struct {
	ctx         context.Context
	services    *service.ClientServices
	coordinator workers.Coordinator
	logger      *logger.Logger

	// state holds the display list and the generation it belongs to. Input
	// values live in the widgets and are copied into snapshots on demand.
	state models.AppState

	inputs        [fixedFieldCount]textinput.Model
	sortField     selector
	sortDirection selector
	editInputs    []textinput.Model
	focus         int

	pending int
	spinner spinner.Model
	status  string
}

func newBoardModel(ctx context.Context, services *service.ClientServices, coordinator workers.Coordinator, initial models.AppState, log *logger.Logger) boardModel {
	m := boardModel{
		ctx:           ctx,
		services:      services,
		coordinator:   coordinator,
		logger:        log,
		sortField:     newSelector(sortFieldOptions, initial.SortField),
		sortDirection: newSelector(sortDirectionOptions, initial.SortDirection),
	}

	placeholders := map[int]string{
		fieldBaseURL:       "http://localhost:5002/api",
		fieldNewTitle:      "title",
		fieldNewContent:    "content",
		fieldSearchTitle:   "title contains",
		fieldSearchContent: "content contains",
	}
	for i := range m.inputs {
		m.inputs[i] = newInput(placeholders[i])
	}
	m.inputs[fieldBaseURL].SetValue(initial.BaseURL)
	m.inputs[fieldNewTitle].SetValue(initial.NewTitle)
	m.inputs[fieldNewContent].SetValue(initial.NewContent)
	m.inputs[fieldSearchTitle].SetValue(initial.SearchTitle)
	m.inputs[fieldSearchContent].SetValue(initial.SearchContent)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	m.spinner = s

	m.setDisplay(initial)
	m.setFocus(fieldBaseURL)
	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.Width = inputWidth
	return in
}

func (m boardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		m.pending--
		m.applyResult(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "boardModel.Update").Msg("clipboard copy failed")
			m.status = ""
			return m, nil
		}
		m.status = "Copied"
		return m, nil

	case spinner.TickMsg:
		if m.pending <= 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateFocused(msg)
}

func (m boardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % m.fieldCount())
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + m.fieldCount()) % m.fieldCount())
		return m, nil

	case key.Matches(msg, keys.load):
		return m.dispatchLoad()
	case key.Matches(msg, keys.create):
		return m.dispatchCreate()
	case key.Matches(msg, keys.search):
		return m.dispatchSearch()
	case key.Matches(msg, keys.update):
		return m.dispatchUpdate()
	case key.Matches(msg, keys.delete):
		return m.dispatchDelete()
	case key.Matches(msg, keys.copy):
		return m.copyFocusedContent()

	case key.Matches(msg, keys.enter):
		switch {
		case m.focus <= fieldSortDirection:
			return m.dispatchLoad()
		case m.focus <= fieldNewContent:
			return m.dispatchCreate()
		case m.focus <= fieldSearchContent:
			return m.dispatchSearch()
		default:
			return m.dispatchUpdate()
		}
	}

	if m.focus == fieldSortField || m.focus == fieldSortDirection {
		sel := &m.sortField
		if m.focus == fieldSortDirection {
			sel = &m.sortDirection
		}
		switch {
		case key.Matches(msg, keys.left):
			sel.prev()
		case key.Matches(msg, keys.right):
			sel.next()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text input.
func (m boardModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.focusedInput()
	if in == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

// ── operations ───────────────────────────────────────────────────────────────

// dispatchLoad persists the base URL and loads the list. Only a user
// triggered Load persists; service reloads never do.
func (m boardModel) dispatchLoad() (tea.Model, tea.Cmd) {
	snap := m.snapshot()
	ctx, ticket := m.coordinator.Begin(m.ctx)
	settings, posts := m.services.SettingsService, m.services.PostService
	log := m.logger

	return m.started(func() tea.Msg {
		if err := settings.PersistBaseURL(ctx, snap.BaseURL); err != nil {
			log.Err(err).Str("func", "boardModel.dispatchLoad").Msg("base url not persisted")
		}
		state, err := posts.Load(ctx, snap)
		return opDoneMsg{op: opLoad, ticket: ticket, before: snap, state: state, err: err}
	})
}

func (m boardModel) dispatchSearch() (tea.Model, tea.Cmd) {
	snap := m.snapshot()
	ctx, ticket := m.coordinator.Begin(m.ctx)
	posts := m.services.PostService

	return m.started(func() tea.Msg {
		state, err := posts.Search(ctx, snap)
		return opDoneMsg{op: opSearch, ticket: ticket, before: snap, state: state, err: err}
	})
}

func (m boardModel) dispatchCreate() (tea.Model, tea.Cmd) {
	snap := m.snapshot()
	ticket := m.coordinator.Next()
	ctx, posts := m.ctx, m.services.PostService

	return m.started(func() tea.Msg {
		state, err := posts.Create(ctx, snap)
		return opDoneMsg{op: opCreate, ticket: ticket, before: snap, state: state, err: err}
	})
}

func (m boardModel) dispatchUpdate() (tea.Model, tea.Cmd) {
	post, ok := m.focusedPost()
	if !ok {
		m.status = "Focus a post field first"
		return m, nil
	}

	snap := m.snapshot()
	ticket := m.coordinator.Next()
	ctx, posts := m.ctx, m.services.PostService

	return m.started(func() tea.Msg {
		state, err := posts.Update(ctx, snap, post.ID)
		return opDoneMsg{op: opUpdate, ticket: ticket, before: snap, state: state, err: err}
	})
}

func (m boardModel) dispatchDelete() (tea.Model, tea.Cmd) {
	post, ok := m.focusedPost()
	if !ok {
		m.status = "Focus a post field first"
		return m, nil
	}

	snap := m.snapshot()
	ticket := m.coordinator.Next()
	ctx, posts := m.ctx, m.services.PostService

	return m.started(func() tea.Msg {
		state, err := posts.Delete(ctx, snap, post.ID)
		return opDoneMsg{op: opDelete, ticket: ticket, before: snap, state: state, err: err}
	})
}

func (m boardModel) started(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.pending++
	m.status = ""
	if m.pending == 1 {
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m boardModel) copyFocusedContent() (tea.Model, tea.Cmd) {
	post, ok := m.focusedPost()
	if !ok {
		m.status = "Nothing to copy"
		return m, nil
	}
	content := post.Content
	return m, func() tea.Msg {
		return copiedMsg{err: writeClipboard(content)}
	}
}

// applyResult merges a finished operation into the model. Clearing the
// create inputs always applies; a display replacement only when nothing
// started later has been shown yet.
func (m *boardModel) applyResult(msg opDoneMsg) {
	log := m.logger.With().Str("operation", msg.op.String()).Uint64("ticket", msg.ticket.Seq()).Logger()

	if msg.op == opCreate && msg.err == nil {
		m.inputs[fieldNewTitle].SetValue("")
		m.inputs[fieldNewContent].SetValue("")
	}

	if msg.state.Generation == msg.before.Generation {
		return
	}
	if !m.coordinator.Accept(msg.ticket) {
		log.Debug().Msg("superseded result dropped")
		return
	}

	m.setDisplay(msg.state)
	if m.focus >= m.fieldCount() {
		m.setFocus(m.fieldCount() - 1)
	} else {
		m.setFocus(m.focus)
	}
}

// ── state helpers ────────────────────────────────────────────────────────────

// snapshot builds the AppState an operation starts from. The first row of a
// repeated id supplies its edit fields.
func (m boardModel) snapshot() models.AppState {
	fields := make(map[string]string, len(m.editInputs))
	for i, p := range m.state.Display {
		if _, seen := fields[models.TitleFieldKey(p.ID)]; seen {
			continue
		}
		fields[models.TitleFieldKey(p.ID)] = m.editInputs[2*i].Value()
		fields[models.ContentFieldKey(p.ID)] = m.editInputs[2*i+1].Value()
	}

	return models.AppState{
		BaseURL:       m.inputs[fieldBaseURL].Value(),
		SortField:     m.sortField.Value(),
		SortDirection: m.sortDirection.Value(),
		NewTitle:      m.inputs[fieldNewTitle].Value(),
		NewContent:    m.inputs[fieldNewContent].Value(),
		SearchTitle:   m.inputs[fieldSearchTitle].Value(),
		SearchContent: m.inputs[fieldSearchContent].Value(),
		EditFields:    fields,
		Display:       m.state.Display,
		Generation:    m.state.Generation,
	}
}

// setDisplay replaces the rendered posts and rebuilds their edit inputs
// from st.EditFields.
func (m *boardModel) setDisplay(st models.AppState) {
	m.state.Display = st.Display
	m.state.EditFields = st.EditFields
	m.state.Generation = st.Generation

	m.editInputs = make([]textinput.Model, 0, 2*len(st.Display))
	for _, p := range st.Display {
		title := newInput("title")
		if v, ok := st.EditField(models.TitleFieldKey(p.ID)); ok {
			title.SetValue(v)
		}
		content := newInput("content")
		if v, ok := st.EditField(models.ContentFieldKey(p.ID)); ok {
			content.SetValue(v)
		}
		m.editInputs = append(m.editInputs, title, content)
	}
}

func (m boardModel) fieldCount() int {
	return fixedFieldCount + len(m.editInputs)
}

func (m *boardModel) setFocus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	for j := range m.editInputs {
		m.editInputs[j].Blur()
	}

	m.focus = i
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
}

func (m *boardModel) focusedInput() *textinput.Model {
	switch {
	case m.focus == fieldSortField || m.focus == fieldSortDirection:
		return nil
	case m.focus < fixedFieldCount:
		return &m.inputs[m.focus]
	case m.focus-fixedFieldCount < len(m.editInputs):
		return &m.editInputs[m.focus-fixedFieldCount]
	default:
		return nil
	}
}

// focusedPost returns the post whose edit field has the focus.
func (m boardModel) focusedPost() (models.Post, bool) {
	idx := m.focusedPostIndex()
	if idx < 0 {
		return models.Post{}, false
	}
	return m.state.Display[idx], true
}

func (m boardModel) focusedPostIndex() int {
	if m.focus < fixedFieldCount {
		return -1
	}
	idx := (m.focus - fixedFieldCount) / 2
	if idx >= len(m.state.Display) {
		return -1
	}
	return idx
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(m.row(fieldBaseURL, "API base URL", m.inputs[fieldBaseURL].View()))
	b.WriteString(m.row(fieldSortField, "Sort by", m.sortField.View(m.focus == fieldSortField)))
	b.WriteString(m.row(fieldSortDirection, "Direction", m.sortDirection.View(m.focus == fieldSortDirection)))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("New post"))
	b.WriteString("\n")
	b.WriteString(m.row(fieldNewTitle, "Title", m.inputs[fieldNewTitle].View()))
	b.WriteString(m.row(fieldNewContent, "Content", m.inputs[fieldNewContent].View()))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.row(fieldSearchTitle, "Title", m.inputs[fieldSearchTitle].View()))
	b.WriteString(m.row(fieldSearchContent, "Content", m.inputs[fieldSearchContent].View()))
	b.WriteString("\n")

	b.WriteString(m.viewPosts())

	if m.pending > 0 {
		b.WriteString("\n" + m.spinner.View() + " working...")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	title := "POSTS"
	if m.state.Generation > 0 {
		title = fmt.Sprintf("POSTS (%d)", len(m.state.Display))
	}

	return appStyle.Render(renderPage(title, b.String(),
		"tab: next field  ctrl+l: load  ctrl+n: create  ctrl+f: search  ctrl+u: update  ctrl+d: delete  ctrl+y: copy  f1: about"))
}

func (m boardModel) row(field int, label, value string) string {
	l := labelStyle.Render(label)
	if m.focus == field {
		l = focusedStyle.Render(labelStyle.Render("> " + label))
	}
	return l + " " + value + "\n"
}

func (m boardModel) viewPosts() string {
	if len(m.state.Display) == 0 {
		return helpStyle.Render("No posts loaded")
	}

	start := 0
	if idx := m.focusedPostIndex(); idx >= 0 {
		start = max(0, idx-maxVisiblePosts/2)
	}
	end := min(len(m.state.Display), start+maxVisiblePosts)
	if end-start < maxVisiblePosts {
		start = max(0, end-maxVisiblePosts)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("... %d above", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.viewPost(i))
		b.WriteString("\n")
	}
	if rest := len(m.state.Display) - end; rest > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("... %d below", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

// viewPost renders one post block: title, content, the two edit fields and
// the Update and Delete triggers bound to the post id.
func (m boardModel) viewPost(i int) string {
	p := m.state.Display[i]
	titleField := fixedFieldCount + 2*i

	var b strings.Builder
	b.WriteString(titleStyle.Render(fitText(p.Title, inputWidth)))
	b.WriteString("\n")
	b.WriteString(fitText(p.Content, 2*inputWidth))
	b.WriteString("\n")
	b.WriteString(m.row(titleField, "Edit title", m.editInputs[2*i].View()))
	b.WriteString(m.row(titleField+1, "Edit content", m.editInputs[2*i+1].View()))
	b.WriteString(triggerStyle.Render(fmt.Sprintf("[Update %s] [Delete %s]", p.ID, p.ID)))

	return postBlockStyle.Render(b.String())
}
