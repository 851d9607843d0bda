// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/mock"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/workers"
	"github.com/MKhiriev/go-posts-client/models"
)

const testBaseURL = "http://localhost:5002/api"

type boardFixture struct {
	board    boardModel
	posts    *mock.MockClientPostService
	settings *mock.MockClientSettingsService
}

func newBoardFixture(t *testing.T, initial models.AppState) *boardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	posts := mock.NewMockClientPostService(ctrl)
	settings := mock.NewMockClientSettingsService(ctrl)

	services := &service.ClientServices{SettingsService: settings, PostService: posts}
	board := newBoardModel(context.Background(), services, workers.NewSuperseder(), initial, logger.Nop())

	return &boardFixture{board: board, posts: posts, settings: settings}
}

// press sends a key and returns the command it produced.
func (f *boardFixture) press(t *testing.T, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := f.board.Update(k)
	f.board = next.(boardModel)
	return cmd
}

func (f *boardFixture) deliver(msg tea.Msg) {
	next, _ := f.board.Update(msg)
	f.board = next.(boardModel)
}

// run executes cmd and returns the first message that is not a spinner
// tick, unwrapping batches.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			m := c()
			if _, isOp := m.(opDoneMsg); isOp {
				return m
			}
		}
		t.Fatal("no operation result in batch")
	}
	return msg
}

func typeText(t *testing.T, f *boardFixture, text string) {
	t.Helper()
	f.press(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func focusField(f *boardFixture, field int) {
	f.board.setFocus(field)
}

var twoPosts = []models.Post{
	{ID: "2", Title: "Second Post", Content: "second body"},
	{ID: "1", Title: "First Post", Content: "first body"},
}

func loaded(posts []models.Post) models.AppState {
	return models.AppState{BaseURL: testBaseURL}.WithDisplay(posts)
}

func TestBoard_InitialStateFillsInputs(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL})

	snap := f.board.snapshot()
	assert.Equal(t, testBaseURL, snap.BaseURL)
	assert.Empty(t, snap.Display)
	assert.Contains(t, f.board.View(), "No posts loaded")
}

func TestBoard_LoadPersistsBaseURLAndReplacesDisplay(t *testing.T) {
	f := newBoardFixture(t, models.AppState{})
	typeText(t, f, testBaseURL)
	focusField(f, fieldSortField)
	f.press(t, tea.KeyMsg{Type: tea.KeyRight})
	focusField(f, fieldSortDirection)
	f.press(t, tea.KeyMsg{Type: tea.KeyLeft})

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), testBaseURL).Return(nil)
	f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			assert.Equal(t, testBaseURL, st.BaseURL)
			assert.Equal(t, "title", st.SortField)
			assert.Equal(t, "desc", st.SortDirection)
			return st.WithDisplay(twoPosts), nil
		},
	)

	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, 1, f.board.pending)
	f.deliver(run(t, cmd))

	assert.Equal(t, 0, f.board.pending)
	assert.Equal(t, twoPosts, f.board.state.Display)
	require.Len(t, f.board.editInputs, 4)
	assert.Equal(t, "Second Post", f.board.editInputs[0].Value())
	assert.Equal(t, "first body", f.board.editInputs[3].Value())

	view := f.board.View()
	assert.Contains(t, view, "Second Post")
	assert.Contains(t, view, "[Update 2] [Delete 2]")
}

func TestBoard_PersistFailureStillLoads(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL})

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), testBaseURL).Return(errors.New("database is locked"))
	f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).Return(loaded(twoPosts), nil)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyEnter})))

	assert.Len(t, f.board.state.Display, 2)
}

func TestBoard_SearchNeverPersists(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL})
	focusField(f, fieldSearchTitle)
	typeText(t, f, "abc")

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), gomock.Any()).Times(0)
	f.posts.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			assert.Equal(t, "abc", st.SearchTitle)
			assert.Empty(t, st.SearchContent)
			return st.WithDisplay(twoPosts[:1]), nil
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyEnter})))

	assert.Equal(t, twoPosts[:1], f.board.state.Display)
}

func TestBoard_FailedLoadLeavesDisplay(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), gomock.Any()).Return(nil)
	f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			return st, errors.New("request failure")
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})))

	assert.Equal(t, twoPosts, f.board.state.Display)
	assert.NotContains(t, f.board.View(), "request failure")
}

func TestBoard_NewerLoadWins(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL})
	older := []models.Post{{ID: "1", Title: "older"}}
	newer := []models.Post{{ID: "2", Title: "newer"}}

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, st models.AppState) (models.AppState, error) {
				return st.WithDisplay(newer), nil
			},
		),
		f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, st models.AppState) (models.AppState, error) {
				// the first load was superseded before it ran
				assert.ErrorIs(t, ctx.Err(), context.Canceled)
				return st.WithDisplay(older), nil
			},
		),
	)

	first := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	second := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})

	// the newer completes first, the older arrives late
	f.deliver(run(t, second))
	f.deliver(run(t, first))

	assert.Equal(t, newer, f.board.state.Display)
	assert.Equal(t, 0, f.board.pending)
}

func TestBoard_CreateClearsInputsEvenWhenSuperseded(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL})
	focusField(f, fieldNewTitle)
	typeText(t, f, "T")
	focusField(f, fieldNewContent)
	typeText(t, f, "C")

	f.posts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			assert.Equal(t, "T", st.NewTitle)
			assert.Equal(t, "C", st.NewContent)
			st.NewTitle, st.NewContent = "", ""
			return st.WithDisplay([]models.Post{{ID: "3", Title: "T", Content: "C"}}), nil
		},
	)
	f.posts.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			return st.WithDisplay(twoPosts), nil
		},
	)

	create := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlN})
	search := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlF})

	f.deliver(run(t, search))
	f.deliver(run(t, create))

	assert.Empty(t, f.board.inputs[fieldNewTitle].Value())
	assert.Empty(t, f.board.inputs[fieldNewContent].Value())
	assert.Equal(t, twoPosts, f.board.state.Display)
}

func TestBoard_CreateFailureKeepsInputs(t *testing.T) {
	f := newBoardFixture(t, models.AppState{BaseURL: testBaseURL, NewTitle: "T", NewContent: "C"})

	f.posts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			return st, errors.New("request failure")
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyCtrlN})))

	assert.Equal(t, "T", f.board.inputs[fieldNewTitle].Value())
	assert.Equal(t, "C", f.board.inputs[fieldNewContent].Value())
}

func TestBoard_UpdateSendsFocusedPostEdits(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))

	// second post, title field
	focusField(f, fixedFieldCount+2)
	f.board.editInputs[2].SetValue("")
	typeText(t, f, "Edited")

	f.posts.EXPECT().Update(gomock.Any(), gomock.Any(), models.PostID("1")).DoAndReturn(
		func(_ context.Context, st models.AppState, id models.PostID) (models.AppState, error) {
			v, _ := st.EditField("title-1")
			assert.Equal(t, "Edited", v)
			v, _ = st.EditField("content-1")
			assert.Equal(t, "first body", v)
			return st.WithDisplay([]models.Post{twoPosts[0], {ID: "1", Title: "Edited", Content: "first body"}}), nil
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyEnter})))

	assert.Equal(t, "Edited", f.board.state.Display[1].Title)
	assert.Equal(t, fixedFieldCount+2, f.board.focus)
}

func TestBoard_DeleteFocusedPost(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))
	focusField(f, fixedFieldCount+3)

	f.posts.EXPECT().Delete(gomock.Any(), gomock.Any(), models.PostID("1")).DoAndReturn(
		func(_ context.Context, st models.AppState, _ models.PostID) (models.AppState, error) {
			return st.WithDisplay(twoPosts[:1]), nil
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyCtrlD})))

	assert.Equal(t, twoPosts[:1], f.board.state.Display)
	// focus is clamped to the last remaining field
	assert.Equal(t, fixedFieldCount+1, f.board.focus)
}

func TestBoard_LoadSurvivesFailedDelete(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))
	fresh := []models.Post{{ID: "3", Title: "Third Post", Content: "third body"}}

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), testBaseURL).Return(nil)
	f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, st models.AppState) (models.AppState, error) {
			assert.NoError(t, ctx.Err())
			return st.WithDisplay(fresh), nil
		},
	)
	f.posts.EXPECT().Delete(gomock.Any(), gomock.Any(), models.PostID("2")).DoAndReturn(
		func(_ context.Context, st models.AppState, id models.PostID) (models.AppState, error) {
			return st, errors.New("request failure: connection refused")
		},
	)

	load := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	focusField(f, fixedFieldCount)
	del := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlD})

	f.deliver(run(t, del))
	f.deliver(run(t, load))

	assert.Equal(t, fresh, f.board.state.Display)
	assert.Equal(t, 0, f.board.pending)
}

func TestBoard_MutationReloadNewerThanLoadWins(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))
	fromLoad := []models.Post{{ID: "3", Title: "from load"}}
	fromDelete := twoPosts[1:]

	f.settings.EXPECT().PersistBaseURL(gomock.Any(), gomock.Any()).Return(nil)
	f.posts.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st models.AppState) (models.AppState, error) {
			return st.WithDisplay(fromLoad), nil
		},
	)
	f.posts.EXPECT().Delete(gomock.Any(), gomock.Any(), models.PostID("2")).DoAndReturn(
		func(_ context.Context, st models.AppState, _ models.PostID) (models.AppState, error) {
			return st.WithDisplay(fromDelete), nil
		},
	)

	load := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	focusField(f, fixedFieldCount)
	del := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlD})

	// the delete started later, its reload is the fresher list
	f.deliver(run(t, del))
	f.deliver(run(t, load))

	assert.Equal(t, fromDelete, f.board.state.Display)
}

func TestBoard_UpdateRepeatedIDSendsFirstRow(t *testing.T) {
	f := newBoardFixture(t, loaded([]models.Post{
		{ID: "4", Title: "first", Content: "one"},
		{ID: "4", Title: "second", Content: "two"},
	}))

	// both rows are pre-filled from the first record
	assert.Equal(t, "first", f.board.editInputs[2].Value())

	focusField(f, fixedFieldCount+2)
	f.board.editInputs[2].SetValue("")
	typeText(t, f, "typed in second row")

	f.posts.EXPECT().Update(gomock.Any(), gomock.Any(), models.PostID("4")).DoAndReturn(
		func(_ context.Context, st models.AppState, _ models.PostID) (models.AppState, error) {
			v, _ := st.EditField("title-4")
			assert.Equal(t, "first", v)
			return st, nil
		},
	)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyCtrlU})))
}

func TestBoard_UpdateWithoutFocusedPost(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))
	focusField(f, fieldNewTitle)

	cmd := f.press(t, tea.KeyMsg{Type: tea.KeyCtrlU})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.board.pending)
	assert.NotEmpty(t, f.board.status)
}

func TestBoard_CopyFocusedContent(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	f := newBoardFixture(t, loaded(twoPosts))
	focusField(f, fixedFieldCount)

	f.deliver(run(t, f.press(t, tea.KeyMsg{Type: tea.KeyCtrlY})))

	assert.Equal(t, "second body", copied)
	assert.Equal(t, "Copied", f.board.status)
}

func TestBoard_TabCyclesThroughAllFields(t *testing.T) {
	f := newBoardFixture(t, loaded(twoPosts))
	total := fixedFieldCount + 4

	for i := 1; i <= total; i++ {
		f.press(t, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, i%total, f.board.focus)
	}
	f.press(t, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, total-1, f.board.focus)
}

func TestSelector(t *testing.T) {
	s := newSelector(sortFieldOptions, "content")
	assert.Equal(t, "content", s.Value())

	s.next()
	assert.Equal(t, "", s.Value())
	s.prev()
	assert.Equal(t, "content", s.Value())

	unknown := newSelector(sortDirectionOptions, "sideways")
	assert.Equal(t, "", unknown.Value())
}

func TestRootModel_BuildInfoOverlay(t *testing.T) {
	f := newBoardFixture(t, models.AppState{})
	root := NewRootModel(f.board, models.NewAppBuildInfo("1.2.3", "", "abc"))

	next, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	root = next.(RootModel)
	view := root.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "N/A")

	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = next.(RootModel)
	assert.False(t, root.showBuildInfo)

	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = next.(RootModel)
	assert.True(t, root.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ab", fitText("abcdefgh", 2))
	assert.Equal(t, "при...", fitText("привет мир", 6))
}
