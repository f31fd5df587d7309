package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ougotti/simplenotebook/internal/model"
	"github.com/ougotti/simplenotebook/internal/testutil"
)

// MockStorage mocks the model.Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockStorage) Download(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) List(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestNotes_CreateNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		note, err := svc.CreateNote(ctx, "user-1", model.NoteDraft{Title: "Shopping", Content: "milk"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(note.ID, "note-"))
		assert.Equal(t, "Shopping", note.Title)
		assert.Equal(t, "milk", note.Content)
		assert.False(t, note.CreatedAt.IsZero())
		assert.Equal(t, note.CreatedAt, note.UpdatedAt)

		storage.AssertCalled(t, "Upload", ctx, "prod/user-1/"+note.ID+".json", mock.AnythingOfType("[]uint8"))
	})

	t.Run("empty title falls back to default", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		note, err := svc.CreateNote(ctx, "user-1", model.NoteDraft{})
		require.NoError(t, err)
		assert.Equal(t, model.DefaultNoteTitle, note.Title)
		assert.Empty(t, note.Content)
	})

	t.Run("sanitizes user id in key", func(t *testing.T) {
		storage := &MockStorage{}
		var gotKey string
		storage.On("Upload", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).
			Run(func(args mock.Arguments) { gotKey = args.String(1) }).
			Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		_, err := svc.CreateNote(ctx, "../user/1", model.NoteDraft{Title: "x"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotKey, "prod/user1/"))
		assert.NotContains(t, strings.TrimPrefix(gotKey, "prod/user1/"), "/")
	})

	t.Run("upload error", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(errors.New("boom"))

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		_, err := svc.CreateNote(ctx, "user-1", model.NoteDraft{Title: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to store note")
	})

	t.Run("generated ids differ", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Upload", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		first, err := svc.CreateNote(ctx, "user-1", model.NoteDraft{Title: "a"})
		require.NoError(t, err)
		second, err := svc.CreateNote(ctx, "user-1", model.NoteDraft{Title: "b"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestNotes_GetNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		stored := model.Note{
			ID:        "note-1",
			Title:     "Shopping",
			Content:   "milk",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(mustJSON(t, stored), nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		note, err := svc.GetNote(ctx, "user-1", "note-1")
		require.NoError(t, err)
		assert.Equal(t, stored, note)
	})

	t.Run("not found", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/nope.json").Return(nil, model.ErrNotFound)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		_, err := svc.GetNote(ctx, "user-1", "nope")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("corrupt document", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return([]byte("not json"), nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		_, err := svc.GetNote(ctx, "user-1", "note-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal note")
	})
}

func TestNotes_ListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summaries and skips settings object", func(t *testing.T) {
		noteA := model.Note{ID: "note-1", Title: "A", Content: "long body", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}
		noteB := model.Note{ID: "note-2", Title: "B", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}

		storage := &MockStorage{}
		storage.On("List", ctx, "prod/user-1/").Return([]string{
			"prod/user-1/note-1.json",
			"prod/user-1/note-2.json",
			"prod/user-1/settings.json",
			"prod/user-1/readme.txt",
		}, nil)
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(mustJSON(t, noteA), nil)
		storage.On("Download", ctx, "prod/user-1/note-2.json").Return(mustJSON(t, noteB), nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		summaries, err := svc.ListNotes(ctx, "user-1")
		require.NoError(t, err)

		require.Len(t, summaries, 2)
		assert.Equal(t, "note-1", summaries[0].ID)
		assert.Equal(t, "A", summaries[0].Title)
		assert.Equal(t, "note-2", summaries[1].ID)

		storage.AssertNotCalled(t, "Download", ctx, "prod/user-1/settings.json")
		storage.AssertNotCalled(t, "Download", ctx, "prod/user-1/readme.txt")
	})

	t.Run("empty prefix yields empty slice", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("List", ctx, "prod/user-1/").Return([]string{}, nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		summaries, err := svc.ListNotes(ctx, "user-1")
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("skips note deleted between listing and fetch", func(t *testing.T) {
		note := model.Note{ID: "note-2", Title: "B", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}

		storage := &MockStorage{}
		storage.On("List", ctx, "prod/user-1/").Return([]string{
			"prod/user-1/note-1.json",
			"prod/user-1/note-2.json",
		}, nil)
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(nil, model.ErrNotFound)
		storage.On("Download", ctx, "prod/user-1/note-2.json").Return(mustJSON(t, note), nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		summaries, err := svc.ListNotes(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "note-2", summaries[0].ID)
	})

	t.Run("skips unreadable note object", func(t *testing.T) {
		note := model.Note{ID: "note-2", Title: "B", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}

		storage := &MockStorage{}
		storage.On("List", ctx, "prod/user-1/").Return([]string{
			"prod/user-1/note-1.json",
			"prod/user-1/note-2.json",
		}, nil)
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return([]byte("{broken"), nil)
		storage.On("Download", ctx, "prod/user-1/note-2.json").Return(mustJSON(t, note), nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		summaries, err := svc.ListNotes(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "note-2", summaries[0].ID)
	})

	t.Run("list error", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("List", ctx, "prod/user-1/").Return(nil, errors.New("boom"))

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		_, err := svc.ListNotes(ctx, "user-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list note objects")
	})
}

func TestNotes_UpdateNote(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("patches title only", func(t *testing.T) {
		stored := model.Note{ID: "note-1", Title: "Old", Content: "body", CreatedAt: created, UpdatedAt: created}

		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(mustJSON(t, stored), nil)
		var written []byte
		storage.On("Upload", ctx, "prod/user-1/note-1.json", mock.AnythingOfType("[]uint8")).
			Run(func(args mock.Arguments) { written = args.Get(2).([]byte) }).
			Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		title := "New"
		note, err := svc.UpdateNote(ctx, "user-1", "note-1", model.NotePatch{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, "note-1", note.ID)
		assert.Equal(t, "New", note.Title)
		assert.Equal(t, "body", note.Content)
		assert.Equal(t, created, note.CreatedAt)
		assert.True(t, note.UpdatedAt.After(created))

		var persisted model.Note
		require.NoError(t, json.Unmarshal(written, &persisted))
		assert.Equal(t, note, persisted)
	})

	t.Run("patches content only", func(t *testing.T) {
		stored := model.Note{ID: "note-1", Title: "Old", Content: "body", CreatedAt: created, UpdatedAt: created}

		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(mustJSON(t, stored), nil)
		storage.On("Upload", ctx, "prod/user-1/note-1.json", mock.AnythingOfType("[]uint8")).Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		content := "new body"
		note, err := svc.UpdateNote(ctx, "user-1", "note-1", model.NotePatch{Content: &content})
		require.NoError(t, err)
		assert.Equal(t, "Old", note.Title)
		assert.Equal(t, "new body", note.Content)
	})

	t.Run("explicit empty content is applied", func(t *testing.T) {
		stored := model.Note{ID: "note-1", Title: "Old", Content: "body", CreatedAt: created, UpdatedAt: created}

		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/note-1.json").Return(mustJSON(t, stored), nil)
		storage.On("Upload", ctx, "prod/user-1/note-1.json", mock.AnythingOfType("[]uint8")).Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		empty := ""
		note, err := svc.UpdateNote(ctx, "user-1", "note-1", model.NotePatch{Content: &empty})
		require.NoError(t, err)
		assert.Empty(t, note.Content)
		assert.Equal(t, "Old", note.Title)
	})

	t.Run("not found", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Download", ctx, "prod/user-1/nope.json").Return(nil, model.ErrNotFound)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		title := "x"
		_, err := svc.UpdateNote(ctx, "user-1", "nope", model.NotePatch{Title: &title})
		assert.ErrorIs(t, err, model.ErrNotFound)
		storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNotes_DeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Delete", ctx, "prod/user-1/note-1.json").Return(nil)

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		assert.NoError(t, svc.DeleteNote(ctx, "user-1", "note-1"))
	})

	t.Run("error", func(t *testing.T) {
		storage := &MockStorage{}
		storage.On("Delete", ctx, "prod/user-1/note-1.json").Return(errors.New("boom"))

		svc := NewNotes(storage, "prod/", testutil.MakeNoopLogger())
		err := svc.DeleteNote(ctx, "user-1", "note-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete note")
	})
}

func TestSanitizeKeyPart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "passthrough", input: "abc-123", want: "abc-123"},
		{name: "strips slashes and dots", input: "../a/b.c", want: "abc"},
		{name: "strips unicode", input: "user@例", want: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeKeyPart(tt.input))
		})
	}
}
