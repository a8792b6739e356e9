package session

import (
	"context"
	"testing"
	"time"

	"animexplorer/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *models.SessionState {
	state := models.NewSessionState()
	state.Replace([]models.AnimeData{{MalId: 1, Title: "Monster"}, {MalId: 2, Title: "Mushishi"}})
	state.Page = 2
	state.Sort = models.SortByTitle
	return state
}

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	want := sampleState()
	require.NoError(t, s.Save(ctx, "abc", want))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestMemoryStore_LoadedStateIsACopy(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "abc", sampleState()))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	got.Results[0].Title = "changed"

	again, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Monster", again.Results[0].Title)
}

func TestMemoryStore_UnknownAndExpired(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "abc", sampleState()))
	assert.Equal(t, 1, s.Len())

	now = now.Add(2 * time.Minute)
	_, err = s.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "abc", sampleState()))

	require.NoError(t, s.Delete(ctx, "abc"))
	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}
