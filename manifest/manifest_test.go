package manifest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.db")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestPutGet(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	at := time.Date(2025, 10, 5, 14, 56, 0, 0, time.UTC)
	r := Record{Name: "count", Hash: "abc", File: "output/count1.gif", Frames: 120, GIFFrames: 80, Duration: 2400 * time.Millisecond, FPS: 50, RenderedAt: at}
	require.NoError(t, s.Put(r))

	got, err := s.Get("count")
	require.NoError(t, err)
	assert.Equal(t, r.Hash, got.Hash)
	assert.Equal(t, r.Duration, got.Duration)
	assert.True(t, at.Equal(got.RenderedAt))

	r.Hash = "def"
	require.NoError(t, s.Put(r))
	got, err = s.Get("count")
	require.NoError(t, err)
	assert.Equal(t, "def", got.Hash)
}

func TestGetMissing(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutWithoutName(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	assert.Error(t, s.Put(Record{Hash: "x"}))
}

func TestListSortedAndPersisted(t *testing.T) {
	s, path := openTemp(t)
	for _, name := range []string{"range", "count", "interval"} {
		require.NoError(t, s.Put(Record{Name: name}))
	}
	require.NoError(t, s.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	rs, err := s.List()
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, "count", rs[0].Name)
	assert.Equal(t, "interval", rs[1].Name)
	assert.Equal(t, "range", rs[2].Name)
}

func TestListEmpty(t *testing.T) {
	s, _ := openTemp(t)
	defer s.Close()

	rs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, rs)
}
