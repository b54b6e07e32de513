package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "cvs/cand-1/cv.pdf", strings.NewReader("%PDF-1.4 test"), "application/pdf")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "cvs/cand-1/cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := s.Get(ctx, "cvs/cand-1/cv.pdf")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))

	size, err := s.GetSize(ctx, "cvs/cand-1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("%PDF-1.4 test")), size)
}

func TestLocalStorageDelete(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "cv.pdf", strings.NewReader("x"), "application/pdf"))
	require.NoError(t, s.Delete(ctx, "cv.pdf"))

	exists, err := s.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "cv.pdf"))
}

func TestLocalStorageURLs(t *testing.T) {
	ctx := context.Background()

	s := newTestLocalStorage(t)
	url, err := s.GetURL(ctx, "cvs/cand-1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/cvs/cand-1/cv.pdf", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://files.example.com"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/cv.pdf", url)

	signed, err := withBase.GetSignedURL(ctx, "cv.pdf", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, url, signed)
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}
