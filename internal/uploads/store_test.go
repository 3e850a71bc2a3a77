package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile(field)
	require.NoError(t, err)
	return fh
}

func TestSaveWritesFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	fh := multipartFileHeader(t, "photo", "me.jpg", "jpeg-bytes")
	path, err := store.Save(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, ".jpg"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestSaveNilHeader(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
