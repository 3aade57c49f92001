package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "https://cdn.example.com/images/")
	assert.NoError(t, err)

	url, err := store.Save("front.png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/images/"))
	assert.True(t, strings.HasSuffix(url, "-front.png"))

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestDiskStore_SaveUniqueNames(t *testing.T) {
	store, err := storage.NewDiskStore(t.TempDir(), "/uploads")
	assert.NoError(t, err)

	first, err := store.Save("a.png", strings.NewReader("one"))
	assert.NoError(t, err)
	second, err := store.Save("a.png", strings.NewReader("two"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := storage.NewDiskStore(dir, "/uploads")
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemStore_Save(t *testing.T) {
	store := storage.NewMemStore()

	url, err := store.Save("a.png", strings.NewReader("bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "mem://"))

	data, ok := store.Get(url)
	assert.True(t, ok)
	assert.Equal(t, "bytes", string(data))
	assert.Equal(t, 1, store.Len())
}
