package queries

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michaelcode2/product-api-service/internal/config"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.ERP.QueryDir = dir
	return NewStore(cfg), dir
}

func TestLoad(t *testing.T) {
	store, dir := newTestStore(t)
	text := "ВЫБРАТЬ Штрихкод, Цена ИЗ РегистрСведений.Цены ГДЕ Штрихкод = &barcode\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_by_barcode.sql"), []byte(text), 0o600))

	got, err := store.Load("product_by_barcode")
	require.NoError(t, err)
	assert.Equal(t, "ВЫБРАТЬ Штрихкод, Цена ИЗ РегистрСведений.Цены ГДЕ Штрихкод = &barcode", got)
}

func TestLoadMissing(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load("product_by_barcode")
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.sql"), []byte("  \n"), 0o600))
	_, err := store.Load("empty")
	assert.Error(t, err)
}

func TestLoadRejectsPathTraversal(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load("../secrets")
	assert.Error(t, err)
}

func TestLoadPicksUpEdits(t *testing.T) {
	store, dir := newTestStore(t)
	path := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o600))

	got, err := store.Load("q")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o600))
	got, err = store.Load("q")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}
