package sheet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Avuorina/MOBgenerator/internal/logging"
	"github.com/Avuorina/MOBgenerator/internal/sheet"
)

func TestExportURL(t *testing.T) {
	got := sheet.ExportURL("abc123", "0")
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=0", got)
}

func TestClient_FetchPopulatesCache(t *testing.T) {
	csv := "NameJP,HP\nゾンビ兵,30\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	cache := sheet.NewFileCache(t.TempDir())
	c := sheet.NewClient("sheet-id", cache, logging.NewNop())
	c.BaseURL = srv.URL

	data, err := c.Fetch(context.Background(), "0")
	require.NoError(t, err)
	assert.Equal(t, csv, string(data))

	cached, err := c.Cached(context.Background(), "0")
	require.NoError(t, err)
	assert.Equal(t, csv, string(cached))
}

func TestClient_FetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sign in", http.StatusForbidden)
	}))
	defer srv.Close()

	c := sheet.NewClient("sheet-id", sheet.NewFileCache(t.TempDir()), logging.NewNop())
	c.BaseURL = srv.URL

	_, err := c.Fetch(context.Background(), "0")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "403"))
}

func TestClient_CachedMiss(t *testing.T) {
	c := sheet.NewClient("sheet-id", sheet.NewFileCache(t.TempDir()), logging.NewNop())
	_, err := c.Cached(context.Background(), "0")
	assert.ErrorIs(t, err, sheet.ErrCacheMiss)
}
