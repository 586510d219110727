package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{URL: srv.URL + "/", APIKey: "test-key"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{URL: "https://x.supabase.co"})
	assert.Error(t, err)
}

func TestExecute_SelectFilterOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/items", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.masuk, proses", r.URL.Query().Get("status"))
		assert.Equal(t, "id.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, mediaTypeJSON, r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	})

	resp, err := c.From("items").Select("*").Eq("status", "masuk, proses").Order("id", true).Execute(context.Background())
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, resp.JSON(&rows))
	assert.Len(t, rows, 2)
}

func TestExecute_SingleNoRows(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, mediaTypeObject, r.Header.Get("Accept"))
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))

		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"code":"PGRST116","details":"The result contains 0 rows","hint":null,"message":"JSON object requested, multiple (or no) rows returned"}`))
	})

	_, err := c.From("items").Select("*").Eq("id", 42).Single().Execute(context.Background())
	require.Error(t, err)

	var pgErr *Error
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, http.StatusNotAcceptable, pgErr.Status)
	assert.Equal(t, "PGRST116", pgErr.Code)
	assert.Equal(t, "The result contains 0 rows", pgErr.Details)
	assert.Equal(t, "JSON object requested, multiple (or no) rows returned", pgErr.Error())
}

func TestExecuteInsert_ReturnsRepresentation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, mediaTypeJSON, r.Header.Get("Content-Type"))
		assert.Equal(t, "*", r.URL.Query().Get("select"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(raw, &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Sneaker A", rows[0]["nama"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":7,"nama":"Sneaker A"}]`))
	})

	resp, err := c.From("items").Select("*").ExecuteInsert(context.Background(), []map[string]any{{"nama": "Sneaker A"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestExecuteUpdate_Patch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.3", r.URL.Query().Get("id"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"tanggalSelesai":null}`, string(raw))

		_, _ = w.Write([]byte(`[]`))
	})

	resp, err := c.From("items").Eq("id", 3).Select("*").ExecuteUpdate(context.Background(), map[string]any{"tanggalSelesai": nil})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, resp.JSON(&rows))
	assert.Empty(t, rows)
}

func TestExecuteDelete_ExactCount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "return=minimal,count=exact", r.Header.Get("Prefer"))
		assert.Equal(t, "eq.9", r.URL.Query().Get("id"))

		w.Header().Set("Content-Range", "*/1")
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := c.From("items").Eq("id", 9).Count(CountExact).ExecuteDelete(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Count)
	assert.Equal(t, int64(1), *resp.Count)
}

func TestDo_PlainTextError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	_, err := c.From("items").Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, "upstream unavailable", err.Error())
}

func TestDo_GatewayJSONError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	})

	_, err := c.From("items").Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid API key", err.Error())
}

func TestDo_TransportError(t *testing.T) {
	c, err := New(Config{URL: "http://127.0.0.1:1", APIKey: "k"})
	require.NoError(t, err)

	_, err = c.From("items").Execute(context.Background())
	require.Error(t, err)

	var pgErr *Error
	assert.False(t, errors.As(err, &pgErr))
}

func TestParseContentRange(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"*/0", 0, true},
		{"0-24/3573", 3573, true},
		{"0-24/*", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseContentRange(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
