package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/shoeclean/internal/lib/postgrest"
	"github.com/deppfellow/shoeclean/internal/model"
	"github.com/deppfellow/shoeclean/internal/sqlerr"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) ItemRepository {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := postgrest.New(postgrest.Config{URL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)

	return NewItemRepository(client)
}

func TestItemRepository_List(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/items", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.selesai", r.URL.Query().Get("status"))
		assert.Equal(t, "id.asc", r.URL.Query().Get("order"))

		_, _ = w.Write([]byte(`[{"id":2,"nama":"Boots B","status":"selesai","tanggalMasuk":"2024-01-02","tanggalSelesai":"2024-01-03"}]`))
	})

	items, err := repo.List(context.Background(), "selesai")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
	require.NotNil(t, items[0].TanggalSelesai)
	assert.Equal(t, "2024-01-03", *items[0].TanggalSelesai)
}

func TestItemRepository_ListWithoutFilter(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasStatus := r.URL.Query()["status"]
		assert.False(t, hasStatus)
		_, _ = w.Write([]byte(`[]`))
	})

	items, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.99", r.URL.Query().Get("id"))
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))

		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte(`{"code":"PGRST116","details":"The result contains 0 rows","hint":null,"message":"JSON object requested, multiple (or no) rows returned"}`))
	})

	item, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, item)
	assert.True(t, sqlerr.IsNoRows(err))
}

func TestItemRepository_Create(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"nama":"Sneaker A","status":"masuk","tanggalMasuk":"2024-01-01","tanggalSelesai":null}]`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":1,"nama":"Sneaker A","status":"masuk","tanggalMasuk":"2024-01-01","tanggalSelesai":null}]`))
	})

	item, err := repo.Create(context.Background(), model.NewItem{
		Nama:         "Sneaker A",
		Status:       "masuk",
		TanggalMasuk: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Nil(t, item.TanggalSelesai)
}

func TestItemRepository_CreateNoRepresentation(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := repo.Create(context.Background(), model.NewItem{Nama: "x", Status: "y", TanggalMasuk: "2024-01-01"})
	assert.ErrorIs(t, err, ErrNoRowsReturned)
}

func TestItemRepository_Update(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.1", r.URL.Query().Get("id"))

		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, map[string]any{"status": "selesai", "tanggalSelesai": nil}, fields)

		_, _ = w.Write([]byte(`[{"id":1,"nama":"Sneaker A","status":"selesai","tanggalMasuk":"2024-01-01","tanggalSelesai":null}]`))
	})

	status := "selesai"
	rows, err := repo.Update(context.Background(), 1, model.ItemPatch{
		Status:         &status,
		TanggalSelesai: nullable.NewNullNullable[string](),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "selesai", rows[0].Status)
}

func TestItemRepository_UpdateNoMatch(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	status := "x"
	rows, err := repo.Update(context.Background(), 999, model.ItemPatch{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestItemRepository_Delete(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  int64
	}{
		{name: "deleted", total: "*/1", want: 1},
		{name: "missing", total: "*/0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "return=minimal,count=exact", r.Header.Get("Prefer"))
				w.Header().Set("Content-Range", tt.total)
				w.WriteHeader(http.StatusNoContent)
			})

			n, err := repo.Delete(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestItemRepository_DatabaseError(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"22007","message":"invalid input syntax for type date: \"kemarin\""}`))
	})

	_, err := repo.List(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, sqlerr.InvalidTextRepresentation, sqlerr.ErrCode(err))
}
