package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"
	"testing"

	"github.com/deppfellow/shoeclean/internal/errs"
	"github.com/deppfellow/shoeclean/internal/lib/postgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, NoRows, MapCode("PGRST116"))
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, InvalidTextRepresentation, MapCode("22P02"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.Equal(t, Other, MapCode(""))
}

func TestErrCode_WrappedPostgrestError(t *testing.T) {
	err := fmt.Errorf("get item: %w", &postgrest.Error{Code: "PGRST116", Status: http.StatusNotAcceptable})

	assert.Equal(t, NoRows, ErrCode(err))
	assert.True(t, IsNoRows(err))
	assert.False(t, IsNoRows(errors.New("boom")))
}

func TestHandleError_NoRows(t *testing.T) {
	err := HandleError(&postgrest.Error{Code: "PGRST116"}, "Gagal mengambil data", "Data tidak ditemukan")

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Data tidak ditemukan", httpErr.Message)
}

func TestHandleError_DatabaseFailureKeepsRawMessage(t *testing.T) {
	src := &postgrest.Error{Code: "23502", Message: `null value in column "nama" violates not-null constraint`, Status: 400}
	err := HandleError(src, "Gagal menambah data", "Data tidak ditemukan")

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Gagal menambah data", httpErr.Message)
	assert.Equal(t, src.Message, httpErr.Detail)
	assert.Equal(t, NotNullViolation, ErrCode(err))
	assert.ErrorIs(t, err, src)
}

func TestHandleError_TransportFailure(t *testing.T) {
	cause := errors.New("http request: dial tcp: connection refused")
	err := HandleError(cause, "Gagal menghapus data", "Data tidak ditemukan")

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, cause.Error(), httpErr.Detail)
}

func TestHandleError_TransportFailureHidesRequestURL(t *testing.T) {
	cause := fmt.Errorf("list items: %w", fmt.Errorf("http request: %w", &url.Error{
		Op:  "Get",
		URL: "http://127.0.0.1:1/rest/v1/items?select=%2A&order=id.asc",
		Err: syscall.ECONNREFUSED,
	}))
	err := HandleError(cause, "Gagal mengambil data", "Data tidak ditemukan")

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, syscall.ECONNREFUSED.Error(), httpErr.Detail)
	assert.NotContains(t, httpErr.Detail, "rest/v1")
	assert.ErrorIs(t, err, syscall.ECONNREFUSED)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewBadRequestError("Tidak ada data untuk diperbarui", nil, nil)
	assert.Same(t, in, HandleError(in, "x", "y"))
}

func TestDatabaseCode(t *testing.T) {
	raw := &postgrest.Error{Code: "23503", Message: "violates foreign key constraint"}
	assert.Equal(t, "23503", DatabaseCode(fmt.Errorf("create item: %w", raw)))
	assert.Equal(t, "23503", DatabaseCode(ConvertPostgrestError(raw)))
	assert.Equal(t, ForeignKeyViolation, ErrCode(HandleError(raw, "x", "y")))
	assert.Empty(t, DatabaseCode(errors.New("connection refused")))
}
