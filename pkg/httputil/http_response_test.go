package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitstar/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "user not found", errors.New("no rows"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{Code: 404, Message: "user not found", Details: "no rows"}, resp)
}

func TestWriteJSONResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusOK, map[string]int{"weeklyWorkouts": 3})
	assert.JSONEq(t, `{"weeklyWorkouts":3}`, rr.Body.String())

	rr = httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
	assert.Empty(t, rr.Body.String())
}

func TestWriteBlobResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteBlobResponse(rr, http.StatusOK, "image/png", []byte{1, 2, 3})
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "3", rr.Header().Get("Content-Length"))
	assert.Equal(t, []byte{1, 2, 3}, rr.Body.Bytes())
}
