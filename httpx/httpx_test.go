/*
   Copyright 2025 The kcenon Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/httpx"
	"github.com/kcenon/common-system/mapper"
	"github.com/kcenon/common-system/result"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func quietWriter(opts ...httpx.Option) *httpx.Writer {
	return httpx.NewWriter(append([]httpx.Option{httpx.WithLogger(slog.New(slog.DiscardHandler))}, opts...)...)
}

func newRouter(w *httpx.Writer) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/users/{id}", httpx.Handler(w, func(req *http.Request) result.Result[user] {
		id := chi.URLParam(req, "id")
		if id != "42" {
			return result.ErrCode[user](code.NotFound, "user "+id+" not found",
				common.WithModule("database.users"))
		}
		return result.Ok(user{ID: id, Name: "Ada"})
	}))
	r.Method(http.MethodDelete, "/users/{id}", httpx.Handler(w, func(*http.Request) result.Void {
		return result.OkVoid()
	}))
	r.Method(http.MethodGet, "/broken", httpx.Handler(w, func(*http.Request) result.Result[int] {
		var res result.Result[int]
		return res
	}))
	return r
}

func TestHandler_Success(t *testing.T) {
	srv := httptest.NewServer(newRouter(quietWriter()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var u user
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
	assert.Equal(t, user{ID: "42", Name: "Ada"}, u)
}

func TestHandler_Void(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(quietWriter()).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/42", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_Error(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	req.Header.Set(httpx.HeaderCorrelationID, "req-123")
	rec := httptest.NewRecorder()
	newRouter(quietWriter()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-123", rec.Header().Get(httpx.HeaderCorrelationID))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.EqualValues(t, -2, doc["code"])
	assert.Equal(t, "user 7 not found", doc["message"])
	assert.Equal(t, "database.users", doc["module"])
	assert.Equal(t, "req-123", doc["correlation_id"])
	assert.NotContains(t, doc, "details")
}

func TestHandler_Uninitialized(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(quietWriter()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	e, err := httpx.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, code.NotInitialized, e.Code())
	assert.Equal(t, "common.result", e.Module())
}

func TestWrite_GeneratesCorrelationID(t *testing.T) {
	rec := httptest.NewRecorder()
	quietWriter().Write(rec, nil, common.New(code.Timeout, "slow"))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	corr := rec.Header().Get(httpx.HeaderCorrelationID)
	_, err := uuid.Parse(corr)
	require.NoError(t, err)

	b, err := httpx.DecodeBody(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, corr, b.CorrelationID)
}

func TestWrite_UsesMapper(t *testing.T) {
	m, err := mapper.New(mapper.WithHTTPPrefix(code.Timeout, "database", http.StatusServiceUnavailable))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	quietWriter(httpx.WithMapper(m)).Write(rec, nil,
		common.New(code.Timeout, "pool wait", common.WithModule("database.pool")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWrite_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	w := httpx.NewWriter(httpx.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	rec := httptest.NewRecorder()
	w.Write(rec, nil, common.New(code.InternalError, "boom"))

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	quietWriter(httpx.WithModule("network.http")).WriteError(rec, nil, errors.New("socket closed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	e, err := httpx.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, code.InternalError, e.Code())
	assert.Equal(t, "network.http", e.Module())
	assert.Equal(t, "socket closed", e.Message())
}

func TestDecode_RoundTrip(t *testing.T) {
	want := common.New(code.DatabaseQueryTimeout, "query timed out",
		common.WithModule("database.query"), common.WithDetails(""))

	rec := httptest.NewRecorder()
	quietWriter().Write(rec, nil, want)

	got, err := httpx.Decode(rec.Body)
	require.NoError(t, err)
	assert.True(t, want.Equal(got), "want %v, got %v", want, got)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := httpx.Decode(strings.NewReader("{not json"))
	assert.Error(t, err)
}
