package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author/repository"
	"blog-backend/internal/domains/author/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Limit  int   `json:"limit"`
		Offset int   `json:"offset"`
		Total  int64 `json:"total"`
	} `json:"meta"`
}

type authorBody struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	UpdatedAt   *string `json:"updated_at"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(service.NewAuthorService(repository.NewMemoryRepository()))

	r := gin.New()
	authors := r.Group("/authors")
	authors.POST("", h.Create)
	authors.GET("", h.List)
	authors.GET("/lookup", h.GetByName)
	authors.GET("/:id", h.GetByID)
	authors.PATCH("/:id", h.Update)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decodeAuthor(t *testing.T, env envelope) authorBody {
	t.Helper()
	var a authorBody
	require.NoError(t, json.Unmarshal(env.Data, &a))
	return a
}

func TestAuthorHandler_Create(t *testing.T) {
	r := newRouter()

	code, env := do(t, r, http.MethodPost, "/authors", `{"name":"Jane Doe","phone_number":"5551234567"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	jane := decodeAuthor(t, env)
	assert.Equal(t, "Jane Doe", jane.Name)
	require.NotNil(t, jane.PhoneNumber)
	assert.Equal(t, "5551234567", *jane.PhoneNumber)
	assert.Nil(t, jane.UpdatedAt)

	code, env = do(t, r, http.MethodPost, "/authors", `{"name":"Jane Doe"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "Author name must be unique", env.Error.Message)
	assert.Equal(t, "name", env.Error.Details["field"])
	assert.Equal(t, "author", env.Error.Details["entity"])
}

func TestAuthorHandler_CreateRejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		code    string
		message string
	}{
		{"missing name", `{}`, "VALIDATION_ERROR", "Author must have a name"},
		{"bad phone", `{"name":"A","phone_number":"555-123-45"}`, "VALIDATION_ERROR", "Phone number must be exactly 10 digits"},
		{"malformed json", `{"name":`, "BAD_REQUEST", "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, newRouter(), http.MethodPost, "/authors", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Equal(t, tt.message, env.Error.Message)
		})
	}
}

func TestAuthorHandler_PatchPhoneNumber(t *testing.T) {
	r := newRouter()
	_, env := do(t, r, http.MethodPost, "/authors", `{"name":"Jane Doe","phone_number":"5551234567"}`)
	jane := decodeAuthor(t, env)
	path := "/authors/" + strconv.FormatInt(jane.ID, 10)

	code, env := do(t, r, http.MethodPatch, path, `{"name":"Jane Q. Doe"}`)
	require.Equal(t, http.StatusOK, code)
	got := decodeAuthor(t, env)
	assert.Equal(t, "Jane Q. Doe", got.Name)
	require.NotNil(t, got.PhoneNumber)
	assert.NotNil(t, got.UpdatedAt)

	code, env = do(t, r, http.MethodPatch, path, `{"phone_number":null}`)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, decodeAuthor(t, env).PhoneNumber)
}

func TestAuthorHandler_PatchRejectedKeepsRecord(t *testing.T) {
	r := newRouter()
	_, env := do(t, r, http.MethodPost, "/authors", `{"name":"Jane Doe"}`)
	path := "/authors/" + strconv.FormatInt(decodeAuthor(t, env).ID, 10)

	code, env := do(t, r, http.MethodPatch, path, `{"name":"  "}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Author must have a name", env.Error.Message)

	code, env = do(t, r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, code)
	got := decodeAuthor(t, env)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Nil(t, got.UpdatedAt)
}

func TestAuthorHandler_Reads(t *testing.T) {
	r := newRouter()
	for _, body := range []string{`{"name":"Jane Doe"}`, `{"name":"John Roe"}`} {
		code, _ := do(t, r, http.MethodPost, "/authors", body)
		require.Equal(t, http.StatusCreated, code)
	}

	code, env := do(t, r, http.MethodGet, "/authors/lookup?name=John%20Roe", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "John Roe", decodeAuthor(t, env).Name)

	code, env = do(t, r, http.MethodGet, "/authors/lookup?name=Nobody", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "AUTHOR_NOT_FOUND", env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/authors/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	code, env = do(t, r, http.MethodGet, "/authors?limit=1&offset=1", "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
	assert.Equal(t, 1, env.Meta.Limit)

	var page []authorBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "John Roe", page[0].Name)
}
