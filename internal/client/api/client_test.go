package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabkitab/cli/internal/common"
)

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestGet_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	})
	c.SetToken("tok-123")

	var out map[string]bool
	require.NoError(t, c.Get(context.Background(), "/users/me", nil, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, out["ok"])
}

func TestGet_NoTokenNoHeader(t *testing.T) {
	var hasAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.Get(context.Background(), "/anything", nil, nil))
	assert.False(t, hasAuth)
}

func TestClearToken_StopsAuthenticating(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	c.SetToken("tok-123")
	c.ClearToken()
	require.NoError(t, c.Get(context.Background(), "/anything", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestGet_QueryParams(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	query := url.Values{}
	query.Set("page", "2")
	query.Set("page_size", "50")

	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/admin/logs", query, &out))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "50", gotQuery.Get("page_size"))
}

func TestPostForm_EncodesForm(t *testing.T) {
	var gotContentType, gotUsername string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotUsername = r.PostForm.Get("username")
		w.Write([]byte(`{"access_token":"tok"}`))
	})

	form := url.Values{}
	form.Set("username", "alice@example.org")
	form.Set("password", "pw")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, c.PostForm(context.Background(), "/auth/login", form, &out))
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "alice@example.org", gotUsername)
	assert.Equal(t, "tok", out.AccessToken)
}

func TestPost_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, decodeBody(r, &gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.Post(context.Background(), "/ai/chat", map[string]string{"message": "hi"}, nil))
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hi", gotBody["message"])
}

func TestError_DecodesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	err := c.Get(context.Background(), "/users/me", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Detail)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, "Invalid credentials", Detail(err, "fallback"))
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestError_UnwrapSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrUnauthorized},
		{http.StatusForbidden, common.ErrUnauthorized},
		{http.StatusNotFound, common.ErrNotFound},
	}

	for _, tt := range tests {
		err := &Error{Status: tt.status, Detail: "x"}
		assert.ErrorIs(t, err, tt.want)
	}

	assert.NotErrorIs(t, &Error{Status: http.StatusBadRequest}, common.ErrUnauthorized)
}

func TestError_FallbackWithoutDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	})

	err := c.Get(context.Background(), "/anything", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Detail)
	assert.Equal(t, "fallback", Detail(errors.New("plain"), "fallback"))
}

func TestError_StructuredDetailKeptVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"field required"}]}`))
	})

	err := c.Post(context.Background(), "/auth/register", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Detail, "field required")
}

func TestDo_NetworkFailureWrapsUnavailable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond)

	err := c.Get(context.Background(), "/users/me", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDownload_ReturnsRawBytes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("id,amount\n1,10.50\n"))
	})
	c.SetToken("tok")

	data, err := c.Download(context.Background(), "/expenses/export/csv")
	require.NoError(t, err)
	assert.Equal(t, "id,amount\n1,10.50\n", string(data))
}

func TestDelete_IgnoresBody(t *testing.T) {
	var gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"message":"deleted"}`))
	})

	require.NoError(t, c.Delete(context.Background(), "/expenses/3"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
