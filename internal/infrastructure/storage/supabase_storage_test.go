package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64(t *testing.T) {
	data, err := DecodeBase64("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = DecodeBase64("aGVsbG8")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = DecodeBase64("%%%")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = DecodeBase64("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupabaseStorage_Upload(t *testing.T) {
	var method, path, auth, ctype, upsert, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		auth, ctype, upsert = r.Header.Get("Authorization"), r.Header.Get("Content-Type"), r.Header.Get("x-upsert")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = w.Write([]byte(`{"Key":"imagens/x"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL+"/", "service-key", "imagens")
	obj, err := s.UploadBase64(context.Background(), "/12345678000195/produtos/a.png", "aGVsbG8=", "image/png", false)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/storage/v1/object/imagens/12345678000195/produtos/a.png", path)
	assert.Equal(t, "Bearer service-key", auth)
	assert.Equal(t, "image/png", ctype)
	assert.Empty(t, upsert)
	assert.Equal(t, "hello", body)
	assert.Equal(t, "12345678000195/produtos/a.png", obj.Path)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/imagens/12345678000195/produtos/a.png", obj.PublicURL)

	_, err = s.UploadBase64(context.Background(), "a.png", "aGVsbG8=", "image/png", true)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "true", upsert)
}

func TestSupabaseStorage_Delete(t *testing.T) {
	var got map[string][]string
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "imagens")
	require.NoError(t, s.Delete(context.Background(), "a.png", "b.png"))

	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/storage/v1/object/imagens", path)
	assert.Equal(t, []string{"a.png", "b.png"}, got["prefixes"])

	require.NoError(t, s.Delete(context.Background()))
}

func TestSupabaseStorage_ErrorIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "imagens")
	_, err := s.UploadBase64(context.Background(), "a.png", "aGVsbG8=", "image/png", false)

	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.StatusCode)
	assert.Equal(t, "The resource already exists", upErr.Message)
}
