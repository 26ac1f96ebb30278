package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/hareware-api/internal/application/ports"
	"github.com/jhoicas/hareware-api/internal/domain"
)

var _ ports.ObjectStorage = (*SupabaseStorage)(nil)

const serviceName = "storage"

// SupabaseStorage adaptador de la API REST de Supabase Storage para un bucket público.
type SupabaseStorage struct {
	baseURL    string
	key        string
	bucket     string
	httpClient *http.Client
}

// NewSupabaseStorage construye el adaptador. baseURL es la URL del proyecto (https://xyz.supabase.co).
func NewSupabaseStorage(baseURL, key, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		key:        key,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// DecodeBase64 decodifica el contenido aceptando el prefijo data URL ("data:image/png;base64,").
func DecodeBase64(content string) ([]byte, error) {
	if i := strings.Index(content, ","); i >= 0 && strings.HasPrefix(content, "data:") {
		content = content[i+1:]
	}
	content = strings.TrimSpace(content)
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		// algunos clientes envían base64 sin padding
		if data, err2 := base64.RawStdEncoding.DecodeString(content); err2 == nil {
			return data, nil
		}
		return nil, fmt.Errorf("%w: base64 inválido", domain.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: contenido vacío", domain.ErrInvalidInput)
	}
	return data, nil
}

// UploadBase64 sube el archivo; con overwrite=true usa PUT (update) en lugar de POST.
func (s *SupabaseStorage) UploadBase64(ctx context.Context, path, contentBase64, contentType string, overwrite bool) (*ports.StoredObject, error) {
	data, err := DecodeBase64(contentBase64)
	if err != nil {
		return nil, err
	}
	path = strings.Trim(path, "/")
	method := http.MethodPost
	if overwrite {
		method = http.MethodPut
	}
	req, err := http.NewRequestWithContext(ctx, method, s.objectURL(path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("storage: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if overwrite {
		req.Header.Set("x-upsert", "true")
	}
	if err := s.send(req); err != nil {
		return nil, err
	}
	return &ports.StoredObject{Path: path, PublicURL: s.PublicURL(path)}, nil
}

// Delete elimina uno o más objetos del bucket.
func (s *SupabaseStorage) Delete(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	body, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("storage: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		s.baseURL+"/storage/v1/object/"+s.bucket, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("storage: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.send(req)
}

// PublicURL URL pública del objeto en el bucket.
func (s *SupabaseStorage) PublicURL(path string) string {
	return s.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + strings.Trim(path, "/")
}

func (s *SupabaseStorage) objectURL(path string) string {
	return s.baseURL + "/storage/v1/object/" + s.bucket + "/" + path
}

func (s *SupabaseStorage) send(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			err = ctxErr
		}
		return &domain.UpstreamError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(raw))
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			msg = body.Message
		}
		return &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode, Message: msg}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
