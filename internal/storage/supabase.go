package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SupabaseStore writes objects to a Supabase storage bucket over its REST API.
type SupabaseStore struct {
	baseURL    string
	bucket     string
	serviceKey string
	client     *http.Client
	logger     *slog.Logger
}

// NewSupabaseStore creates a store for the given project base URL and bucket.
func NewSupabaseStore(log *slog.Logger, baseURL, bucket, serviceKey string) *SupabaseStore {
	if log == nil {
		log = slog.Default()
	}
	return &SupabaseStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 60 * time.Second},
		logger:     log.With(slog.String("store", "supabase")),
	}
}

// storageError is the JSON error body the storage API returns.
type storageError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Upload writes data under key in the configured bucket. The x-upsert header
// mirrors opts.Upsert; a 409 maps to ErrObjectExists and a content-type
// rejection maps to ErrUnsupportedMime so the caller can retry accordingly.
func (s *SupabaseStore) Upload(ctx context.Context, key string, data []byte, opts UploadOptions) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(s.bucket), escapeKey(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", opts.ContentType)
	req.Header.Set("x-upsert", strconv.FormatBool(opts.Upsert))

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := parseStorageError(body)
	s.logger.Warn("upload rejected",
		slog.String("key", key),
		slog.Int("status", resp.StatusCode),
		slog.String("message", message),
	)

	if resp.StatusCode == http.StatusConflict || strings.Contains(strings.ToLower(message), "already exists") {
		return fmt.Errorf("upload %s: %s: %w", key, message, ErrObjectExists)
	}
	if isMimeRejection(resp.StatusCode, message) {
		return fmt.Errorf("upload %s: %s: %w", key, message, ErrUnsupportedMime)
	}
	return fmt.Errorf("upload %s: status %d: %s", key, resp.StatusCode, message)
}

// PublicURL returns the bucket's public object URL for key.
func (s *SupabaseStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(s.bucket), escapeKey(key))
}

func parseStorageError(body []byte) string {
	var parsed storageError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(body))
}

func isMimeRejection(status int, message string) bool {
	if status == http.StatusUnsupportedMediaType {
		return true
	}
	lower := strings.ToLower(message)
	return strings.Contains(lower, "mime type") && strings.Contains(lower, "not supported")
}

// escapeKey escapes each path segment of a storage key, keeping the slashes.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
