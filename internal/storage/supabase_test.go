package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *SupabaseStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabaseStore(nil, srv.URL, "whatsapp-media", "svc-key")
}

func TestSupabaseUploadSuccess(t *testing.T) {
	var gotPath, gotAuth, gotContentType, gotUpsert string
	var gotBody []byte
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	err := store.Upload(context.Background(), "messages/123_abc.png", []byte("png-bytes"), UploadOptions{ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/whatsapp-media/messages/123_abc.png", gotPath)
	assert.Equal(t, "Bearer svc-key", gotAuth)
	assert.Equal(t, "image/png", gotContentType)
	assert.Equal(t, "false", gotUpsert)
	assert.Equal(t, []byte("png-bytes"), gotBody)
}

func TestSupabaseUploadConflict(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
	})

	err := store.Upload(context.Background(), "messages/dup.png", []byte("x"), UploadOptions{ContentType: "image/png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrObjectExists), "want ErrObjectExists, got %v", err)
}

func TestSupabaseUploadMimeRejected(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"400","error":"invalid_mime_type","message":"mime type audio/ogg is not supported"}`))
	})

	err := store.Upload(context.Background(), "messages/voice.ogg", []byte("x"), UploadOptions{ContentType: "audio/ogg"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedMime), "want ErrUnsupportedMime, got %v", err)
}

func TestSupabaseUploadOtherFailure(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"backend down"}`))
	})

	err := store.Upload(context.Background(), "messages/x.bin", []byte("x"), UploadOptions{ContentType: "application/octet-stream"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrObjectExists))
	assert.False(t, errors.Is(err, ErrUnsupportedMime))
	assert.Contains(t, err.Error(), "backend down")
}

func TestSupabasePublicURL(t *testing.T) {
	store := NewSupabaseStore(nil, "https://proj.supabase.co/", "whatsapp-media", "svc")
	got := store.PublicURL("messages/1700000000000_abcd1234_report.pdf")
	want := "https://proj.supabase.co/storage/v1/object/public/whatsapp-media/messages/1700000000000_abcd1234_report.pdf"
	assert.Equal(t, want, got)
}
