package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/storage"
)

// fakeStore is an in-memory ObjectStore with configurable rejections.
type fakeStore struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	rejectMimes  map[string]bool
	forceExists  int // next N uploads fail with ErrObjectExists
	attempts     []writeAttempt
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
		rejectMimes:  map[string]bool{},
	}
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, opts storage.UploadOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, writeAttempt{key: key, contentType: opts.ContentType})

	if f.rejectMimes[opts.ContentType] {
		return fmt.Errorf("upload %s: mime type %s is not supported: %w", key, opts.ContentType, storage.ErrUnsupportedMime)
	}
	if f.forceExists > 0 {
		f.forceExists--
		return fmt.Errorf("upload %s: %w", key, storage.ErrObjectExists)
	}
	if _, ok := f.objects[key]; ok && !opts.Upsert {
		return fmt.Errorf("upload %s: %w", key, storage.ErrObjectExists)
	}
	f.objects[key] = append([]byte(nil), data...)
	f.contentTypes[key] = opts.ContentType
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func pngInput() IngestInput {
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	return IngestInput{
		Base64:   "data:image/png;base64," + payload,
		FileName: "photo.png",
		MimeType: "image/png",
	}
}

func TestIngestStoresAndDescribes(t *testing.T) {
	store := newFakeStore()
	svc := NewService(nil, store)

	stored, err := svc.Ingest(context.Background(), pngInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.StorageKey, "messages/"), "key %q", stored.StorageKey)
	assert.Equal(t, "image/png", stored.MimeType)
	assert.Equal(t, KindImage, stored.Kind)
	assert.Equal(t, int64(len("png-bytes")), stored.Size)
	assert.Equal(t, "https://cdn.test/"+stored.StorageKey, stored.PublicURL)
	assert.Equal(t, []byte("png-bytes"), store.objects[stored.StorageKey])
}

// Two identical ingestions never overwrite: distinct keys, both objects kept.
func TestIngestNeverOverwrites(t *testing.T) {
	store := newFakeStore()
	svc := NewService(nil, store)
	ctx := context.Background()

	first, err := svc.Ingest(ctx, pngInput())
	require.NoError(t, err)
	second, err := svc.Ingest(ctx, pngInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.StorageKey, second.StorageKey)
	assert.Len(t, store.objects, 2)
}

func TestIngestContentTypeFallback(t *testing.T) {
	store := newFakeStore()
	store.rejectMimes["image/heic"] = true
	svc := NewService(nil, store)

	input := pngInput()
	input.MimeType = "image/heic"
	input.FileName = "photo.heic"

	stored, err := svc.Ingest(context.Background(), input)
	require.NoError(t, err)

	// Same key on retry, octet-stream on the wire, resolved mime preserved.
	require.Len(t, store.attempts, 2)
	assert.Equal(t, store.attempts[0].key, store.attempts[1].key)
	assert.Equal(t, "application/octet-stream", store.attempts[1].contentType)
	assert.Equal(t, "image/heic", stored.MimeType)
}

func TestIngestRenameOnCollision(t *testing.T) {
	store := newFakeStore()
	store.forceExists = 1
	svc := NewService(nil, store)

	stored, err := svc.Ingest(context.Background(), pngInput())
	require.NoError(t, err)

	require.Len(t, store.attempts, 2)
	assert.NotEqual(t, store.attempts[0].key, store.attempts[1].key)
	// The renamed key is authoritative for everything downstream.
	assert.Equal(t, store.attempts[1].key, stored.StorageKey)
	assert.Equal(t, "https://cdn.test/"+store.attempts[1].key, stored.PublicURL)
	assert.Contains(t, store.objects, store.attempts[1].key)
}

func TestIngestCollisionRetryExhausted(t *testing.T) {
	store := newFakeStore()
	store.forceExists = 2
	svc := NewService(nil, store)

	_, err := svc.Ingest(context.Background(), pngInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage), "error = %v", err)
	require.Len(t, store.attempts, 2)
}

func TestIngestFallbackAlsoRejected(t *testing.T) {
	store := newFakeStore()
	store.rejectMimes["application/x-custom"] = true
	store.rejectMimes["application/octet-stream"] = true
	svc := NewService(nil, store)

	input := IngestInput{
		Base64:   base64.StdEncoding.EncodeToString([]byte("blob")),
		MimeType: "application/x-custom",
	}

	_, err := svc.Ingest(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStorage), "error = %v", err)
	// Both rejection messages surface in the combined error.
	assert.Contains(t, err.Error(), "not supported")
}

func TestIngestAcquisitionFailureDoesNotTouchStore(t *testing.T) {
	store := newFakeStore()
	svc := NewService(nil, store)

	_, err := svc.Ingest(context.Background(), IngestInput{Base64: "%%%not-base64%%%"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAcquisition), "error = %v", err)
	assert.Empty(t, store.attempts)
}
