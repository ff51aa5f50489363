package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/storage"
)

// Service runs the ingestion pipeline against an object store.
type Service struct {
	store  storage.ObjectStore
	client *http.Client
	logger *slog.Logger
}

// NewService creates a media service over the given object store.
func NewService(log *slog.Logger, store storage.ObjectStore) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:  store,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: log.With(slog.String("service", "media")),
	}
}

// Ingest acquires the payload, resolves its type, and persists it under a
// unique key. The returned StoredMedia reflects the key actually written
// after any retry, never the first attempt.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (StoredMedia, error) {
	if s.store == nil {
		return StoredMedia{}, errors.New("object store not configured")
	}

	p, err := s.acquire(ctx, input)
	if err != nil {
		return StoredMedia{}, err
	}

	res := Resolve(Source{
		MimeType: firstNonEmpty(input.MimeType, p.declaredMime),
		FileName: input.FileName,
		MediaURL: input.MediaURL,
	})

	attempt, err := s.write(ctx, writeAttempt{
		key:         ComposeKey(input.FileName, res.Ext),
		contentType: res.Mime,
	}, p.bytes, input.FileName, res.Ext)
	if err != nil {
		return StoredMedia{}, err
	}

	stored := StoredMedia{
		StorageKey: attempt.key,
		FileName:   path.Base(attempt.key),
		PublicURL:  s.store.PublicURL(attempt.key),
		MimeType:   res.Mime,
		Size:       int64(len(p.bytes)),
		Kind:       Classify(res.Mime),
		SourceURL:  strings.TrimSpace(input.MediaURL),
	}
	s.logger.Info("media stored",
		slog.String("key", stored.StorageKey),
		slog.String("mime", stored.MimeType),
		slog.Int64("size", stored.Size),
	)
	return stored, nil
}

// writeAttempt is one upload try: the key and the content type sent.
type writeAttempt struct {
	key         string
	contentType string
}

// retryPolicy transforms a failed attempt into the next one. Each policy
// fires at most once per write.
type retryPolicy struct {
	name      string
	matches   func(error) bool
	transform func(writeAttempt) writeAttempt
}

// write uploads with Upsert=false under two declarative retry policies:
// a rejected content type falls back to octet-stream on the same key, and a
// key collision recomposes a fresh key. Anything else, or an exhausted
// policy list, is fatal with all attempt errors combined.
func (s *Service) write(ctx context.Context, attempt writeAttempt, data []byte, fileName, ext string) (writeAttempt, error) {
	policies := []retryPolicy{
		{
			name:    "content-type fallback",
			matches: func(err error) bool { return errors.Is(err, storage.ErrUnsupportedMime) },
			transform: func(a writeAttempt) writeAttempt {
				a.contentType = octetStream
				return a
			},
		},
		{
			name:    "rename on collision",
			matches: func(err error) bool { return errors.Is(err, storage.ErrObjectExists) },
			transform: func(a writeAttempt) writeAttempt {
				a.key = ComposeKey(fileName, ext)
				return a
			},
		},
	}
	used := make([]bool, len(policies))

	var attemptErrs []error
	for {
		err := s.store.Upload(ctx, attempt.key, data, storage.UploadOptions{
			ContentType: attempt.contentType,
			Upsert:      false,
		})
		if err == nil {
			return attempt, nil
		}
		attemptErrs = append(attemptErrs, err)

		retried := false
		for i, policy := range policies {
			if used[i] || !policy.matches(err) {
				continue
			}
			used[i] = true
			next := policy.transform(attempt)
			s.logger.Warn("store write retry",
				slog.String("policy", policy.name),
				slog.String("key", attempt.key),
				slog.String("next_key", next.key),
				slog.String("error", err.Error()),
			)
			attempt = next
			retried = true
			break
		}
		if !retried {
			return attempt, fmt.Errorf("%w: %v", ErrStorage, errors.Join(attemptErrs...))
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
