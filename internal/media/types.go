// Package media implements the inbound media ingestion pipeline: payload
// acquisition, MIME resolution, storage-key composition, object store write
// with retry, and message-kind classification.
package media

import "errors"

// Kind classifies stored media into the message taxonomy.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	KindFile     Kind = "file"
)

// MaxPayloadBytes bounds a single acquired payload.
const MaxPayloadBytes = 100 << 20

var (
	// ErrAcquisition marks failures obtaining the raw payload bytes
	// (bad base64, non-2xx fetch, empty payload).
	ErrAcquisition = errors.New("media acquisition failed")
	// ErrStorage marks fatal object store write failures, after the
	// content-type and rename retries are exhausted.
	ErrStorage = errors.New("media storage failed")
)

// Source carries the resolution signals of an ingestion request.
// MimeType may hold the source-declared type with trailing parameters.
type Source struct {
	MimeType string
	FileName string
	MediaURL string
}

// payload is the acquired binary content plus the MIME the transport
// declared for it (data URL prefix or fetch Content-Type header), kept as a
// secondary resolution signal.
type payload struct {
	bytes        []byte
	declaredMime string
}

// IngestInput is a single media ingestion request. Base64 takes precedence
// over MediaURL when both are set.
type IngestInput struct {
	Base64   string
	MediaURL string
	FileName string
	MimeType string
}

// StoredMedia describes a successfully persisted media object. StorageKey and
// FileName reflect any rename the collision retry performed; they are
// authoritative for the response body and the message metadata.
type StoredMedia struct {
	StorageKey string
	FileName   string
	PublicURL  string
	MimeType   string
	Size       int64
	Kind       Kind
	SourceURL  string
}
