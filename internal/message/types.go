// Package message reconciles stored media against the messages table.
package message

import (
	"errors"
	"strings"

	dbpkg "github.com/drvendasdev/pure-project-groundwork-sub000/internal/db"
)

// processedByTag marks rows touched by the automation media pipeline.
const processedByTag = "n8n"

// fallbackContent is the placeholder body for messages this pipeline has to
// create itself when no upstream row exists yet.
const fallbackContent = "[media]"

// ErrReconciliation marks a failed fallback insert: the artifact is stored
// but could not be linked to a message row.
var ErrReconciliation = errors.New("message reconciliation failed")

// KeyKind selects the lookup column for a message id.
type KeyKind string

const (
	// KeyInternal addresses rows by primary key (UUID-shaped ids).
	KeyInternal KeyKind = "internal"
	// KeyExternal addresses rows by the upstream channel's message id.
	KeyExternal KeyKind = "external"
)

// Key is the tagged lookup key for a message, decided once per request and
// passed down so the internal-vs-external branch is never re-derived.
type Key struct {
	Kind KeyKind
	ID   string
}

// KeyFor classifies messageID: canonical UUID shape addresses the primary
// key, anything else the external_id column.
func KeyFor(messageID string) Key {
	id := strings.TrimSpace(messageID)
	if dbpkg.IsUUID(id) {
		return Key{Kind: KeyInternal, ID: id}
	}
	return Key{Kind: KeyExternal, ID: id}
}

// Direction of the message the media belongs to.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// MediaAttachment carries the stored-media fields written onto a message row.
// StoragePath and FileName must be the post-retry authoritative values.
type MediaAttachment struct {
	FileURL     string
	FileName    string
	MimeType    string
	MessageType string
	StoragePath string
	SourceURL   string
}

// AttachInput is one reconciliation request.
type AttachInput struct {
	MessageID      string
	Direction      Direction
	ConversationID string
	WorkspaceID    string
	Media          MediaAttachment
}

// Outcome reports what the reconciler did.
type Outcome string

const (
	// OutcomeUpdated: an existing row was found and its media fields set.
	OutcomeUpdated Outcome = "updated"
	// OutcomeInserted: no row existed; a fallback row was created.
	OutcomeInserted Outcome = "inserted"
	// OutcomeSkipped: no row existed and context for a fallback insert was
	// missing. Soft condition: the media is stored, only the linkage is
	// incomplete.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeIgnored: outbound direction, reconciliation does not apply.
	OutcomeIgnored Outcome = "ignored"
)

// AttachResult is the reconciler's report.
type AttachResult struct {
	Outcome   Outcome
	MessageID string
}
