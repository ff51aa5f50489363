package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	dbpkg "github.com/drvendasdev/pure-project-groundwork-sub000/internal/db"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/db/sqlc"
)

// Store is the query surface the reconciler needs; satisfied by *sqlc.Queries.
type Store interface {
	UpdateMessageMediaByID(ctx context.Context, arg sqlc.UpdateMessageMediaByIDParams) (int64, error)
	UpdateMessageMediaByExternalID(ctx context.Context, arg sqlc.UpdateMessageMediaByExternalIDParams) (int64, error)
	CreateMessageWithID(ctx context.Context, arg sqlc.CreateMessageWithIDParams) (sqlc.Message, error)
	CreateMessageWithExternalID(ctx context.Context, arg sqlc.CreateMessageWithExternalIDParams) (sqlc.Message, error)
}

// Service attaches media metadata to message rows.
type Service struct {
	queries Store
	logger  *slog.Logger
}

// NewService creates a message reconciliation service.
func NewService(log *slog.Logger, queries Store) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		queries: queries,
		logger:  log.With(slog.String("service", "message")),
	}
}

// AttachMedia updates the message addressed by input.MessageID with the
// stored media fields. Outbound messages are ignored. When no row matches
// and both conversation and workspace ids were supplied, a fallback row is
// created; without that context the miss is logged and reported as a soft
// skip. The upload has already committed by the time this runs, so a skip is
// success with incomplete linkage, never an error.
func (s *Service) AttachMedia(ctx context.Context, input AttachInput) (AttachResult, error) {
	if input.Direction == DirectionOutbound {
		return AttachResult{Outcome: OutcomeIgnored, MessageID: input.MessageID}, nil
	}
	if s.queries == nil {
		return AttachResult{}, fmt.Errorf("%w: queries not configured", ErrReconciliation)
	}

	key := KeyFor(input.MessageID)
	metadata, err := marshalMetadata(input.Media)
	if err != nil {
		return AttachResult{}, fmt.Errorf("%w: %v", ErrReconciliation, err)
	}

	affected, err := s.updateByKey(ctx, key, input.Media, metadata)
	if err != nil {
		return AttachResult{}, fmt.Errorf("%w: update by %s id: %v", ErrReconciliation, key.Kind, err)
	}
	if affected > 0 {
		return AttachResult{Outcome: OutcomeUpdated, MessageID: key.ID}, nil
	}

	if input.ConversationID == "" || input.WorkspaceID == "" {
		s.logger.Warn("message not found and fallback context missing",
			slog.String("message_id", key.ID),
			slog.String("key_kind", string(key.Kind)),
			slog.String("storage_path", input.Media.StoragePath),
		)
		return AttachResult{Outcome: OutcomeSkipped, MessageID: key.ID}, nil
	}

	created, err := s.insertFallback(ctx, key, input, metadata)
	if err != nil {
		return AttachResult{}, err
	}
	s.logger.Info("fallback message created",
		slog.String("message_id", created.ID.String()),
		slog.String("key_kind", string(key.Kind)),
	)
	return AttachResult{Outcome: OutcomeInserted, MessageID: created.ID.String()}, nil
}

func (s *Service) updateByKey(ctx context.Context, key Key, media MediaAttachment, metadata []byte) (int64, error) {
	switch key.Kind {
	case KeyInternal:
		pgID, err := dbpkg.ParseUUID(key.ID)
		if err != nil {
			return 0, err
		}
		return s.queries.UpdateMessageMediaByID(ctx, sqlc.UpdateMessageMediaByIDParams{
			FileUrl:     dbpkg.ToPgText(media.FileURL),
			FileName:    dbpkg.ToPgText(media.FileName),
			MimeType:    dbpkg.ToPgText(media.MimeType),
			MessageType: media.MessageType,
			Metadata:    metadata,
			ID:          pgID,
		})
	default:
		return s.queries.UpdateMessageMediaByExternalID(ctx, sqlc.UpdateMessageMediaByExternalIDParams{
			FileUrl:     dbpkg.ToPgText(media.FileURL),
			FileName:    dbpkg.ToPgText(media.FileName),
			MimeType:    dbpkg.ToPgText(media.MimeType),
			MessageType: media.MessageType,
			Metadata:    metadata,
			ExternalID:  dbpkg.ToPgText(key.ID),
		})
	}
}

func (s *Service) insertFallback(ctx context.Context, key Key, input AttachInput, metadata []byte) (sqlc.Message, error) {
	conversationID, err := dbpkg.ParseUUID(input.ConversationID)
	if err != nil {
		return sqlc.Message{}, fmt.Errorf("%w: invalid conversation id: %v", ErrReconciliation, err)
	}
	workspaceID, err := dbpkg.ParseUUID(input.WorkspaceID)
	if err != nil {
		return sqlc.Message{}, fmt.Errorf("%w: invalid workspace id: %v", ErrReconciliation, err)
	}

	media := input.Media
	if key.Kind == KeyInternal {
		pgID, err := dbpkg.ParseUUID(key.ID)
		if err != nil {
			return sqlc.Message{}, fmt.Errorf("%w: %v", ErrReconciliation, err)
		}
		created, err := s.queries.CreateMessageWithID(ctx, sqlc.CreateMessageWithIDParams{
			ID:             pgID,
			ConversationID: conversationID,
			WorkspaceID:    workspaceID,
			Content:        fallbackContent,
			SenderType:     "contact",
			MessageType:    media.MessageType,
			FileUrl:        dbpkg.ToPgText(media.FileURL),
			FileName:       dbpkg.ToPgText(media.FileName),
			MimeType:       dbpkg.ToPgText(media.MimeType),
			Metadata:       metadata,
		})
		if err != nil {
			return sqlc.Message{}, fmt.Errorf("%w: insert: %v", ErrReconciliation, err)
		}
		return created, nil
	}

	created, err := s.queries.CreateMessageWithExternalID(ctx, sqlc.CreateMessageWithExternalIDParams{
		ExternalID:     dbpkg.ToPgText(key.ID),
		ConversationID: conversationID,
		WorkspaceID:    workspaceID,
		Content:        fallbackContent,
		SenderType:     "contact",
		MessageType:    media.MessageType,
		FileUrl:        dbpkg.ToPgText(media.FileURL),
		FileName:       dbpkg.ToPgText(media.FileName),
		MimeType:       dbpkg.ToPgText(media.MimeType),
		Metadata:       metadata,
	})
	if err != nil {
		return sqlc.Message{}, fmt.Errorf("%w: insert: %v", ErrReconciliation, err)
	}
	return created, nil
}

// marshalMetadata builds the metadata JSONB document: original source URL,
// final storage path, and the processor tag.
func marshalMetadata(media MediaAttachment) ([]byte, error) {
	doc := map[string]any{
		"storage_path": media.StoragePath,
		"processed_by": processedByTag,
	}
	if media.SourceURL != "" {
		doc["media_url"] = media.SourceURL
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return raw, nil
}
