package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/media"
	"github.com/drvendasdev/pure-project-groundwork-sub000/internal/message"
)

// MediaProcessorHandler serves the media ingestion endpoint called by the
// upstream messaging automation.
type MediaProcessorHandler struct {
	mediaService   *media.Service
	messageService *message.Service
	logger         *slog.Logger
}

// NewMediaProcessorHandler creates a MediaProcessorHandler.
func NewMediaProcessorHandler(log *slog.Logger, mediaService *media.Service, messageService *message.Service) *MediaProcessorHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MediaProcessorHandler{
		mediaService:   mediaService,
		messageService: messageService,
		logger:         log.With(slog.String("handler", "media_processor")),
	}
}

// Register mounts the processor route.
func (h *MediaProcessorHandler) Register(e *echo.Echo) {
	e.POST("/n8n-media-processor", h.Process)
}

// ProcessRequest is the inbound payload. Exactly one of Base64 and MediaURL
// must be set. PhoneNumber is accepted for compatibility with the upstream
// automation but unused.
type ProcessRequest struct {
	MessageID      string `json:"messageId" validate:"required"`
	Base64         string `json:"base64,omitempty" validate:"required_without=MediaURL,excluded_with=MediaURL"`
	MediaURL       string `json:"mediaUrl,omitempty"`
	FileName       string `json:"fileName,omitempty"`
	MimeType       string `json:"mimeType,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	WorkspaceID    string `json:"workspaceId,omitempty"`
	Direction      string `json:"direction,omitempty" validate:"omitempty,oneof=inbound outbound"`
	PhoneNumber    string `json:"phoneNumber,omitempty"`
}

// ProcessData describes the stored artifact in a success response.
type ProcessData struct {
	PublicURL   string `json:"publicUrl"`
	FileName    string `json:"fileName"`
	StoragePath string `json:"storagePath"`
	Size        int64  `json:"size"`
	MimeType    string `json:"mimeType"`
	ProcessedBy string `json:"processed_by"`
}

// ProcessResponse is the success envelope.
type ProcessResponse struct {
	Success bool        `json:"success"`
	Data    ProcessData `json:"data"`
}

// Process runs the full pipeline: acquire the payload, store it, and attach
// the result to the addressed message row. Storage and reconciliation commit
// independently; a soft reconciliation skip still yields success since the
// artifact is durable by then.
func (h *MediaProcessorHandler) Process(c echo.Context) error {
	var req ProcessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	ctx := c.Request().Context()

	stored, err := h.mediaService.Ingest(ctx, media.IngestInput{
		Base64:   req.Base64,
		MediaURL: req.MediaURL,
		FileName: req.FileName,
		MimeType: req.MimeType,
	})
	if err != nil {
		h.logger.Error("media ingestion failed",
			slog.String("message_id", req.MessageID),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
	}

	direction := message.DirectionInbound
	if req.Direction == string(message.DirectionOutbound) {
		direction = message.DirectionOutbound
	}

	result, err := h.messageService.AttachMedia(ctx, message.AttachInput{
		MessageID:      req.MessageID,
		Direction:      direction,
		ConversationID: req.ConversationID,
		WorkspaceID:    req.WorkspaceID,
		Media: message.MediaAttachment{
			FileURL:     stored.PublicURL,
			FileName:    stored.FileName,
			MimeType:    stored.MimeType,
			MessageType: string(stored.Kind),
			StoragePath: stored.StorageKey,
			SourceURL:   stored.SourceURL,
		},
	})
	if err != nil {
		h.logger.Error("message reconciliation failed",
			slog.String("message_id", req.MessageID),
			slog.String("storage_path", stored.StorageKey),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
	}

	h.logger.Info("media processed",
		slog.String("message_id", req.MessageID),
		slog.String("outcome", string(result.Outcome)),
		slog.String("storage_path", stored.StorageKey),
		slog.String("mime_type", stored.MimeType),
	)

	return c.JSON(http.StatusOK, ProcessResponse{
		Success: true,
		Data: ProcessData{
			PublicURL:   stored.PublicURL,
			FileName:    stored.FileName,
			StoragePath: stored.StorageKey,
			Size:        stored.Size,
			MimeType:    stored.MimeType,
			ProcessedBy: "n8n",
		},
	})
}
