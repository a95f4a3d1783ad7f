package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"carebridge/internal/domain/entity"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Upload steps reported by MediaUploadError
const (
	uploadStepRead  = "read"
	uploadStepStore = "store"
)

type mediaDestination struct {
	Folder      string
	Ext         string
	ContentType string
}

// destinationFor derives folder, extension and content type from the kind.
// A message carrying a photo or video attachment is stored like one.
func destinationFor(kind entity.ActionKind, media *entity.MediaAttachment) mediaDestination {
	effective := kind
	if kind == entity.ActionKindMessage && media != nil {
		effective = media.Hint
	}

	uri := ""
	if media != nil {
		uri = media.URI
	}

	switch effective {
	case entity.ActionKindPhoto:
		ext := extensionFromURI(uri, "jpg")
		contentType := "image/" + ext
		if ext == "jpg" {
			contentType = "image/jpeg"
		}

		return mediaDestination{Folder: "photos", Ext: ext, ContentType: contentType}
	case entity.ActionKindVideo:
		ext := extensionFromURI(uri, "mp4")

		return mediaDestination{Folder: "videos", Ext: ext, ContentType: "video/" + ext}
	default:
		return mediaDestination{Folder: "voice", Ext: "m4a", ContentType: "audio/m4a"}
	}
}

// extensionFromURI returns the lower-cased suffix of the URI path, or def
// when the URI has none or is a blob:/data: URI.
func extensionFromURI(uri, def string) string {
	if uri == "" || strings.HasPrefix(uri, "blob:") || strings.HasPrefix(uri, "data:") {
		return def
	}

	p := uri
	if parsed, err := url.Parse(uri); err == nil && parsed.Path != "" {
		p = parsed.Path
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return def
	}

	return ext
}

type mediaUploader struct {
	selector MediaSourceSelector
	storage  service.MediaStorage
	metrics  service.CoordinatorMetrics
	now      func() time.Time
	logger   *slog.Logger
}

// NewMediaUploader creates the media upload adapter. now may be nil.
func NewMediaUploader(
	selector MediaSourceSelector,
	storage service.MediaStorage,
	metrics service.CoordinatorMetrics,
	now func() time.Time,
	logger *slog.Logger,
) usecase.MediaUploader {
	if now == nil {
		now = time.Now
	}

	return &mediaUploader{
		selector: selector,
		storage:  storage,
		metrics:  metrics,
		now:      now,
		logger:   logger,
	}
}

func (u *mediaUploader) Upload(ctx context.Context, userID uuid.UUID, kind entity.ActionKind, media *entity.MediaAttachment) (string, error) {
	if media == nil || (media.URI == "" && media.Base64 == "") {
		return "", domainerrors.NewMediaUploadError(uploadStepRead, errors.New("no media attached"))
	}

	source := u.selector.Select(kind, media)
	data, sniffed, err := source.ToBytes(ctx)
	if err != nil {
		u.metrics.MediaUploaded(kind, false)
		u.logger.Error("[Media] Failed to read media",
			slog.String("user_id", userID.String()),
			slog.String("kind", string(kind)),
			slog.String("source", fmt.Sprintf("%T", source)),
			slog.Any("error", err),
		)

		return "", domainerrors.NewMediaUploadError(uploadStepRead, err)
	}

	dest := destinationFor(kind, media)
	key := fmt.Sprintf("%s/%s-%d.%s", dest.Folder, userID, u.now().UnixMilli(), dest.Ext)

	if err := u.storage.Put(ctx, key, data, dest.ContentType); err != nil {
		u.metrics.MediaUploaded(kind, false)
		u.logger.Error("[Media] Failed to store media",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", domainerrors.NewMediaUploadError(uploadStepStore, err)
	}

	u.metrics.MediaUploaded(kind, true)
	u.logger.Info("[Media] Media uploaded",
		slog.String("key", key),
		slog.String("content_type", dest.ContentType),
		slog.String("sniffed_type", sniffed),
		slog.Int("size", len(data)),
	)

	return u.storage.PublicURL(key), nil
}
