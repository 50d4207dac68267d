package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"tradie/internal/domain/entity"
	"tradie/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// mediaUploader fans uploads out across the slots that still carry a raw
// payload. Stages before and after it run sequentially; concurrency exists
// only across independent files within this stage.
type mediaUploader struct {
	storage service.MediaStorage
	logger  *slog.Logger
}

func newMediaUploader(storage service.MediaStorage, logger *slog.Logger) *mediaUploader {
	return &mediaUploader{storage: storage, logger: logger}
}

type uploadOutcome struct {
	slotKey string
	key     string
	url     string
}

// UploadAll transfers every pending slot and returns the resolved URLs keyed
// by slot key, plus the storage keys written. On any failure the uploads
// that did complete are deleted best-effort and an error describing the
// first failed slot is returned.
func (u *mediaUploader) UploadAll(ctx context.Context, slots []entity.MediaSlot) (map[string]string, []string, error) {
	pending := make([]entity.MediaSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.NeedsUpload() {
			pending = append(pending, slot)
		}
	}
	if len(pending) == 0 {
		return map[string]string{}, nil, nil
	}

	outcomes := make([]uploadOutcome, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range pending {
		g.Go(func() error {
			key := storageKey(slot)
			url, err := u.storage.Upload(gctx, key, slot.ContentType, slot.Data)
			if err != nil {
				return errors.Wrapf(err, "%s upload failed", slotLabel(slot.Role))
			}
			outcomes[i] = uploadOutcome{slotKey: slot.SlotKey(), key: key, url: url}

			return nil
		})
	}

	err := g.Wait()

	urls := make(map[string]string, len(pending))
	keys := make([]string, 0, len(pending))
	for _, outcome := range outcomes {
		if outcome.key == "" {
			continue
		}
		urls[outcome.slotKey] = outcome.url
		keys = append(keys, outcome.key)
	}

	if err != nil {
		u.Cleanup(context.WithoutCancel(ctx), keys)

		return nil, nil, err
	}

	return urls, keys, nil
}

// Cleanup deletes previously written media objects, tolerating failure.
// Used after an aborted submission to limit orphaned storage.
func (u *mediaUploader) Cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := u.storage.Delete(ctx, key); err != nil {
			u.logger.Warn("Failed to delete orphaned media object",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}
}

// storageKey builds a unique object key, keeping the role as a prefix and
// the original file extension so stored objects stay browsable.
func storageKey(slot entity.MediaSlot) string {
	ext := strings.ToLower(filepath.Ext(slot.Filename))

	return string(slot.Role) + "/" + uuid.New().String() + ext
}

// slotLabel is the user-facing name of a media role, used in upload
// failure messages.
func slotLabel(role entity.MediaRole) string {
	switch role {
	case entity.MediaRoleLogo:
		return "Logo"
	case entity.MediaRoleCover:
		return "Cover image"
	case entity.MediaRoleGallery:
		return "Gallery image"
	default:
		return "Media"
	}
}
