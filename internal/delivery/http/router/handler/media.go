package handler

import (
	"io"
	"mime/multipart"

	"tradie/config"
	"tradie/internal/domain/entity"

	"github.com/pkg/errors"
)

// submissionLimits reads the configured media caps; zero means unlimited.
func submissionLimits(cfg *config.Config) (maxFileBytes int64, maxGallery int) {
	if cfg.Submission == nil {
		return 0, 0
	}

	return cfg.Submission.MaxFileSizeBytes, cfg.Submission.MaxGalleryImages
}

// readMediaFile loads one uploaded file part into a media slot, enforcing
// the per-file size cap before any bytes reach the pipeline.
func readMediaFile(fileHeader *multipart.FileHeader, role entity.MediaRole, galleryIndex int, maxBytes int64) (entity.MediaSlot, error) {
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return entity.MediaSlot{}, errors.Errorf("file %q exceeds the %d byte limit", fileHeader.Filename, maxBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return entity.MediaSlot{}, errors.Wrapf(err, "open uploaded file %q", fileHeader.Filename)
	}
	defer file.Close()

	reader := io.Reader(file)
	if maxBytes > 0 {
		// The reported size can lie; cap the actual read as well.
		reader = io.LimitReader(file, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return entity.MediaSlot{}, errors.Wrapf(err, "read uploaded file %q", fileHeader.Filename)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return entity.MediaSlot{}, errors.Errorf("file %q exceeds the %d byte limit", fileHeader.Filename, maxBytes)
	}

	return entity.MediaSlot{
		Role:         role,
		GalleryIndex: galleryIndex,
		Filename:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
	}, nil
}

// collectMediaSlots merges carried-over remote URLs with freshly uploaded
// file parts into the draft's media slots. A fresh file for a single-slot
// role replaces the carried-over URL; fresh gallery files are appended after
// the kept gallery URLs in upload order.
func collectMediaSlots(
	form *multipart.Form,
	logoURL, coverURL string,
	galleryURLs []string,
	withLogo bool,
	maxFileBytes int64,
	maxGallery int,
) ([]entity.MediaSlot, error) {
	var slots []entity.MediaSlot

	if withLogo {
		slot, ok, err := singleSlot(form, "logo", entity.MediaRoleLogo, logoURL, maxFileBytes)
		if err != nil {
			return nil, err
		}
		if ok {
			slots = append(slots, slot)
		}
	}

	slot, ok, err := singleSlot(form, "cover", entity.MediaRoleCover, coverURL, maxFileBytes)
	if err != nil {
		return nil, err
	}
	if ok {
		slots = append(slots, slot)
	}

	galleryIndex := 0
	for _, remoteURL := range galleryURLs {
		if remoteURL == "" {
			continue
		}
		slots = append(slots, entity.MediaSlot{
			Role:         entity.MediaRoleGallery,
			GalleryIndex: galleryIndex,
			RemoteURL:    remoteURL,
		})
		galleryIndex++
	}

	if form != nil {
		for _, fileHeader := range form.File["gallery"] {
			galleryFile, err := readMediaFile(fileHeader, entity.MediaRoleGallery, galleryIndex, maxFileBytes)
			if err != nil {
				return nil, err
			}
			slots = append(slots, galleryFile)
			galleryIndex++
		}
	}

	if maxGallery > 0 && galleryIndex > maxGallery {
		return nil, errors.Errorf("at most %d gallery images are allowed", maxGallery)
	}

	return slots, nil
}

// singleSlot resolves one single-occupancy role: a fresh file part wins,
// otherwise the carried-over URL is kept, otherwise the slot is absent.
func singleSlot(form *multipart.Form, field string, role entity.MediaRole, remoteURL string, maxFileBytes int64) (entity.MediaSlot, bool, error) {
	if form != nil {
		if files := form.File[field]; len(files) > 0 {
			slot, err := readMediaFile(files[0], role, 0, maxFileBytes)
			if err != nil {
				return entity.MediaSlot{}, false, err
			}

			return slot, true, nil
		}
	}

	if remoteURL != "" {
		return entity.MediaSlot{Role: role, RemoteURL: remoteURL}, true, nil
	}

	return entity.MediaSlot{}, false, nil
}
