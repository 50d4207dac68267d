// Package entity contains the core business objects of the project.
package entity

import "fmt"

// MediaRole identifies the purpose of one media attachment on a record.
type MediaRole string

const (
	// MediaRoleLogo is the business logo image.
	MediaRoleLogo MediaRole = "logo"
	// MediaRoleCover is the large banner image shown at the top of a record.
	MediaRoleCover MediaRole = "cover"
	// MediaRoleGallery is a positional member of the gallery collection.
	MediaRoleGallery MediaRole = "gallery"
)

// IsValid checks if the MediaRole is a known value.
func (r MediaRole) IsValid() bool {
	switch r {
	case MediaRoleLogo, MediaRoleCover, MediaRoleGallery:
		return true
	default:
		return false
	}
}

// MediaSlot represents one pending media attachment on a draft. A slot either
// carries a raw payload awaiting upload, or a pre-existing remote URL when
// the user edits a record without replacing the media. Size and MIME-type
// checks happen at selection time in the client; slots reaching the pipeline
// are assumed valid.
type MediaSlot struct {
	Role         MediaRole // Logical role of the attachment.
	GalleryIndex int       // Position within the gallery; meaningful only for gallery slots.
	Filename     string    // Original filename, used to preserve the extension in storage keys.
	ContentType  string    // MIME type reported at selection time.
	Data         []byte    // Raw payload; nil when RemoteURL is set and the media was not replaced.
	RemoteURL    string    // Pre-existing public URL carried over from a previous submission.
}

// SlotKey returns the stable identifier a resolved URL is keyed by:
// "logo", "cover", or "gallery_N" for positional gallery members.
func (s MediaSlot) SlotKey() string {
	if s.Role == MediaRoleGallery {
		return fmt.Sprintf("%s_%d", s.Role, s.GalleryIndex)
	}

	return string(s.Role)
}

// NeedsUpload reports whether the slot carries a payload that still has to be
// transferred to object storage.
func (s MediaSlot) NeedsUpload() bool {
	return len(s.Data) > 0 && s.RemoteURL == ""
}
