// Package upload moves media files into object storage and records them
// in the photo catalog.
package upload

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"boxpro/internal/backend"
	"boxpro/internal/content"
	"boxpro/internal/logger"
)

// ProgressFunc receives upload progress as a percentage.
type ProgressFunc func(percent int)

// Progress milestones reported during an upload: after validation, after
// the storage transfer, after the catalog insert, and on completion.
const (
	progressValidated   = 20
	progressTransferred = 60
	progressRecorded    = 80
	progressDone        = 100
)

// ObjectPath builds the storage object name for an uploaded file: the
// upload time in milliseconds, a dash, and the sanitized file name.
func ObjectPath(filename string, now time.Time) string {
	base := sanitize(path.Base(filename))
	if base == "" {
		base = uuid.NewString()
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-.")
}

// SniffKind inspects the file content and returns the media kind and the
// content type to store. Unrecognized content is treated as an image.
func SniffKind(data []byte) (content.MediaKind, string) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return content.MediaImage, "application/octet-stream"
	}
	if filetype.IsVideo(data) {
		return content.MediaVideo, kind.MIME.Value
	}
	return content.MediaImage, kind.MIME.Value
}

// PathFromURL extracts the storage object path from a public URL by
// splitting on the bucket segment and taking what follows.
func PathFromURL(url, bucket string) string {
	marker := "/" + bucket + "/"
	parts := strings.Split(url, marker)
	return parts[len(parts)-1]
}

// Uploader runs the two-phase upload: transfer to object storage, then
// record in the photo catalog. The two phases are not atomic; a failed
// insert leaves an orphaned object behind, which the operator can prune
// from the bucket.
type Uploader struct {
	client backend.Client
	bucket string
	now    func() time.Time
}

// NewUploader returns an Uploader writing to the given bucket.
func NewUploader(client backend.Client, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket, now: time.Now}
}

// Upload stores the file and records the photo. progress may be nil.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte, placement content.Placement, projectID *string, progress ProgressFunc) (content.Photo, error) {
	report := func(percent int) {
		if progress != nil {
			progress(percent)
		}
	}

	kind, contentType := SniffKind(data)
	objectPath := ObjectPath(filename, u.now())
	report(progressValidated)

	url, err := u.client.Storage().Upload(ctx, u.bucket, objectPath, data, contentType)
	if err != nil {
		return content.Photo{}, fmt.Errorf("failed to store %s: %w", objectPath, err)
	}
	report(progressTransferred)

	photo := content.Photo{
		URL:        url,
		Kind:       kind,
		Placement:  placement,
		ProjectID:  projectID,
		OrderIndex: 0,
	}
	var created []content.Photo
	if err := u.client.Insert(ctx, "photos", photo, &created); err != nil {
		return content.Photo{}, fmt.Errorf("failed to record %s: %w", objectPath, err)
	}
	report(progressRecorded)

	if len(created) > 0 {
		photo = created[0]
	}
	report(progressDone)
	return photo, nil
}

// Remove deletes a photo: its storage object first, then the catalog
// row. The row is deleted even when the storage removal fails, so a
// half-deleted photo never lingers in listings.
func (u *Uploader) Remove(ctx context.Context, photo content.Photo) error {
	if objectPath := PathFromURL(photo.URL, u.bucket); objectPath != "" {
		if err := u.client.Storage().Remove(ctx, u.bucket, []string{objectPath}); err != nil {
			logger.Get().Warn().Err(err).Str("photo_id", photo.ID).Msg("Failed to remove storage object, deleting catalog row anyway")
		}
	}
	return u.client.Delete(ctx, "photos", photo.ID)
}
