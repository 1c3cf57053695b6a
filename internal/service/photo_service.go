package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/fabricator-bff/internal/capture"
	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
)

// PhotoService holds photos taken on a detail view for the life of a session.
type PhotoService struct {
	Store repository.PhotoStoreInterface
}

// AddPhoto decodes an uploaded data URI and runs it through the capture
// widget so every stored photo is a quality 80 JPEG. The photo is held until
// the session logs out or reaches expiresAt.
func (s *PhotoService) AddPhoto(ctx context.Context, sessionID string, expiresAt time.Time, kind, recordID, dataURI string) (*model.Photo, error) {
	img, err := capture.DecodeDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	var photo *model.Photo
	widget := capture.NewWidget(capture.StillDevice{Image: img}, func(uri string) {
		b := img.Bounds()
		photo = &model.Photo{
			ID:         uuid.NewString(),
			RecordKind: kind,
			RecordID:   recordID,
			DataURI:    uri,
			Width:      b.Dx(),
			Height:     b.Dy(),
			CapturedAt: time.Now().UTC(),
		}
		s.Store.Add(sessionID, expiresAt, *photo)
	})
	defer widget.Close()

	if err := widget.Activate(ctx); err != nil {
		return nil, err
	}
	if _, err := widget.Capture(); err != nil {
		return nil, err
	}
	log.Printf("📷 photo %s attached to %s %s", photo.ID, kind, recordID)
	return photo, nil
}

func (s *PhotoService) ListPhotos(sessionID, kind, recordID string) []model.Photo {
	return s.Store.List(sessionID, kind, recordID)
}

// DropSession discards a session's photos; wired to logout.
func (s *PhotoService) DropSession(sessionID string) {
	if n := s.Store.DropSession(sessionID); n > 0 {
		log.Printf("🗑️ discarded %d photos for session %s", n, sessionID)
	}
}
