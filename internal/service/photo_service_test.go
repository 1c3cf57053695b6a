package service_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/repository"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAddPhoto_ReencodesAsJPEG(t *testing.T) {
	svc := &service.PhotoService{Store: repository.NewPhotoStore()}

	photo, err := svc.AddPhoto(context.Background(), "s1", time.Now().Add(time.Hour), model.RecordKindLead, "FT-000932", pngDataURI(t, 16, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(photo.DataURI, "data:image/jpeg;base64,") {
		t.Errorf("expected jpeg data URI")
	}
	if photo.Width != 16 || photo.Height != 9 {
		t.Errorf("expected 16x9, got %dx%d", photo.Width, photo.Height)
	}

	list := svc.ListPhotos("s1", model.RecordKindLead, "FT-000932")
	if len(list) != 1 || list[0].ID != photo.ID {
		t.Errorf("expected the stored photo, got %+v", list)
	}

	svc.DropSession("s1")
	if len(svc.ListPhotos("s1", model.RecordKindLead, "FT-000932")) != 0 {
		t.Error("expected photos to be dropped with the session")
	}
}

func TestAddPhoto_RejectsBadImage(t *testing.T) {
	svc := &service.PhotoService{Store: repository.NewPhotoStore()}

	_, err := svc.AddPhoto(context.Background(), "s1", time.Now().Add(time.Hour), model.RecordKindLead, "FT-000932", "data:image/png;base64,bm90IGFuIGltYWdl")
	if !errors.Is(err, appErrors.ErrInvalidImage) {
		t.Errorf("expected ErrInvalidImage, got %v", err)
	}
}
