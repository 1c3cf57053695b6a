package capture

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
)

type Facing int

const (
	FacingEnvironment Facing = iota // rear camera
	FacingUser
	FacingAny
)

func (f Facing) String() string {
	switch f {
	case FacingEnvironment:
		return "environment"
	case FacingUser:
		return "user"
	default:
		return "any"
	}
}

// Stream is an open camera. Stop must be safe to call more than once.
type Stream interface {
	Frame() (image.Image, error)
	Stop()
}

type Device interface {
	Open(ctx context.Context, facing Facing) (Stream, error)
}

// Widget owns at most one stream at a time and releases it on every exit path:
// capture, cancel, close, and failures in between.
type Widget struct {
	device    Device
	onCapture func(dataURI string)

	mu     sync.Mutex
	stream Stream
	closed bool
}

func NewWidget(device Device, onCapture func(dataURI string)) *Widget {
	return &Widget{device: device, onCapture: onCapture}
}

// Activate opens the rear camera, falling back to any camera. On failure the
// widget stays inactive and capture is refused.
func (w *Widget) Activate(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return appErrors.ErrWidgetClosed
	}
	if w.stream != nil {
		return nil
	}

	stream, err := w.device.Open(ctx, FacingEnvironment)
	if err != nil {
		log.Printf("[Capture] ⚠️ rear camera unavailable (%v), trying any camera", err)
		stream, err = w.device.Open(ctx, FacingAny)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrCameraUnavailable, err)
	}
	w.stream = stream
	return nil
}

func (w *Widget) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stream != nil
}

// Capture grabs one frame, encodes it, releases the camera and hands the data
// URI to the capture callback.
func (w *Widget) Capture() (string, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return "", appErrors.ErrWidgetClosed
	}
	stream := w.stream
	if stream == nil {
		w.mu.Unlock()
		return "", appErrors.ErrCameraUnavailable
	}
	frame, err := stream.Frame()
	w.releaseLocked()
	w.mu.Unlock()

	if err != nil {
		return "", fmt.Errorf("capture frame: %w", err)
	}
	uri, err := EncodeDataURI(frame)
	if err != nil {
		return "", err
	}
	if w.onCapture != nil {
		w.onCapture(uri)
	}
	return uri, nil
}

// Cancel releases the camera without capturing. The widget can be activated again.
func (w *Widget) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.releaseLocked()
}

// Close releases the camera for good.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.releaseLocked()
	w.closed = true
}

func (w *Widget) releaseLocked() {
	if w.stream == nil {
		return
	}
	w.stream.Stop()
	w.stream = nil
}
