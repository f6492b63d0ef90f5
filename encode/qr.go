package encode

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrBorderModules is the quiet zone drawn around the QR symbol.
const qrBorderModules = 2

// QR encodes payload as a QR code and renders it as a PNG with boxSize
// pixels per module. Error correction is fixed at the low (~7%) level and
// the version is auto-selected to the smallest grid that fits the
// payload. Underlying encoding failures (payload too large for any
// version, internal errors) are returned wrapped without further
// classification.
func QR(payload string, boxSize int) (*Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if boxSize < 1 {
		return nil, fmt.Errorf("box size must be positive, got %d", boxSize)
	}

	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	// The library draws a fixed 4-module border; disable it and let the
	// renderer draw the 2-module quiet zone instead.
	q.DisableBorder = true
	modules := len(q.Bitmap())

	return compositePNG(q.Image(modules*boxSize), qrBorderModules*boxSize)
}
