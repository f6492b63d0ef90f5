// Package encode turns free text into barcode or QR code images.
//
// It wraps two encoding libraries (boombuler/barcode for linear
// symbologies, skip2/go-qrcode for QR codes) behind a pair of adapters
// that validate payloads up front, classify failures, and render the
// result as an in-memory PNG.
package encode

import (
	"errors"
	"fmt"
)

// Kind selects which encoder family handles a payload.
type Kind string

const (
	KindBarcode Kind = "barcode"
	KindQR      Kind = "qrcode"
)

// ParseKind maps a wire identifier to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindBarcode:
		return KindBarcode, nil
	case KindQR:
		return KindQR, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// Failure classes. Everything else coming out of the underlying encoding
// libraries is wrapped and treated as an unknown encoding failure.
var (
	// ErrEmptyPayload is returned when there is nothing to encode.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrUnsupportedSymbology is returned for a symbology identifier
	// that is not registered.
	ErrUnsupportedSymbology = errors.New("unsupported symbology")

	// ErrInvalidPayload is returned when the payload violates the
	// symbology's length or checksum rules.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrIllegalCharacter is returned when the payload contains
	// characters outside the symbology's alphabet.
	ErrIllegalCharacter = errors.New("illegal character")
)

// Image is a rendered code held entirely in memory.
type Image struct {
	PNG    []byte
	Width  int
	Height int
}
