package encode

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
)

// Symbology identifies a linear barcode encoding scheme.
type Symbology string

const (
	Code128 Symbology = "code128"
	Code39  Symbology = "code39"
	EAN13   Symbology = "ean13"
	EAN8    Symbology = "ean8"
	UPCA    Symbology = "upca"
	PZN7    Symbology = "pzn7"
)

// Symbologies returns the supported symbologies in display order.
func Symbologies() []Symbology {
	return []Symbology{Code128, Code39, EAN13, EAN8, UPCA, PZN7}
}

// ParseSymbology maps a wire identifier to a Symbology.
func ParseSymbology(s string) (Symbology, error) {
	switch sym := Symbology(s); sym {
	case Code128, Code39, EAN13, EAN8, UPCA, PZN7:
		return sym, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSymbology, s)
	}
}

// Label returns a human-readable name for the symbology.
func (s Symbology) Label() string {
	switch s {
	case Code128:
		return "Code 128"
	case Code39:
		return "Code 39"
	case EAN13:
		return "EAN-13"
	case EAN8:
		return "EAN-8"
	case UPCA:
		return "UPC-A"
	case PZN7:
		return "PZN7"
	default:
		return string(s)
	}
}

// code39Alphabet is the standard Code 39 character set. Lowercase letters
// are deliberately excluded.
const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code128MaxLength mirrors the content limit of the underlying encoder.
const code128MaxLength = 80

// Barcode encodes payload under the given symbology and renders it as a
// PNG. The scale parameter controls the rendered size: module width is
// 2*scale pixels and bar height 100*scale pixels. Payloads are validated
// against the symbology's alphabet and length/checksum rules before the
// encoding library is called, so failures map onto ErrInvalidPayload,
// ErrIllegalCharacter or ErrUnsupportedSymbology; anything the library
// still rejects is returned wrapped.
func Barcode(payload string, sym Symbology, scale float64) (*Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", scale)
	}

	var bc barcode.Barcode
	var err error

	switch sym {
	case Code128:
		if len([]rune(payload)) > code128MaxLength {
			return nil, fmt.Errorf("%w: at most %d characters, got %d", ErrInvalidPayload, code128MaxLength, len([]rune(payload)))
		}
		for _, r := range payload {
			if r > 127 {
				return nil, fmt.Errorf("%w: %q is not encodable in Code 128", ErrIllegalCharacter, r)
			}
		}
		bc, err = code128.Encode(payload)

	case Code39:
		for _, r := range payload {
			if !strings.ContainsRune(code39Alphabet, r) {
				return nil, fmt.Errorf("%w: %q is not in the Code 39 alphabet", ErrIllegalCharacter, r)
			}
		}
		bc, err = code39.Encode(payload, false, false)

	case EAN13:
		if err := validateGTIN(payload, 12); err != nil {
			return nil, err
		}
		bc, err = ean.Encode(payload)

	case EAN8:
		if err := validateGTIN(payload, 7); err != nil {
			return nil, err
		}
		bc, err = ean.Encode(payload)

	case UPCA:
		if err := validateGTIN(payload, 11); err != nil {
			return nil, err
		}
		// A UPC-A number is an EAN-13 with a leading zero; the check
		// digit is unchanged.
		bc, err = ean.Encode("0" + payload)

	case PZN7:
		content, cerr := pznContent(payload)
		if cerr != nil {
			return nil, cerr
		}
		bc, err = code39.Encode(content, false, false)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSymbology, sym)
	}

	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", sym, err)
	}
	return renderBarcodePNG(bc, scale)
}

// validateGTIN checks a numeric payload for a GTIN-family symbology whose
// data part is dataLen digits. The payload may carry the check digit
// (dataLen+1 digits), in which case it must match the computed one.
func validateGTIN(payload string, dataLen int) error {
	if len(payload) != dataLen && len(payload) != dataLen+1 {
		return fmt.Errorf("%w: need %d or %d digits, got %d characters", ErrInvalidPayload, dataLen, dataLen+1, len(payload))
	}
	if err := digitsOnly(payload); err != nil {
		return err
	}
	if len(payload) == dataLen+1 {
		want := gtinCheckDigit(payload[:dataLen])
		if int(payload[dataLen]-'0') != want {
			return fmt.Errorf("%w: check digit mismatch, want %d", ErrInvalidPayload, want)
		}
	}
	return nil
}

// gtinCheckDigit computes the GTIN check digit over the data digits,
// weighting 3,1,3,... from the rightmost digit. The same rule covers
// EAN-8, UPC-A and EAN-13.
func gtinCheckDigit(digits string) int {
	sum, weight := 0, 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10
}

// pznContent validates a PZN7 payload (six data digits, optionally
// followed by the check digit) and returns the Code 39 content
// "PZN-NNNNNNN". The check digit is the weighted sum of the data digits
// (weights 2..7) mod 11; numbers whose remainder is 10 have no valid PZN
// encoding.
func pznContent(payload string) (string, error) {
	if len(payload) != 6 && len(payload) != 7 {
		return "", fmt.Errorf("%w: need 6 or 7 digits, got %d characters", ErrInvalidPayload, len(payload))
	}
	if err := digitsOnly(payload); err != nil {
		return "", err
	}

	sum := 0
	for i := 0; i < 6; i++ {
		sum += (i + 2) * int(payload[i]-'0')
	}
	check := sum % 11
	if check == 10 {
		return "", fmt.Errorf("%w: number has no valid PZN check digit", ErrInvalidPayload)
	}
	if len(payload) == 7 && int(payload[6]-'0') != check {
		return "", fmt.Errorf("%w: check digit mismatch, want %d", ErrInvalidPayload, check)
	}

	return fmt.Sprintf("PZN-%s%d", payload[:6], check), nil
}

func digitsOnly(payload string) error {
	for _, r := range payload {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q is not a digit", ErrIllegalCharacter, r)
		}
	}
	return nil
}
