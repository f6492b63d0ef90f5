package encode_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkcode/mkcode/encode"
)

// decodePNG decodes a rendered PNG back to text with the given reader.
func decodePNG(t *testing.T, pngBytes []byte, reader gozxing.Reader) string {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	result, err := reader.Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	require.NoError(t, err)

	return result.GetText()
}

func TestBarcodeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		sym     encode.Symbology
		payload string
		reader  gozxing.Reader
		want    string
	}{
		{"code128", encode.Code128, "Hello-1234", oned.NewCode128Reader(), "Hello-1234"},
		{"code39", encode.Code39, "CODE-39 TEST", oned.NewCode39Reader(), "CODE-39 TEST"},
		{"ean13", encode.EAN13, "123456789012", oned.NewEAN13Reader(), "1234567890128"},
		{"ean8", encode.EAN8, "1234567", oned.NewEAN8Reader(), "12345670"},
		{"upca", encode.UPCA, "03600029145", oned.NewUPCAReader(), "036000291452"},
		{"pzn7", encode.PZN7, "123456", oned.NewCode39Reader(), "PZN-1234562"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := encode.Barcode(tt.payload, tt.sym, 1)
			require.NoError(t, err)
			assert.NotEmpty(t, img.PNG)
			assert.Positive(t, img.Width)
			assert.Positive(t, img.Height)
			assert.Equal(t, tt.want, decodePNG(t, img.PNG, tt.reader))
		})
	}
}

func TestBarcodeAcceptsCheckDigit(t *testing.T) {
	tests := []struct {
		name    string
		sym     encode.Symbology
		payload string
	}{
		{"ean13 with check digit", encode.EAN13, "1234567890128"},
		{"ean8 with check digit", encode.EAN8, "12345670"},
		{"upca with check digit", encode.UPCA, "036000291452"},
		{"pzn7 with check digit", encode.PZN7, "1234562"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := encode.Barcode(tt.payload, tt.sym, 1)
			require.NoError(t, err)
			assert.NotEmpty(t, img.PNG)
		})
	}
}

func TestBarcodeInvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		sym     encode.Symbology
		payload string
	}{
		{"ean13 non-numeric and too short", encode.EAN13, "abc"},
		{"ean13 eleven digits", encode.EAN13, "12345678901"},
		{"ean13 bad check digit", encode.EAN13, "1234567890121"},
		{"ean8 too long", encode.EAN8, "123456789"},
		{"upca bad check digit", encode.UPCA, "036000291453"},
		{"pzn7 bad check digit", encode.PZN7, "1234563"},
		{"code128 too long", encode.Code128, strings.Repeat("a", 81)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := encode.Barcode(tt.payload, tt.sym, 1)
			assert.ErrorIs(t, err, encode.ErrInvalidPayload)
			assert.Nil(t, img)
		})
	}
}

func TestBarcodeIllegalCharacter(t *testing.T) {
	tests := []struct {
		name    string
		sym     encode.Symbology
		payload string
	}{
		{"ean13 letter", encode.EAN13, "12345678901x"},
		{"ean8 letter", encode.EAN8, "123456x"},
		{"code39 lowercase", encode.Code39, "hello"},
		{"code128 non-ascii", encode.Code128, "héllo"},
		{"pzn7 letter", encode.PZN7, "12a456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := encode.Barcode(tt.payload, tt.sym, 1)
			assert.ErrorIs(t, err, encode.ErrIllegalCharacter)
			assert.Nil(t, img)
		})
	}
}

func TestBarcodeEmptyPayload(t *testing.T) {
	img, err := encode.Barcode("", encode.Code128, 1)
	assert.ErrorIs(t, err, encode.ErrEmptyPayload)
	assert.Nil(t, img)
}

func TestBarcodeScale(t *testing.T) {
	small, err := encode.Barcode("123456789012", encode.EAN13, 1)
	require.NoError(t, err)

	big, err := encode.Barcode("123456789012", encode.EAN13, 2)
	require.NoError(t, err)

	assert.Greater(t, big.Width, small.Width)
	assert.Greater(t, big.Height, small.Height)
}

func TestBarcodeRejectsNonPositiveScale(t *testing.T) {
	_, err := encode.Barcode("123456789012", encode.EAN13, 0)
	assert.Error(t, err)
}

func TestParseSymbology(t *testing.T) {
	for _, sym := range encode.Symbologies() {
		got, err := encode.ParseSymbology(string(sym))
		require.NoError(t, err)
		assert.Equal(t, sym, got)
		assert.NotEmpty(t, sym.Label())
	}

	_, err := encode.ParseSymbology("datamatrix")
	assert.ErrorIs(t, err, encode.ErrUnsupportedSymbology)
}

func TestParseKind(t *testing.T) {
	kind, err := encode.ParseKind("barcode")
	require.NoError(t, err)
	assert.Equal(t, encode.KindBarcode, kind)

	kind, err = encode.ParseKind("qrcode")
	require.NoError(t, err)
	assert.Equal(t, encode.KindQR, kind)

	_, err = encode.ParseKind("hologram")
	assert.Error(t, err)
}
