package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkcode/mkcode/encode"
)

type generateRequest struct {
	Kind      string  `json:"kind"`
	Payload   string  `json:"payload"`
	Symbology string  `json:"symbology,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
	BoxSize   int     `json:"box_size,omitempty"`
}

type generateResponse struct {
	PNG      string `json:"png"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Filename string `json:"filename"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	img, filename, status, err := s.encodeOne(req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		PNG:      base64.StdEncoding.EncodeToString(img.PNG),
		Width:    img.Width,
		Height:   img.Height,
		Filename: filename,
	})
}

// handleDownload serves the same encode cycle as handleGenerate but
// responds with the raw PNG as a named attachment. The web UI points its
// download link here.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := generateRequest{
		Kind:      q.Get("kind"),
		Payload:   q.Get("payload"),
		Symbology: q.Get("symbology"),
		Scale:     queryFloat(r, "scale", 0),
		BoxSize:   queryInt(r, "box_size", 0),
	}

	img, filename, status, err := s.encodeOne(req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(img.PNG)))
	w.WriteHeader(http.StatusOK)
	w.Write(img.PNG)
}

type symbologyInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func (s *Server) handleSymbologies(w http.ResponseWriter, r *http.Request) {
	syms := encode.Symbologies()
	result := make([]symbologyInfo, 0, len(syms))
	for _, sym := range syms {
		result = append(result, symbologyInfo{ID: string(sym), Label: sym.Label()})
	}
	writeJSON(w, http.StatusOK, result)
}

// encodeOne runs a single encode cycle: pick the adapter by kind, apply
// the configured default size parameter if the request carries none, and
// return the image plus the fixed download filename. On failure the
// returned status is the HTTP code the error maps to.
func (s *Server) encodeOne(req generateRequest) (*encode.Image, string, int, error) {
	if strings.TrimSpace(req.Payload) == "" {
		return nil, "", http.StatusBadRequest, errors.New("please enter data")
	}

	kind, err := encode.ParseKind(req.Kind)
	if err != nil {
		return nil, "", http.StatusBadRequest, err
	}

	switch kind {
	case encode.KindBarcode:
		sym, err := encode.ParseSymbology(req.Symbology)
		if err != nil {
			return nil, "", http.StatusBadRequest, err
		}
		scale := req.Scale
		if scale == 0 {
			scale = s.Defaults.BarcodeScale
		}
		img, err := encode.Barcode(req.Payload, sym, scale)
		if err != nil {
			return nil, "", encodeErrorStatus(err), err
		}
		return img, "barcode.png", http.StatusOK, nil

	default: // encode.KindQR
		boxSize := req.BoxSize
		if boxSize == 0 {
			boxSize = s.Defaults.QRBoxSize
		}
		img, err := encode.QR(req.Payload, boxSize)
		if err != nil {
			return nil, "", encodeErrorStatus(err), err
		}
		return img, "qrcode.png", http.StatusOK, nil
	}
}

// encodeErrorStatus maps the encode failure taxonomy onto HTTP status
// codes. Unclassified failures are server errors.
func encodeErrorStatus(err error) int {
	switch {
	case errors.Is(err, encode.ErrEmptyPayload),
		errors.Is(err, encode.ErrUnsupportedSymbology):
		return http.StatusBadRequest
	case errors.Is(err, encode.ErrInvalidPayload),
		errors.Is(err, encode.ErrIllegalCharacter):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func queryFloat(r *http.Request, key string, defaultVal float64) float64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return defaultVal
	}
	return f
}
