package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client recognizes text in image crops with a fixed language.
type Client struct {
	language string
}

// New returns a Client for the given Tesseract language code (e.g. "eng").
func New(language string) *Client {
	return &Client{language: language}
}

// Text performs OCR on an image and returns the recognized text with
// surrounding whitespace trimmed.
//
// A fresh Tesseract client is created per call so concurrent invocations do
// not share engine state. The image is handed over as encoded PNG bytes; no
// temporary files are written.
//
// Returns an empty string and a non-nil error if encoding or recognition
// fails. Callers treating text as best-effort should map errors to "".
func (c *Client) Text(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(c.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	// Assume a single uniform block of text per region crop.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
