// Package ocr provides text recognition for region crops using Tesseract.
//
// The package wraps the Tesseract OCR engine (via gosseract/v2). Tesseract
// and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Recognition runs in single-block page segmentation mode, which assumes a
// region crop holds one uniform block of text — the right assumption for UI
// elements like buttons and labels.
//
// Recognition is best-effort: callers are expected to treat any error as
// "no text" rather than aborting, and the enrichment layer does exactly
// that. OCR is CPU-intensive; crops are handed to the engine one region at a
// time, so callers can run regions concurrently.
package ocr
