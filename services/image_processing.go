package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"stylistapi/models"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DefaultMaxImageEdge keeps request payloads small; the dispatcher's retry
// budget depends on attempts completing quickly.
const DefaultMaxImageEdge = 512

const jpegQuality = 85

// PrepareImage normalizes an uploaded photo into a transport-safe payload:
// flatten onto white to a 3-channel image, constrain the longer edge to
// maxEdge, re-encode as JPEG, and precompute the data URI used in request
// bodies. A decode failure means the item is rejected by the caller; nothing
// partial is ever stored.
func PrepareImage(raw []byte, maxEdge int) (models.TransportImage, error) {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxImageEdge
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return models.TransportImage{}, fmt.Errorf("failed to decode image: %w", err)
	}

	fitted := imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)

	// Transparent uploads (PNG/WebP) would otherwise flatten onto black in the
	// JPEG encoder; clothing photos read much better on white.
	bounds := fitted.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat := imaging.Overlay(canvas, fitted, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return models.TransportImage{}, fmt.Errorf("failed to encode image to jpeg: %w", err)
	}

	data := buf.Bytes()
	return models.TransportImage{
		Data:     data,
		MIMEType: "image/jpeg",
		DataURI:  "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}
