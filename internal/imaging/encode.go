package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/picturelab/internal/picture"
)

// EncodedPicture contains a picture encoded as base64 PNG.
type EncodedPicture struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes p as a base64 PNG payload.
func EncodePNG(p *picture.Picture) (*EncodedPicture, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, p.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode picture: %w", err)
	}

	return &EncodedPicture{
		Width:       p.Width(),
		Height:      p.Height(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
