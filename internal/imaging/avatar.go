// Package imaging turns uploaded pictures into square-bounded webp avatars.
package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	AvatarMaxSide  = 512
	AvatarMaxBytes = 5 << 20
	avatarQuality  = 80
)

var (
	ErrUnsupported = errors.New("unsupported image")
	ErrTooLarge    = errors.New("image too large")
)

// Avatar decodes r, scales it down so neither side exceeds AvatarMaxSide
// and re-encodes it as lossy webp.
func Avatar(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, AvatarMaxBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > AvatarMaxBytes {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrUnsupported
	}

	dst := Fit(src, AvatarMaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Fit returns src scaled to fit in a maxSide square, keeping the aspect
// ratio. Smaller images are only copied into RGBA.
func Fit(src image.Image, maxSide int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > maxSide || h > maxSide {
		if w >= h {
			h = h * maxSide / w
			w = maxSide
		} else {
			w = w * maxSide / h
			h = maxSide
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
