package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape", 1024, 512, 512, 256},
		{"portrait", 300, 1200, 128, 512},
		{"small untouched", 100, 80, 100, 80},
		{"thin", 4000, 2, 512, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := Fit(image.NewRGBA(image.Rect(0, 0, tc.w, tc.h)), 512)
			assert.Equal(t, tc.wantW, dst.Bounds().Dx())
			assert.Equal(t, tc.wantH, dst.Bounds().Dy())
		})
	}
}

func TestAvatar(t *testing.T) {
	var src bytes.Buffer
	require.NoError(t, png.Encode(&src, image.NewRGBA(image.Rect(0, 0, 900, 600))))

	out, err := Avatar(&src)
	require.NoError(t, err)
	require.Greater(t, len(out), 12)
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))

	_, err = Avatar(bytes.NewReader([]byte("plain text")))
	assert.True(t, errors.Is(err, ErrUnsupported))

	_, err = Avatar(bytes.NewReader(make([]byte, AvatarMaxBytes+1)))
	assert.True(t, errors.Is(err, ErrTooLarge))
}
