package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 64, 32))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))
	pngPath := filepath.Join(dir, "a.png")
	writeFile(t, pngPath, pngBuf.Bytes())

	var jpgBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpgBuf, img, nil))
	jpgPath := filepath.Join(dir, "a.jpg")
	writeFile(t, jpgPath, jpgBuf.Bytes())

	w, h, err := Dimensions(pngPath)
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)

	w, h, err = Dimensions(jpgPath)
	require.NoError(t, err)
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)
}

// redWebP is a lossless 3x2 WebP filled with opaque red.
var redWebP = []byte{
	0x52, 0x49, 0x46, 0x46, 0x16, 0x00, 0x00, 0x00, 0x57, 0x45, 0x42, 0x50,
	0x56, 0x50, 0x38, 0x4c, 0x0a, 0x00, 0x00, 0x00, 0x2f, 0x02, 0x40, 0x00,
	0x10, 0x88, 0xfe, 0x47, 0xff, 0x03,
}

func TestDimensionsWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.webp")
	writeFile(t, path, redWebP)

	w, h, err := Dimensions(path)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	_, format, err := image.DecodeConfig(bytes.NewReader(redWebP))
	require.NoError(t, err)
	assert.Equal(t, "webp", format)

	img, _, err := image.Decode(bytes.NewReader(redWebP))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(img.At(2, 1)))
}

func TestDimensionsErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Dimensions(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.webp")
	writeFile(t, bad, []byte("not an image"))
	_, _, err = Dimensions(bad)
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 300, 120))))
	good := filepath.Join(dir, "wide.png")
	writeFile(t, good, buf.Bytes())
	bad := filepath.Join(dir, "bad.jpg")
	writeFile(t, bad, []byte("nope"))

	infos := Inspect([]Asset{
		{Name: "wide.png", Path: "assets/wide.png", AbsPath: good},
		{Name: "bad.jpg", Path: "assets/bad.jpg", AbsPath: bad},
	})
	require.Len(t, infos, 2)

	assert.Equal(t, 300, infos[0].Width)
	assert.Equal(t, 120, infos[0].Height)
	assert.Empty(t, infos[0].Error)
	assert.True(t, infos[0].Exceeds(256))
	assert.False(t, infos[0].Exceeds(300))
	assert.False(t, infos[0].Exceeds(0))

	assert.NotEmpty(t, infos[1].Error)
	assert.False(t, infos[1].Exceeds(1))
}
