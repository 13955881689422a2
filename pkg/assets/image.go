package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Dimensions returns the pixel size of the image at path without decoding pixels.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// ImageInfo is an image asset with its pixel size.
type ImageInfo struct {
	Asset
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Error  string `json:"error,omitempty"`
}

// Exceeds reports whether the longer side is above max. A max of zero never matches.
func (i ImageInfo) Exceeds(max int) bool {
	return max > 0 && (i.Width > max || i.Height > max)
}

// Inspect reads the dimensions of each image. Images that cannot be decoded are
// kept with Error set.
func Inspect(images []Asset) []ImageInfo {
	infos := make([]ImageInfo, 0, len(images))
	for _, a := range images {
		info := ImageInfo{Asset: a}
		w, h, err := Dimensions(a.AbsPath)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.Width, info.Height = w, h
		}
		infos = append(infos, info)
	}
	return infos
}
