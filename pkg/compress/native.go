package compress

import (
	"context"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// Native re-encodes PNG files losslessly at the best zlib compression level.
type Native struct{}

// Name implements Encoder.
func (Native) Name() string {
	return "native-png"
}

// Encode implements Encoder. Quality and Method are ignored: the output is lossless.
func (Native) Encode(ctx context.Context, src, dst string, _ EncodeOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", src, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := imaging.Save(img, dst, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("encoding %s: %w", dst, err)
	}
	return nil
}
