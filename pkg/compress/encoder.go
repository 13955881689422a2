// Package compress recompresses project images with an external or native encoder.
package compress

import (
	"context"
	"errors"
)

// ErrToolNotFound is returned when the external encoder binary is not installed.
var ErrToolNotFound = errors.New("encoder tool not found")

// EncodeOptions are the knobs passed to an Encoder.
type EncodeOptions struct {
	// Quality is the lossy quality factor, 0..100.
	Quality int
	// Method is the speed/size trade-off, 0..6. Negative leaves the encoder default.
	Method int
}

// Encoder writes an encoded copy of src to dst.
type Encoder interface {
	Name() string
	Encode(ctx context.Context, src, dst string, opts EncodeOptions) error
}
