package compress

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/dixieflatline76/Slim/util/log"
)

// DefaultTool is the WebP command line encoder.
const DefaultTool = "cwebp"

// CWebP encodes images to WebP by running the cwebp tool.
type CWebP struct {
	// Tool is the binary name or path. Empty means DefaultTool.
	Tool string
	// Timeout bounds a single run. Zero means no limit beyond ctx.
	Timeout time.Duration
}

// NewCWebP creates a CWebP encoder.
func NewCWebP(tool string, timeout time.Duration) *CWebP {
	return &CWebP{Tool: tool, Timeout: timeout}
}

// Name implements Encoder.
func (c *CWebP) Name() string {
	return c.tool()
}

// Encode implements Encoder.
func (c *CWebP) Encode(ctx context.Context, src, dst string, opts EncodeOptions) error {
	bin, err := exec.LookPath(c.tool())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, c.tool())
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := c.args(src, dst, opts)
	log.Debugf("CWebP: %s %s", bin, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%s failed on %s: %w", c.tool(), src, err)
		}
		return fmt.Errorf("%s failed on %s: %w: %s", c.tool(), src, err, msg)
	}
	return nil
}

func (c *CWebP) args(src, dst string, opts EncodeOptions) []string {
	args := []string{"-q", strconv.Itoa(opts.Quality)}
	if opts.Method >= 0 {
		args = append(args, "-m", strconv.Itoa(opts.Method))
	}
	return append(args, src, "-o", dst)
}

func (c *CWebP) tool() string {
	if c.Tool == "" {
		return DefaultTool
	}
	return c.Tool
}
