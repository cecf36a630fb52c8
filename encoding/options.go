package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/options"
)

// DefaultFrameSize is the frame size the decoder pads to unless configured
// otherwise. It matches byte-oriented payloads.
const DefaultFrameSize = 8

// DecodeConfig holds the decoder settings assembled from DecodeOption values.
type DecodeConfig struct {
	frameSize           int
	unknownInitialLevel bool
}

// DecodeOption configures a Decode call.
type DecodeOption = options.Option[*DecodeConfig]

func newDecodeConfig() *DecodeConfig {
	return &DecodeConfig{frameSize: DefaultFrameSize}
}

// FrameSize returns the padding frame size. Values of 0 or 1 mean no padding.
func (c *DecodeConfig) FrameSize() int {
	return c.frameSize
}

// UnknownInitialLevel reports whether the first symbol is treated as having no reference level.
func (c *DecodeConfig) UnknownInitialLevel() bool {
	return c.unknownInitialLevel
}

// WithFrameSize pads decoded output with 0-bits up to a multiple of n.
// n of 0 or 1 disables padding; a negative n is rejected.
func WithFrameSize(n int) DecodeOption {
	return options.New(func(c *DecodeConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidFrameSize, n)
		}
		c.frameSize = n

		return nil
	})
}

// WithoutPadding disables the padding post-condition.
func WithoutPadding() DecodeOption {
	return options.NoError(func(c *DecodeConfig) {
		c.frameSize = 0
	})
}

// WithUnknownInitialLevel makes stateful decoders skip the first symbol
// instead of comparing it with the encoder's initial level.
func WithUnknownInitialLevel() DecodeOption {
	return options.NoError(func(c *DecodeConfig) {
		c.unknownInitialLevel = true
	})
}
