package capture

import (
	"fmt"
	"time"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
	"github.com/arloliu/linecode/section"
)

// EncoderConfig holds the header settings chosen through EncoderOptions.
type EncoderConfig struct {
	header *section.Header
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(scheme format.Scheme) *EncoderConfig {
	return &EncoderConfig{header: section.NewHeader(scheme, time.Now())}
}

// WithCompression selects the payload compression. The default is none.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(compression))
		}
		c.header.Flag.SetCompression(compression)

		return nil
	})
}

// WithLittleEndian stores the header and payload little-endian. This is the
// default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian stores the header and payload big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithSourceBits records how many data bits the levels encode. Decoders use
// it to drop frame padding.
func WithSourceBits(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < 0 || uint64(n) > section.MaxLevelCount {
			return fmt.Errorf("capture: source bit count %d out of range", n)
		}
		c.header.SourceBits = uint32(n) //nolint: gosec

		return nil
	})
}

// WithTimestamp sets the capture time. The default is the encoder's creation
// time.
func WithTimestamp(t time.Time) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Timestamp = t.UnixMicro()
	})
}
