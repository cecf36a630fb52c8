// Package linecode converts bit sequences to physical line levels and back.
//
// Seven line coding schemes are supported:
//
//	NRZ                      level = bit
//	NRZI                     a 1 flips the line
//	AMI                      marks alternate between -1 and +1
//	Manchester               0 = low-high, 1 = high-low
//	Differential Manchester  a 1 adds a transition at the symbol start
//	Biphase-Mark             a 1 adds a transition at the symbol start
//	Biphase-Space            a 0 adds a transition at the symbol start
//
// # Basic Usage
//
//	levels, err := linecode.Encode(bits, format.SchemeManchester)
//	if err != nil {
//	    return err
//	}
//
//	bits, warnings, err := linecode.Decode(levels, format.SchemeManchester)
//	for _, w := range warnings {
//	    fmt.Println(w)
//	}
//
// The Manchester family always transitions mid symbol.
//
// Decode never fails on a damaged signal. Symbols that break the scheme's
// rules are recovered and reported as encoding.DecodeWarning values, as is
// the zero padding appended to complete the last frame.
//
// # Package Structure
//
// This package wraps the most common calls. The underlying packages give
// finer control:
//
//   - encoding: the codecs, decode options and warnings
//   - channel: noise injection and bit error rate simulation
//   - fec: Golay forward error correction
//   - capture: compact binary storage of encoded signals
//   - format: scheme and compression identifiers
//   - errs: error values
package linecode

import (
	"context"
	"runtime"

	"github.com/arloliu/linecode/capture"
	"github.com/arloliu/linecode/channel"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/format"
	"golang.org/x/sync/errgroup"
)

// Encode line codes bits with scheme.
func Encode(bits []encoding.Bit, scheme format.Scheme) ([]encoding.Level, error) {
	return encoding.Encode(bits, scheme)
}

// Decode recovers bits from levels produced by scheme.
func Decode(levels []encoding.Level, scheme format.Scheme, opts ...encoding.DecodeOption) ([]encoding.Bit, []encoding.DecodeWarning, error) {
	return encoding.Decode(levels, scheme, opts...)
}

// ApplyNoise flips each level with probability p. See channel.ApplyNoise.
func ApplyNoise(levels []encoding.Level, p float64, scheme format.Scheme, opts ...channel.NoiseOption) ([]encoding.Level, error) {
	return channel.ApplyNoise(levels, p, scheme, opts...)
}

// DecodedFrame is the result of decoding one frame.
type DecodedFrame struct {
	Bits     []encoding.Bit
	Warnings []encoding.DecodeWarning
}

// EncodeFrames encodes independent frames concurrently, at most
// GOMAXPROCS at a time. Results keep the order of frames. The first error
// cancels the remaining frames.
func EncodeFrames(ctx context.Context, frames [][]encoding.Bit, scheme format.Scheme) ([][]encoding.Level, error) {
	out := make([][]encoding.Level, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(frameConcurrency())
	for i, frame := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			levels, err := encoding.Encode(frame, scheme)
			if err != nil {
				return &FrameError{Frame: i, Err: err}
			}
			out[i] = levels

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// DecodeFrames decodes independent signals concurrently with the same
// options, at most GOMAXPROCS at a time. Results keep the order of signals. The first error cancels the
// remaining signals.
func DecodeFrames(ctx context.Context, signals [][]encoding.Level, scheme format.Scheme, opts ...encoding.DecodeOption) ([]DecodedFrame, error) {
	out := make([]DecodedFrame, len(signals))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(frameConcurrency())
	for i, levels := range signals {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			bits, warnings, err := encoding.Decode(levels, scheme, opts...)
			if err != nil {
				return &FrameError{Frame: i, Err: err}
			}
			out[i] = DecodedFrame{Bits: bits, Warnings: warnings}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// frameConcurrency bounds the goroutines used by frame batching.
func frameConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

// EncodeCapture encodes bits and stores the levels in a capture that
// records the source bit count.
func EncodeCapture(bits []encoding.Bit, scheme format.Scheme, opts ...capture.EncoderOption) (capture.Capture, error) {
	levels, err := encoding.Encode(bits, scheme)
	if err != nil {
		return capture.Capture{}, err
	}

	opts = append([]capture.EncoderOption{capture.WithSourceBits(len(bits))}, opts...)
	enc, err := capture.NewEncoder(scheme, opts...)
	if err != nil {
		return capture.Capture{}, err
	}

	if err := enc.WriteLevels(levels); err != nil {
		return capture.Capture{}, err
	}

	return enc.Finish()
}

// DecodeCapture reads a capture and decodes its levels.
func DecodeCapture(data []byte, opts ...encoding.DecodeOption) ([]encoding.Bit, []encoding.DecodeWarning, error) {
	dec, err := capture.NewDecoder(data)
	if err != nil {
		return nil, nil, err
	}

	return dec.Bits(opts...)
}
