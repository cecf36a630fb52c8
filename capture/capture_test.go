package capture

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/section"
	"github.com/stretchr/testify/require"
)

var compressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func randomBits(n int, seed uint64) []encoding.Bit {
	r := rand.New(rand.NewPCG(seed, 1))
	bits := make([]encoding.Bit, n)
	for i := range bits {
		bits[i] = encoding.Bit(r.UintN(2))
	}

	return bits
}

func encodeCapture(t *testing.T, scheme format.Scheme, levels []encoding.Level, opts ...EncoderOption) Capture {
	t.Helper()

	enc, err := NewEncoder(scheme, opts...)
	require.NoError(t, err)
	require.NoError(t, enc.WriteLevels(levels))

	c, err := enc.Finish()
	require.NoError(t, err)

	return c
}

func TestCapture_RoundTrip(t *testing.T) {
	bits := randomBits(301, 9)

	for _, scheme := range format.Schemes() {
		levels, err := encoding.Encode(bits, scheme)
		require.NoError(t, err)

		for _, comp := range compressions {
			for _, big := range []bool{false, true} {
				name := fmt.Sprintf("%s/%s/big=%v", scheme, comp, big)
				t.Run(name, func(t *testing.T) {
					opts := []EncoderOption{WithCompression(comp), WithSourceBits(len(bits))}
					if big {
						opts = append(opts, WithBigEndian())
					}
					c := encodeCapture(t, scheme, levels, opts...)

					dec, err := NewDecoder(c.Bytes())
					require.NoError(t, err)
					require.Equal(t, scheme, dec.Scheme())
					require.Equal(t, len(bits), dec.SourceBits())
					require.Equal(t, len(levels), dec.LevelCount())
					require.Equal(t, big, dec.Header().Flag.IsBigEndian())

					gotLevels, err := dec.Levels()
					require.NoError(t, err)
					require.Equal(t, levels, gotLevels)

					gotBits, warnings, err := dec.Bits()
					require.NoError(t, err)
					require.Equal(t, bits, gotBits)
					require.Zero(t, encoding.CountWarnings(warnings, encoding.WarningPadding))
					require.Equal(t, bits, encoding.StripPadding(gotBits, warnings))
				})
			}
		}
	}
}

func TestCapture_Header(t *testing.T) {
	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	levels := []encoding.Level{-1, 0, 1, 1, 0, -1}

	c := encodeCapture(t, format.SchemeAMI, levels, WithTimestamp(ts), WithCompression(format.CompressionS2))

	h := c.Header()
	require.Equal(t, format.SchemeAMI, h.Flag.LineScheme())
	require.Equal(t, format.CompressionS2, h.Flag.Compression())
	require.Equal(t, uint32(6), h.LevelCount)
	require.Zero(t, h.SourceBits)
	require.True(t, ts.Equal(h.TimestampAsTime()))
	require.Equal(t, section.HeaderSize+int(h.PayloadSize), c.Len())
	require.Equal(t, int(h.PayloadSize), c.Stats().CompressedSize)
	require.Equal(t, 8, c.Stats().OriginalSize)
}

func TestCapture_Empty(t *testing.T) {
	enc, err := NewEncoder(format.SchemeNRZ)
	require.NoError(t, err)

	c, err := enc.Finish()
	require.NoError(t, err)
	require.Equal(t, section.HeaderSize, c.Len())

	dec, err := NewDecoder(c.Bytes())
	require.NoError(t, err)

	levels, err := dec.Levels()
	require.NoError(t, err)
	require.Empty(t, levels)

	bits, warnings, err := dec.Bits()
	require.NoError(t, err)
	require.Empty(t, bits)
	require.Empty(t, warnings)
}

func TestDecoder_BitsPaddingWarning(t *testing.T) {
	bits := randomBits(11, 4)
	levels, err := encoding.Encode(bits, format.SchemeNRZ)
	require.NoError(t, err)

	t.Run("source bits recorded", func(t *testing.T) {
		c := encodeCapture(t, format.SchemeNRZ, levels, WithSourceBits(len(bits)))
		dec, err := NewDecoder(c.Bytes())
		require.NoError(t, err)

		got, warnings, err := dec.Bits()
		require.NoError(t, err)
		require.Equal(t, bits, got)
		require.Zero(t, encoding.PaddingBits(warnings))
		require.Equal(t, bits, encoding.StripPadding(got, warnings))
	})

	t.Run("source bits unknown", func(t *testing.T) {
		c := encodeCapture(t, format.SchemeNRZ, levels)
		dec, err := NewDecoder(c.Bytes())
		require.NoError(t, err)

		got, warnings, err := dec.Bits()
		require.NoError(t, err)
		require.Len(t, got, 16)
		require.Equal(t, 5, encoding.PaddingBits(warnings))
		require.Equal(t, bits, encoding.StripPadding(got, warnings))
	})

	t.Run("partial padding kept", func(t *testing.T) {
		c := encodeCapture(t, format.SchemeNRZ, levels, WithSourceBits(13))
		dec, err := NewDecoder(c.Bytes())
		require.NoError(t, err)

		got, warnings, err := dec.Bits()
		require.NoError(t, err)
		require.Len(t, got, 13)
		require.Equal(t, 2, encoding.PaddingBits(warnings))
		require.Equal(t, bits, encoding.StripPadding(got, warnings))
	})
}

func TestCapture_MultipleWrites(t *testing.T) {
	enc, err := NewEncoder(format.SchemeManchester)
	require.NoError(t, err)

	require.NoError(t, enc.WriteLevels([]encoding.Level{1, 0}))
	require.NoError(t, enc.WriteLevels([]encoding.Level{0, 1, 1, 0}))
	require.Equal(t, 6, enc.Len())

	c, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(c.Bytes())
	require.NoError(t, err)

	bits, _, err := dec.Bits(encoding.WithoutPadding())
	require.NoError(t, err)
	require.Equal(t, []encoding.Bit{1, 0, 1}, bits)
}

func TestEncoder_Errors(t *testing.T) {
	t.Run("invalid scheme", func(t *testing.T) {
		_, err := NewEncoder(format.Scheme(0))
		require.ErrorIs(t, err, errs.ErrInvalidScheme)
	})

	t.Run("invalid compression", func(t *testing.T) {
		_, err := NewEncoder(format.SchemeNRZ, WithCompression(format.CompressionType(7)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("negative source bits", func(t *testing.T) {
		_, err := NewEncoder(format.SchemeNRZ, WithSourceBits(-1))
		require.Error(t, err)
	})

	t.Run("level outside alphabet", func(t *testing.T) {
		enc, err := NewEncoder(format.SchemeNRZ)
		require.NoError(t, err)

		err = enc.WriteLevels([]encoding.Level{0, 1, -1})
		require.ErrorIs(t, err, errs.ErrInvalidLevel)

		var levelErr *errs.InvalidLevelError
		require.ErrorAs(t, err, &levelErr)
		require.Equal(t, 2, levelErr.Index)
		require.Zero(t, enc.Len())
	})

	t.Run("finished", func(t *testing.T) {
		enc, err := NewEncoder(format.SchemeNRZ)
		require.NoError(t, err)

		_, err = enc.Finish()
		require.NoError(t, err)

		require.ErrorIs(t, enc.WriteLevels([]encoding.Level{1}), errs.ErrEncoderFinished)
		_, err = enc.Finish()
		require.ErrorIs(t, err, errs.ErrEncoderFinished)
	})
}

func TestDecoder_Corruption(t *testing.T) {
	levels, err := encoding.Encode(randomBits(128, 3), format.SchemeBiphaseMark)
	require.NoError(t, err)

	for _, comp := range compressions {
		t.Run(comp.String(), func(t *testing.T) {
			data := encodeCapture(t, format.SchemeBiphaseMark, levels, WithCompression(comp)).Bytes()

			t.Run("checksum", func(t *testing.T) {
				corrupted := append([]byte(nil), data...)
				corrupted[len(corrupted)-1] ^= 0x01

				_, err := NewDecoder(corrupted)
				require.ErrorIs(t, err, errs.ErrChecksumMismatch)
			})

			t.Run("truncated", func(t *testing.T) {
				_, err := NewDecoder(data[:len(data)-1])
				require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
			})

			t.Run("header only", func(t *testing.T) {
				_, err := NewDecoder(data[:section.HeaderSize-1])
				require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
			})

			t.Run("magic", func(t *testing.T) {
				corrupted := append([]byte(nil), data...)
				corrupted[1] = 0x00

				_, err := NewDecoder(corrupted)
				require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
			})
		})
	}
}

func TestDecoder_LevelCountMismatch(t *testing.T) {
	c := encodeCapture(t, format.SchemeNRZ, make([]encoding.Level, 100))

	h := c.Header()
	h.LevelCount = 200
	data := append(h.Bytes(), c.Bytes()[section.HeaderSize:]...)

	_, err := NewDecoder(data)
	require.ErrorIs(t, err, errs.ErrLevelCountMismatch)
}

func TestDecoder_InvalidTernaryCode(t *testing.T) {
	c := encodeCapture(t, format.SchemeAMI, []encoding.Level{0, 0, 0, 0})

	// mark bit 0 with sign bit 1 is never produced by the packer
	payload := packedBits([]uint8{0, 1, 0, 0, 0, 0, 0, 0})

	h := c.Header()
	h.Checksum = checksumOf(payload)
	data := append(h.Bytes(), payload...)

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	_, err = dec.Levels()
	require.ErrorIs(t, err, errs.ErrInvalidLevel)
}

func TestCapture_CompressesRuns(t *testing.T) {
	levels := make([]encoding.Level, 64*1024)
	for i := range levels {
		if (i/4096)%2 == 1 {
			levels[i] = 1
		}
	}

	c := encodeCapture(t, format.SchemeNRZ, levels, WithCompression(format.CompressionZstd))
	require.Less(t, c.Stats().Ratio(), 0.1)

	dec, err := NewDecoder(c.Bytes())
	require.NoError(t, err)

	got, err := dec.Levels()
	require.NoError(t, err)
	require.Equal(t, levels, got)
}
