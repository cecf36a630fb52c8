package section

import (
	"testing"
	"time"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

func sampleHeader(big bool) *Header {
	h := NewHeader(format.SchemeDifferentialManchester, time.Date(2024, 6, 15, 12, 30, 45, 123456000, time.UTC))
	h.Flag.SetCompression(format.CompressionS2)
	if big {
		h.Flag.WithBigEndian()
	}
	h.LevelCount = 160
	h.SourceBits = 80
	h.PayloadSize = 24
	h.Checksum = 0x0123456789abcdef

	return h
}

func TestHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		original := sampleHeader(big)
		data := original.Bytes()
		require.Len(t, data, HeaderSize)

		parsed := &Header{}
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, *original, *parsed)
	}
}

func TestHeader_Layout(t *testing.T) {
	data := sampleHeader(false).Bytes()

	require.Equal(t, []byte{0x10, 0xEC}, data[0:2])
	require.Equal(t, byte(format.SchemeDifferentialManchester), data[2])
	require.Equal(t, byte(format.CompressionS2), data[3])
	require.Equal(t, []byte{160, 0, 0, 0}, data[4:8])
	require.Equal(t, []byte{80, 0, 0, 0}, data[8:12])
	require.Equal(t, []byte{24, 0, 0, 0}, data[12:16])
	require.Equal(t, []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}, data[16:24])

	big := sampleHeader(true).Bytes()
	require.Equal(t, []byte{0x11, 0xEC}, big[0:2], "options stay little-endian")
	require.Equal(t, []byte{0, 0, 0, 160}, big[4:8])
	require.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, big[16:24])
}

func TestHeader_TimestampAsTime(t *testing.T) {
	want := time.Date(2024, 6, 15, 12, 30, 45, 123456000, time.UTC)
	h := NewHeader(format.SchemeNRZ, want)

	require.Equal(t, want.UnixMicro(), h.TimestampAsTime().UnixMicro())

	before := NewHeader(format.SchemeNRZ, time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))
	parsed, err := ParseHeader(before.Bytes())
	require.NoError(t, err)
	require.Equal(t, before.Timestamp, parsed.Timestamp)
	require.Negative(t, parsed.Timestamp)
}

func TestHeader_ParseErrors(t *testing.T) {
	t.Run("wrong size", func(t *testing.T) {
		h := &Header{}
		require.ErrorIs(t, h.Parse([]byte{1, 2, 3}), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	t.Run("zeroed", func(t *testing.T) {
		h := &Header{}
		require.ErrorIs(t, h.Parse(make([]byte, HeaderSize)), errs.ErrInvalidMagicNumber)
	})

	t.Run("bad scheme", func(t *testing.T) {
		data := sampleHeader(false).Bytes()
		data[2] = 0xFF
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrInvalidScheme)
	})
}

func TestParseHeader(t *testing.T) {
	original := sampleHeader(false)
	data := append(original.Bytes(), 1, 2, 3, 4, 5)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, *original, parsed)

	_, err = ParseHeader(data[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestIsCapture(t *testing.T) {
	require.True(t, IsCapture(sampleHeader(true).Bytes()))
	require.False(t, IsCapture(nil))
	require.False(t, IsCapture(make([]byte, HeaderSize)))
}

func TestHeader_AppendTo(t *testing.T) {
	h := sampleHeader(false)
	prefix := []byte{0xAA}

	out := h.AppendTo(prefix)
	require.Len(t, out, HeaderSize+1)
	require.Equal(t, byte(0xAA), out[0])
	require.Equal(t, h.Bytes(), out[1:])
}
