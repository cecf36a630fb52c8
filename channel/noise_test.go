package channel

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

func TestApplyNoise_ZeroIsIdentity(t *testing.T) {
	for _, scheme := range format.Schemes() {
		levels := mustEncode(t, []encoding.Bit{1, 0, 1, 1, 0, 0, 1}, scheme)
		original := append([]encoding.Level(nil), levels...)

		got, err := ApplyNoise(levels, 0, scheme)
		require.NoError(t, err)
		require.Equal(t, levels, got)

		got[0] = encoding.LevelNegative
		require.Equal(t, original, levels, "result must be a copy")
	}
}

func TestApplyNoise_OneFlipsEverything(t *testing.T) {
	binary := []encoding.Level{0, 1, 1, 0, 1}
	got, err := ApplyNoise(binary, 1, format.SchemeNRZ, WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, []encoding.Level{1, 0, 0, 1, 0}, got)

	ternary := []encoding.Level{-1, 0, 1, 0, -1}
	got, err = ApplyNoise(ternary, 1, format.SchemeAMI, WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, []encoding.Level{0, 1, 0, 1, 0}, got)
}

func TestApplyNoise_Errors(t *testing.T) {
	levels := []encoding.Level{0, 1, 0}
	original := append([]encoding.Level(nil), levels...)

	for _, p := range []float64{-0.1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := ApplyNoise(levels, p, format.SchemeNRZ)
		require.ErrorIs(t, err, errs.ErrInvalidProbability)
	}

	_, err := ApplyNoise(levels, 0.5, format.Scheme(0))
	require.ErrorIs(t, err, errs.ErrInvalidScheme)

	_, err = ApplyNoise([]encoding.Level{0, -1}, 0.5, format.SchemeManchester)
	require.ErrorIs(t, err, errs.ErrInvalidLevel)

	_, err = ApplyNoise(levels, 0.5, format.SchemeNRZ, WithSource(nil))
	require.Error(t, err)

	require.Equal(t, original, levels)
}

func TestApplyNoise_Reproducible(t *testing.T) {
	levels := make([]encoding.Level, 512)
	for i := range levels {
		levels[i] = encoding.Level(i % 2)
	}

	a, err := ApplyNoise(levels, 0.3, format.SchemeNRZ, WithSeed(42))
	require.NoError(t, err)
	b, err := ApplyNoise(levels, 0.3, format.SchemeNRZ, WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := ApplyNoise(levels, 0.3, format.SchemeNRZ, WithSource(rand.NewPCG(42, 42^seedMix)))
	require.NoError(t, err)
	require.Equal(t, a, c)

	d, err := ApplyNoise(levels, 0.3, format.SchemeNRZ, WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, a, d)
}

func TestApplyNoise_FlipRate(t *testing.T) {
	levels := make([]encoding.Level, 20000)

	got, err := ApplyNoise(levels, 0.1, format.SchemeNRZ, WithSeed(7))
	require.NoError(t, err)

	flipped := 0
	for _, l := range got {
		flipped += int(l)
	}
	require.InDelta(t, 2000, flipped, 200)
}

func TestApplyNoise_StaysInAlphabet(t *testing.T) {
	levels, err := encoding.Encode([]encoding.Bit{1, 1, 0, 1, 0, 1, 1, 1}, format.SchemeAMI)
	require.NoError(t, err)

	got, err := ApplyNoise(levels, 0.5, format.SchemeAMI, WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, encoding.ValidateLevels(got, format.SchemeAMI))
}

func mustEncode(t *testing.T, bits []encoding.Bit, scheme format.Scheme) []encoding.Level {
	t.Helper()

	levels, err := encoding.Encode(bits, scheme)
	require.NoError(t, err)

	return levels
}
