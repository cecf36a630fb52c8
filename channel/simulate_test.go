package channel

import (
	"context"
	"testing"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

func payload(n int) []encoding.Bit {
	bits := make([]encoding.Bit, n)
	for i := range bits {
		bits[i] = encoding.Bit((i * 7 / 3) % 2)
	}

	return bits
}

func TestSimulate_NoiselessChannel(t *testing.T) {
	bits := payload(96)

	for _, scheme := range format.Schemes() {
		report, err := Simulate(context.Background(), bits, scheme, WithTrials(8), WithProbability(0))
		require.NoError(t, err, scheme.String())
		require.Equal(t, 8, report.Trials())
		require.Equal(t, 8, report.ErrorFree)
		require.Zero(t, report.TotalBitErrors())
		require.Zero(t, report.Warnings)
		require.Zero(t, report.MeanBER)
		require.Zero(t, report.StdDevBER)
		require.Equal(t, 96, report.SourceBits)
		require.Equal(t, 96*scheme.LevelsPerBit(), report.LineLevels)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	bits := payload(200)
	opts := []SimulateOption{WithTrials(20), WithProbability(0.05), WithBaseSeed(99)}

	a, err := Simulate(context.Background(), bits, format.SchemeManchester, append(opts, WithConcurrency(1))...)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), bits, format.SchemeManchester, append(opts, WithConcurrency(8))...)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Positive(t, a.TotalBitErrors())
	require.Positive(t, a.Warnings)
	require.Greater(t, a.MeanBER, 0.0)
}

func TestSimulate_FECReducesErrors(t *testing.T) {
	bits := payload(240)
	opts := []SimulateOption{WithTrials(40), WithProbability(0.01), WithBaseSeed(5)}

	plain, err := Simulate(context.Background(), bits, format.SchemeNRZ, opts...)
	require.NoError(t, err)

	protected, err := Simulate(context.Background(), bits, format.SchemeNRZ, append(opts, WithFEC())...)
	require.NoError(t, err)

	require.True(t, protected.FEC)
	require.Equal(t, 480, protected.LineLevels)
	require.Less(t, protected.TotalBitErrors(), plain.TotalBitErrors())
	require.Greater(t, protected.ErrorFree, plain.ErrorFree)
}

func TestSimulate_SingleTrial(t *testing.T) {
	report, err := Simulate(context.Background(), payload(64), format.SchemeNRZ,
		WithTrials(1), WithProbability(1), WithBaseSeed(1))
	require.NoError(t, err)
	require.Equal(t, []int{64}, report.BitErrors)
	require.InDelta(t, 1.0, report.MeanBER, 1e-12)
	require.Zero(t, report.StdDevBER)
}

func TestSimulate_Errors(t *testing.T) {
	ctx := context.Background()
	bits := payload(16)

	_, err := Simulate(ctx, bits, format.Scheme(9))
	require.ErrorIs(t, err, errs.ErrInvalidScheme)

	_, err = Simulate(ctx, nil, format.SchemeNRZ)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = Simulate(ctx, []encoding.Bit{0, 3}, format.SchemeNRZ)
	require.ErrorIs(t, err, errs.ErrInvalidBit)

	_, err = Simulate(ctx, bits, format.SchemeNRZ, WithTrials(0))
	require.ErrorIs(t, err, errs.ErrInvalidTrialCount)

	_, err = Simulate(ctx, bits, format.SchemeNRZ, WithConcurrency(-2))
	require.ErrorIs(t, err, errs.ErrInvalidConcurrency)

	_, err = Simulate(ctx, bits, format.SchemeNRZ, WithProbability(2))
	require.ErrorIs(t, err, errs.ErrInvalidProbability)
}

func TestSimulate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, payload(32), format.SchemeAMI, WithTrials(10))
	require.ErrorIs(t, err, context.Canceled)
}
