package channel

import (
	"context"
	"fmt"
	"runtime"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/fec"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultTrials      = 100
	DefaultProbability = 0.01
	DefaultSeed        = 1
)

// SimulateConfig holds the parameters of a Simulate run.
type SimulateConfig struct {
	trials      int
	concurrency int
	probability float64
	seed        uint64
	fec         bool
}

// SimulateOption configures Simulate.
type SimulateOption = options.Option[*SimulateConfig]

func newSimulateConfig() *SimulateConfig {
	return &SimulateConfig{
		trials:      DefaultTrials,
		concurrency: runtime.GOMAXPROCS(0),
		probability: DefaultProbability,
		seed:        DefaultSeed,
	}
}

// WithTrials sets the number of independent trials.
func WithTrials(n int) SimulateOption {
	return options.New(func(c *SimulateConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidTrialCount, n)
		}
		c.trials = n

		return nil
	})
}

// WithConcurrency bounds the number of trials running at once.
func WithConcurrency(n int) SimulateOption {
	return options.New(func(c *SimulateConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidConcurrency, n)
		}
		c.concurrency = n

		return nil
	})
}

// WithProbability sets the per-level flip probability.
func WithProbability(p float64) SimulateOption {
	return options.New(func(c *SimulateConfig) error {
		if err := validateProbability(p); err != nil {
			return err
		}
		c.probability = p

		return nil
	})
}

// WithBaseSeed sets the seed trial 0 uses; trial i uses seed+i.
func WithBaseSeed(seed uint64) SimulateOption {
	return options.NoError(func(c *SimulateConfig) {
		c.seed = seed
	})
}

// WithFEC protects the bits with the Golay code before line coding.
func WithFEC() SimulateOption {
	return options.NoError(func(c *SimulateConfig) {
		c.fec = true
	})
}

// Report summarizes a Simulate run.
type Report struct {
	Scheme      format.Scheme
	Probability float64
	FEC         bool
	// SourceBits is the number of data bits sent per trial.
	SourceBits int
	// LineLevels is the number of levels sent per trial, including FEC overhead.
	LineLevels int
	// BitErrors holds the number of wrong data bits per trial, in trial order.
	BitErrors []int
	// Warnings is the total number of decode warnings over all trials.
	Warnings int
	// ErrorFree is the number of trials that recovered every bit.
	ErrorFree int
	// MeanBER and StdDevBER describe the per-trial bit error rate.
	MeanBER   float64
	StdDevBER float64
}

// Trials returns the number of trials run.
func (r *Report) Trials() int {
	return len(r.BitErrors)
}

// TotalBitErrors returns the sum of BitErrors.
func (r *Report) TotalBitErrors() int {
	total := 0
	for _, n := range r.BitErrors {
		total += n
	}

	return total
}

type trialResult struct {
	bitErrors int
	warnings  int
}

// Simulate sends bits through a noisy channel many times and measures how
// many survive. Each trial encodes with scheme, applies noise seeded from
// the base seed plus the trial index, and decodes. Results are deterministic
// for a given configuration regardless of concurrency.
//
// Simulate stops early and returns ctx.Err() if ctx is canceled.
//
// Parameters:
//   - ctx: Cancels outstanding trials
//   - bits: Data bits sent in every trial
//   - scheme: Line coding scheme
//   - opts: Trial count, concurrency, probability, seed and FEC settings
//
// Returns:
//   - *Report: Per-trial bit errors and bit error rate statistics
//   - error: Invalid input or option, or the context error
func Simulate(ctx context.Context, bits []encoding.Bit, scheme format.Scheme, opts ...SimulateOption) (*Report, error) {
	if !scheme.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}

	if len(bits) == 0 {
		return nil, errs.ErrEmptyInput
	}

	cfg := newSimulateConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := encoding.ValidateBits(bits); err != nil {
		return nil, err
	}

	payload := bits
	if cfg.fec {
		protected, err := fec.Protect(bits)
		if err != nil {
			return nil, err
		}
		payload = protected
	}

	levels, err := encoding.Encode(payload, scheme)
	if err != nil {
		return nil, err
	}

	results := make([]trialResult, cfg.trials)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i := range cfg.trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := runTrial(bits, levels, scheme, cfg, cfg.seed+uint64(i)) //nolint: gosec
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildReport(bits, levels, scheme, cfg, results), nil
}

func runTrial(bits []encoding.Bit, levels []encoding.Level, scheme format.Scheme, cfg *SimulateConfig, seed uint64) (trialResult, error) {
	noisy, err := ApplyNoise(levels, cfg.probability, scheme, WithSeed(seed))
	if err != nil {
		return trialResult{}, err
	}

	received, warnings, err := encoding.Decode(noisy, scheme, encoding.WithoutPadding())
	if err != nil {
		return trialResult{}, err
	}

	if cfg.fec {
		received, err = fec.Recover(fitLength(received, fec.EncodedLen(len(bits))), len(bits))
		if err != nil {
			return trialResult{}, err
		}
	}

	return trialResult{
		bitErrors: countBitErrors(bits, received),
		warnings:  len(warnings),
	}, nil
}

func buildReport(bits []encoding.Bit, levels []encoding.Level, scheme format.Scheme, cfg *SimulateConfig, results []trialResult) *Report {
	report := &Report{
		Scheme:      scheme,
		Probability: cfg.probability,
		FEC:         cfg.fec,
		SourceBits:  len(bits),
		LineLevels:  len(levels),
		BitErrors:   make([]int, len(results)),
	}

	rates := make([]float64, len(results))
	for i, res := range results {
		report.BitErrors[i] = res.bitErrors
		report.Warnings += res.warnings
		if res.bitErrors == 0 {
			report.ErrorFree++
		}
		rates[i] = float64(res.bitErrors) / float64(len(bits))
	}

	if len(rates) == 1 {
		report.MeanBER = rates[0]
	} else {
		report.MeanBER, report.StdDevBER = stat.MeanStdDev(rates, nil)
	}

	return report
}

// countBitErrors compares sent against received; missing bits count as errors.
func countBitErrors(sent, received []encoding.Bit) int {
	n := 0
	for i, b := range sent {
		if i >= len(received) || received[i] != b {
			n++
		}
	}

	return n
}

// fitLength truncates or zero-extends bits to n.
func fitLength(bits []encoding.Bit, n int) []encoding.Bit {
	if len(bits) >= n {
		return bits[:n]
	}

	out := make([]encoding.Bit, n)
	copy(out, bits)

	return out
}
