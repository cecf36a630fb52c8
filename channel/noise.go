package channel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
	"gonum.org/v1/gonum/stat/distuv"
)

// seedMix decorrelates the second PCG stream from the first.
const seedMix = 0x9e3779b97f4a7c15

// NoiseConfig holds the random source used by ApplyNoise.
type NoiseConfig struct {
	src rand.Source
}

// NoiseOption configures ApplyNoise.
type NoiseOption = options.Option[*NoiseConfig]

// WithSeed makes the noise pattern reproducible.
func WithSeed(seed uint64) NoiseOption {
	return options.NoError(func(c *NoiseConfig) {
		c.src = newSource(seed)
	})
}

// WithSource draws noise from src. src is not safe for concurrent use, so
// it must not be shared between concurrent calls.
func WithSource(src rand.Source) NoiseOption {
	return options.New(func(c *NoiseConfig) error {
		if src == nil {
			return fmt.Errorf("channel: nil random source")
		}
		c.src = src

		return nil
	})
}

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^seedMix)
}

// ApplyNoise returns a copy of levels in which every level is independently
// replaced by its complement with probability p.
//
// Binary alphabets flip 0 and 1. On the AMI alphabet 0 becomes +1 and both
// marks become 0. levels is never modified; p = 0 returns an unchanged copy.
//
// Parameters:
//   - levels: Encoded signal, every level in the scheme's alphabet
//   - p: Flip probability within [0, 1]
//   - scheme: Scheme whose alphabet defines the complement
//   - opts: WithSeed or WithSource for reproducible noise
//
// Returns:
//   - []encoding.Level: Noisy copy of levels
//   - error: errs.ErrInvalidScheme, errs.ErrInvalidProbability or errs.ErrInvalidLevel
func ApplyNoise(levels []encoding.Level, p float64, scheme format.Scheme, opts ...NoiseOption) ([]encoding.Level, error) {
	if !scheme.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidScheme, uint8(scheme))
	}

	if err := validateProbability(p); err != nil {
		return nil, err
	}

	if err := encoding.ValidateLevels(levels, scheme); err != nil {
		return nil, err
	}

	cfg := &NoiseConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	out := make([]encoding.Level, len(levels))
	copy(out, levels)

	if p == 0 {
		return out, nil
	}

	if cfg.src == nil {
		cfg.src = newSource(rand.Uint64())
	}

	flip := distuv.Bernoulli{P: p, Src: cfg.src}
	ternary := scheme.IsTernary()
	for i := range out {
		if flip.Rand() == 1 {
			out[i] = complement(out[i], ternary)
		}
	}

	return out, nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidProbability, p)
	}

	return nil
}

func complement(l encoding.Level, ternary bool) encoding.Level {
	if !ternary {
		return encoding.LevelHigh - l
	}
	if l == encoding.LevelLow {
		return encoding.LevelHigh
	}

	return encoding.LevelLow
}
