package format

import "strings"

type (
	Scheme          uint8
	CompressionType uint8
)

const (
	SchemeNRZ                    Scheme = 0x1 // SchemeNRZ represents Non-Return-to-Zero, level equals bit.
	SchemeNRZI                   Scheme = 0x2 // SchemeNRZI represents NRZ Inverted, a 1 flips the line.
	SchemeAMI                    Scheme = 0x3 // SchemeAMI represents Alternate Mark Inversion, ternary levels.
	SchemeManchester             Scheme = 0x4 // SchemeManchester represents IEEE 802.3 style Manchester.
	SchemeDifferentialManchester Scheme = 0x5 // SchemeDifferentialManchester represents Differential Manchester.
	SchemeBiphaseMark            Scheme = 0x6 // SchemeBiphaseMark represents Biphase-Mark (FM1).
	SchemeBiphaseSpace           Scheme = 0x7 // SchemeBiphaseSpace represents Biphase-Space (FM0).

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var (
	binaryAlphabet  = []int8{0, 1}
	ternaryAlphabet = []int8{-1, 0, 1}

	schemeNames = map[string]Scheme{
		"nrz":                    SchemeNRZ,
		"nrzi":                   SchemeNRZI,
		"ami":                    SchemeAMI,
		"manchester":             SchemeManchester,
		"differentialmanchester": SchemeDifferentialManchester,
		"diffmanchester":         SchemeDifferentialManchester,
		"biphasemark":            SchemeBiphaseMark,
		"biphasespace":           SchemeBiphaseSpace,
	}
)

// Schemes returns every supported scheme in identifier order.
func Schemes() []Scheme {
	return []Scheme{
		SchemeNRZ,
		SchemeNRZI,
		SchemeAMI,
		SchemeManchester,
		SchemeDifferentialManchester,
		SchemeBiphaseMark,
		SchemeBiphaseSpace,
	}
}

// ParseScheme resolves a scheme by name.
//
// Matching ignores case and the separators '_', '-' and ' ', so
// "Differential_Manchester", "differential-manchester" and "DIFFERENTIALMANCHESTER"
// all resolve to SchemeDifferentialManchester.
func ParseScheme(name string) (Scheme, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(name)))

	s, ok := schemeNames[key]

	return s, ok
}

// IsValid reports whether s is one of the supported schemes.
func (s Scheme) IsValid() bool {
	return s >= SchemeNRZ && s <= SchemeBiphaseSpace
}

// LevelsPerBit returns the number of levels emitted for each bit, 1 or 2.
// It returns 0 for an unknown scheme.
func (s Scheme) LevelsPerBit() int {
	switch s {
	case SchemeNRZ, SchemeNRZI, SchemeAMI:
		return 1
	case SchemeManchester, SchemeDifferentialManchester, SchemeBiphaseMark, SchemeBiphaseSpace:
		return 2
	default:
		return 0
	}
}

// IsTernary reports whether the scheme uses the {-1, 0, +1} alphabet.
func (s Scheme) IsTernary() bool {
	return s == SchemeAMI
}

// Alphabet returns the level values the scheme may produce.
// The returned slice must not be modified.
func (s Scheme) Alphabet() []int8 {
	if !s.IsValid() {
		return nil
	}
	if s.IsTernary() {
		return ternaryAlphabet
	}

	return binaryAlphabet
}

// Contains reports whether level belongs to the scheme's alphabet.
func (s Scheme) Contains(level int8) bool {
	if !s.IsValid() {
		return false
	}
	if s.IsTernary() {
		return level >= -1 && level <= 1
	}

	return level == 0 || level == 1
}

func (s Scheme) String() string {
	switch s {
	case SchemeNRZ:
		return "NRZ"
	case SchemeNRZI:
		return "NRZI"
	case SchemeAMI:
		return "AMI"
	case SchemeManchester:
		return "Manchester"
	case SchemeDifferentialManchester:
		return "Differential_Manchester"
	case SchemeBiphaseMark:
		return "Biphase_Mark"
	case SchemeBiphaseSpace:
		return "Biphase_Space"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
