package encoding

import "fmt"

// WarningKind classifies a non-fatal anomaly found while decoding.
type WarningKind uint8

const (
	WarningInvalidTransition WarningKind = iota + 1 // WarningInvalidTransition marks a Manchester symbol with no mid transition.
	WarningMissingTransition                        // WarningMissingTransition marks a differential or biphase symbol with no mid transition.
	WarningBipolarViolation                         // WarningBipolarViolation marks an AMI mark with the same polarity as the previous one.
	WarningTruncatedSymbol                          // WarningTruncatedSymbol marks a trailing level that is not a full symbol.
	WarningPadding                                  // WarningPadding reports 0-bits appended to complete the last frame.
)

func (k WarningKind) String() string {
	switch k {
	case WarningInvalidTransition:
		return "InvalidTransition"
	case WarningMissingTransition:
		return "MissingTransition"
	case WarningBipolarViolation:
		return "BipolarViolation"
	case WarningTruncatedSymbol:
		return "TruncatedSymbol"
	case WarningPadding:
		return "Padding"
	default:
		return "Unknown"
	}
}

// DecodeWarning describes an anomaly the decoder recovered from.
type DecodeWarning struct {
	Kind WarningKind
	// Symbol is the index of the affected symbol, or -1 for padding.
	Symbol int
	// Offset is the index of the first affected level, or -1 for padding.
	Offset int
	// Bit is the bit emitted for the symbol. For WarningInvalidTransition it is the recovered bit.
	Bit Bit
	// Count is the number of padding bits appended. Only set for WarningPadding.
	Count int
}

func (w DecodeWarning) String() string {
	switch w.Kind {
	case WarningPadding:
		return fmt.Sprintf("%s: appended %d bits", w.Kind, w.Count)
	case WarningInvalidTransition:
		return fmt.Sprintf("%s at symbol %d (level %d): recovered bit %d", w.Kind, w.Symbol, w.Offset, w.Bit)
	case WarningTruncatedSymbol:
		return fmt.Sprintf("%s at level %d: dropped", w.Kind, w.Offset)
	default:
		return fmt.Sprintf("%s at symbol %d (level %d)", w.Kind, w.Symbol, w.Offset)
	}
}

// CountWarnings returns how many warnings of the given kind are in warnings.
func CountWarnings(warnings []DecodeWarning, kind WarningKind) int {
	n := 0
	for _, w := range warnings {
		if w.Kind == kind {
			n++
		}
	}

	return n
}
