package encoding

// Bit is a logical binary digit. Only 0 and 1 are valid; the wider type lets
// malformed input reach validation instead of being truncated.
type Bit uint8

// Level is a physical signal value. Binary schemes use LevelLow and LevelHigh,
// AMI additionally uses LevelNegative.
type Level int8

const (
	LevelNegative Level = -1
	LevelLow      Level = 0
	LevelHigh     Level = 1
)

// initialLevel is the line level every stateful encoder starts from.
const initialLevel = LevelLow

// invert returns the complement of a binary level.
func invert(l Level) Level {
	return 1 - l
}

func boolBit(b bool) Bit {
	if b {
		return 1
	}

	return 0
}
