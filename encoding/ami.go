package encoding

// encodeAMI emits 0 for a 0-bit and alternates the polarity of successive
// 1-bits. The polarity starts at +1 and flips before each mark, so the first
// mark is -1.
func encodeAMI(bits []Bit, out []Level) []Level {
	polarity := LevelHigh
	for _, b := range bits {
		if b == 0 {
			out = append(out, LevelLow)
			continue
		}
		polarity = -polarity
		out = append(out, polarity)
	}

	return out
}

// ami decodes any non-zero level as a 1 and reports marks that repeat the
// previous mark's polarity.
func (d *decoder) ami(levels []Level) []Bit {
	bits := make([]Bit, 0, len(levels))

	lastMark := LevelHigh
	if d.cfg.unknownInitialLevel {
		lastMark = LevelLow
	}

	for i, l := range levels {
		if l == LevelLow {
			bits = append(bits, 0)
			continue
		}
		if l == lastMark {
			d.warn(DecodeWarning{
				Kind:   WarningBipolarViolation,
				Symbol: i,
				Offset: i,
				Bit:    1,
			})
		}
		lastMark = l
		bits = append(bits, 1)
	}

	return bits
}
