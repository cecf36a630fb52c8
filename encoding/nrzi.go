package encoding

// encodeNRZI holds the line for a 0 and toggles it for a 1.
func encodeNRZI(bits []Bit, out []Level) []Level {
	level := initialLevel
	for _, b := range bits {
		if b == 1 {
			level = invert(level)
		}
		out = append(out, level)
	}

	return out
}

// nrzi decodes a 1 wherever the level differs from its predecessor.
// The first sample is compared with the initial level, or skipped when the
// initial level is unknown.
func (d *decoder) nrzi(levels []Level) []Bit {
	bits := make([]Bit, 0, len(levels))
	prev := initialLevel
	for i, l := range levels {
		if i == 0 && d.cfg.unknownInitialLevel {
			prev = l
			continue
		}
		bits = append(bits, boolBit(l != prev))
		prev = l
	}

	return bits
}
