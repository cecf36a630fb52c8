package encoding

// encodeDifferentialManchester always transitions mid-symbol; a 1 adds a
// transition at the start of the symbol.
func encodeDifferentialManchester(bits []Bit, out []Level) []Level {
	level := initialLevel
	for _, b := range bits {
		if b == 1 {
			level = invert(level)
		}
		out = append(out, level)
		level = invert(level)
		out = append(out, level)
	}

	return out
}

// differentialManchester compares the first level of each symbol with the
// first level of the symbol before it: equal means the line transitioned at
// the symbol start (bit 1), different means it did not (bit 0).
//
// Each comparison needs both symbols, so the walk ends at the last full
// symbol and never reads past the sequence. The first symbol has no
// predecessor; its bit comes from comparing its start level with the initial
// level, or is skipped when that level is unknown.
func (d *decoder) differentialManchester(levels []Level) []Bit {
	n := d.symbols(levels)
	bits := make([]Bit, 0, n)

	for i := range n {
		var bit Bit
		switch {
		case i > 0:
			bit = boolBit(levels[2*(i-1)] == levels[2*i])
		case d.cfg.unknownInitialLevel:
			d.checkMidTransition(levels, i, 0)
			continue
		default:
			bit = boolBit(levels[0] != initialLevel)
		}
		d.checkMidTransition(levels, i, bit)
		bits = append(bits, bit)
	}

	return bits
}
