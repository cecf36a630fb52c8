package encoding

// encodeBiphase implements both biphase variants. Every symbol transitions
// mid-way; a bit equal to markBit also transitions at the symbol start.
// markBit is 1 for Biphase-Mark and 0 for Biphase-Space.
func encodeBiphase(bits []Bit, out []Level, markBit Bit) []Level {
	level := initialLevel
	for _, b := range bits {
		if b == markBit {
			level = invert(level)
		}
		out = append(out, level)
		level = invert(level)
		out = append(out, level)
	}

	return out
}

// biphase decodes markBit when a symbol's start level differs from the final
// level of the previous symbol, and the other bit when it does not.
func (d *decoder) biphase(levels []Level, markBit Bit) []Bit {
	n := d.symbols(levels)
	bits := make([]Bit, 0, n)

	prevEnd := initialLevel
	for i := range n {
		start, end := levels[2*i], levels[2*i+1]
		if i == 0 && d.cfg.unknownInitialLevel {
			d.checkMidTransition(levels, i, 0)
			prevEnd = end
			continue
		}

		bit := markBit
		if start == prevEnd {
			bit ^= 1
		}
		d.checkMidTransition(levels, i, bit)
		bits = append(bits, bit)
		prevEnd = end
	}

	return bits
}
