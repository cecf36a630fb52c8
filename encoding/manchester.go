package encoding

// encodeManchester emits low-high for a 0 and high-low for a 1.
func encodeManchester(bits []Bit, out []Level) []Level {
	for _, b := range bits {
		if b == 0 {
			out = append(out, LevelLow, LevelHigh)
		} else {
			out = append(out, LevelHigh, LevelLow)
		}
	}

	return out
}

// manchester decodes level pairs. A pair without a transition repeats the
// previously decoded bit, or yields 0 for the first symbol.
func (d *decoder) manchester(levels []Level) []Bit {
	n := d.symbols(levels)
	bits := make([]Bit, 0, n)

	for i := range n {
		first, second := levels[2*i], levels[2*i+1]

		switch {
		case first == LevelLow && second == LevelHigh:
			bits = append(bits, 0)
		case first == LevelHigh && second == LevelLow:
			bits = append(bits, 1)
		default:
			var recovered Bit
			if len(bits) > 0 {
				recovered = bits[len(bits)-1]
			}
			bits = append(bits, recovered)
			d.warn(DecodeWarning{
				Kind:   WarningInvalidTransition,
				Symbol: i,
				Offset: 2 * i,
				Bit:    recovered,
			})
		}
	}

	return bits
}
