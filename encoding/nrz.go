package encoding

// encodeNRZ maps each bit directly to a level.
func encodeNRZ(bits []Bit, out []Level) []Level {
	for _, b := range bits {
		out = append(out, Level(b))
	}

	return out
}

func (d *decoder) nrz(levels []Level) []Bit {
	bits := make([]Bit, 0, len(levels))
	for _, l := range levels {
		bits = append(bits, Bit(l))
	}

	return bits
}
