package encoding

// pad appends 0-bits until len(bits) is a multiple of the frame size and
// records how many were added.
func (d *decoder) pad(bits []Bit) []Bit {
	size := d.cfg.frameSize
	if size <= 1 || len(bits)%size == 0 {
		return bits
	}

	count := size - len(bits)%size
	for range count {
		bits = append(bits, 0)
	}
	d.warn(DecodeWarning{
		Kind:   WarningPadding,
		Symbol: -1,
		Offset: -1,
		Count:  count,
	})

	return bits
}

// PaddingBits returns the number of padding bits reported in warnings.
func PaddingBits(warnings []DecodeWarning) int {
	for _, w := range warnings {
		if w.Kind == WarningPadding {
			return w.Count
		}
	}

	return 0
}

// StripPadding returns bits without the trailing padding reported in warnings.
func StripPadding(bits []Bit, warnings []DecodeWarning) []Bit {
	n := PaddingBits(warnings)
	if n == 0 || n > len(bits) {
		return bits
	}

	return bits[:len(bits)-n]
}
