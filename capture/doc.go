// Package capture stores encoded signals in a compact binary container.
//
// A capture holds the level sequence produced by a line coding scheme,
// bit-packed (one bit per binary level, two per AMI level), optionally
// compressed, and protected by an xxHash64 checksum. The header layout is
// described in the section package.
//
// Writing:
//
//	enc, err := capture.NewEncoder(format.SchemeManchester,
//	    capture.WithCompression(format.CompressionZstd),
//	    capture.WithSourceBits(len(bits)),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := enc.WriteLevels(levels); err != nil {
//	    return err
//	}
//	c, err := enc.Finish()
//
// Reading:
//
//	dec, err := capture.NewDecoder(c.Bytes())
//	if err != nil {
//	    return err
//	}
//	bits, warnings, err := dec.Bits()
//
// Encoders are not safe for concurrent use. Decoders are read-only after
// construction and may be shared.
package capture
