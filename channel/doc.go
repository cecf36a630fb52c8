// Package channel simulates a noisy transmission line.
//
// ApplyNoise flips each level of an encoded signal independently with a
// fixed probability, the binary symmetric channel. Simulate repeats the full
// encode, noise and decode path over many seeded trials and reports bit
// error statistics, optionally with Golay forward error correction.
//
// On the AMI alphabet a flipped 0 becomes +1 and a flipped mark becomes 0;
// the sign of a corrupted mark is not modelled.
package channel
