package cdis

import "math"

// float32Bits/float32FromBits let float32 fields ride the bit cursor
// as raw 32-bit fields when C-DIS carries them at full precision
// (spec.md §3's scaling rules apply only to the named kinematic
// vectors, not every float field).
func float32Bits(f float32) uint32     { return math.Float32bits(f) }
func float32FromBits(b uint32) float32 { return math.Float32frombits(b) }

func float64Bits(f float64) uint64     { return math.Float64bits(f) }
func float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
