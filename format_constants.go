// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/whack

package whack

// Whack format constants: dictionary geometry, match bounds and the fixed
// entropy-code tables shared by the encoder and the decoder.

// Match and dictionary bounds.
const (
	minMatch    = 3     // shortest emittable match
	maxLen      = 2051  // longest emittable match
	whackMaxOff = 16384 // sliding dictionary size (max back-reference distance)
	minDecode   = 8     // smallest residual bit count the decoder still parses
)

// Dictionary hash parameters.
const (
	hashLog  = 14
	hashMask = 1<<hashLog - 1
)

// Length code parameters. The encoder's big-length escape starts at a 9-bit
// code; the decoder re-derives the same expansion after a 6-bit peek, hence
// the second parameter set.
const (
	maxFastLen  = 9 // length-minMatch values covered by lenTab
	bigLenCode  = 500
	bigLenBits  = 9
	bigLenBase  = 4 // items encoded at the starting width
	dMaxFastLen = 7
	dBigLenCode = 60
	dBigLenBits = 6
	dBigLenBase = 1
)

// Offset code parameters.
const (
	minOffBits = 6
	maxOffBits = minOffBits + 8
)

// DefaultLevel is the compression level used when no options are given.
const DefaultLevel = 6

// lenVal decodes the top 5 bits of the bit buffer: 0 = literal, 3..6 = short
// match of that length, 255 = big-length escape.
var lenVal = [32]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 5, 6, 255, 255,
}

// lenBits is the full width of the short length code, indexed by its decoded
// lenVal. Indices 0..2 are unused.
var lenBits = [7]byte{0, 0, 0, 2, 3, 5, 5}

// offBits is the number of extra offset bits after the 4-bit class selector.
var offBits = [16]byte{5, 5, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 12, 13}

// offBase is the base offset contributed by each class.
var offBase = [16]uint16{
	0, 0x20, 0x40, 0x60, 0x80, 0xc0, 0x100, 0x180,
	0x200, 0x300, 0x400, 0x600, 0x800, 0xc00, 0x1000, 0x2000,
}

// huff is one fixed prefix code: width in bits and the MSB-aligned code.
type huff struct {
	bits int
	code uint64
}

// lenTab encodes short match lengths (length - minMatch in 0..8).
var lenTab = [maxFastLen]huff{
	{2, 0b10},
	{3, 0b110},
	{5, 0b11100},
	{5, 0b11101},
	{6, 0b111100},
	{7, 0b1111010},
	{7, 0b1111011},
	{8, 0b11111000},
	{8, 0b11111001},
}
