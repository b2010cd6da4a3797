// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/whack

package whack

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrNotCompressible is returned when the compressor cannot produce output
	// strictly smaller than the input (too-short input, non-profitable stream,
	// or the midpoint progress heuristic). Callers store the input verbatim.
	ErrNotCompressible = errors.New("input not compressible")

	// ErrTooMuchOutput is returned when the decoder would write past OutLen.
	ErrTooMuchOutput = errors.New("too much output")
	// ErrLenOutOfRange is returned for a match length that runs past OutLen or
	// a big-length code that exhausts the bit buffer.
	ErrLenOutOfRange = errors.New("len out of range")
	// ErrOffsetOutOfRange is returned for a back-reference into not-yet-written
	// output. The returned error carries off/d/len/nbits detail; match it with
	// errors.Is(err, whack.ErrOffsetOutOfRange).
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrDataOverrun is returned when the stream ends with inconsistent
	// bit-buffer bookkeeping (more padding consumed than was ever supplied).
	ErrDataOverrun = errors.New("compressed data overrun")

	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
