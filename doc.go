// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/whack

/*
Package whack implements the Plan 9 "whack" block compressor and its inverse.

Whack is an LZ77-family codec with a 16 KiB sliding dictionary and a custom
variable-length bit grammar: literals are coded in 8, 9, 10 or 11 bits
depending on recent literal history, match lengths use a fixed prefix table
with an expanding escape for long matches, and match offsets use 16 classes
with an implied high bit. A block is self-contained; there is no framing,
header or terminator, so the caller must carry the original length.

# Compress

Options may be nil (default level 6). Compression refuses inputs it cannot
make strictly smaller and returns ErrNotCompressible; callers store such
blocks verbatim:

	out, err := whack.Compress(data, nil)
	if errors.Is(err, whack.ErrNotCompressible) {
		out = data // store raw
	}

# Decompress

OutLen is required (use DecompressOptions) and bounds the output buffer:

	out, err := whack.Decompress(compressed, whack.DefaultDecompressOptions(expectedLen))

To reuse a caller-owned buffer:

	out, err := whack.DecompressInto(compressed, buf)
*/
package whack
