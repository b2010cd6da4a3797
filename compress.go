// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/whack

package whack

// Compress compresses src into a self-contained whack block. opts may be nil
// (uses the default level 6). Returns ErrNotCompressible when the block
// cannot come out strictly smaller than src; no partial output is returned.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dict := acquireDictionary(opts.Level)
	defer releaseDictionary(dict)

	return compressBlock(dict, src, opts.Stats)
}
