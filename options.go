// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/whack

package whack

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Level controls match-search effort, clamped to [2, 14]. Higher levels
	// walk longer hash chains for a better ratio at more CPU cost.
	Level int
	// Stats, when non-nil, accumulates compression statistics across calls.
	Stats *Stats
}

// DefaultCompressOptions returns options for the standard level (6).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: DefaultLevel}
}
