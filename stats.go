// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/whack

package whack

// Stats accumulates compression statistics across calls. Attach one to
// CompressOptions.Stats; refused blocks contribute nothing.
type Stats struct {
	BytesIn     int // source bytes consumed
	BytesOut    int // compressed bytes produced
	Literals    int // literal tokens emitted
	Matches     int // match tokens emitted
	LiteralBits int // bits spent on literals
	OffsetBits  int // bits spent on match offsets
	LengthBits  int // bits spent on match lengths
}
