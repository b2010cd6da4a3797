// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/whack

package whack

import "fmt"

// Decompress decompresses a whack block from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil or OutLen is
// negative. The returned slice may be shorter than OutLen (a well-formed
// stream is not required to fill the buffer); callers needing an exact size
// compare the returned length themselves.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	outLen := opts.OutLen
	if outLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, outLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses src into the caller's buffer. len(dst) bounds
// the output exactly as OutLen does for Decompress.
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// decompressCore reads the bit grammar MSB-first from src and materializes
// literals and match copies into dst. It returns the number of bytes written.
//
// The bit buffer is refilled to more than 24 bits before every token; bytes
// synthesized past the end of input are counted in overbits so that padding
// can be told apart from real data at the end. The loop runs while input
// bytes remain or at least minDecode non-padding bits are pending.
func decompressCore(src, dst []byte) (int, error) {
	var (
		bits     uint64
		nbits    int
		overbits int
		spos     int
		dpos     int
	)

	smax := len(src)
	dmax := len(dst)
	lithist := ^uint32(0)

	refill := func() {
		for nbits <= 24 {
			bits <<= 8
			if spos < smax {
				bits |= uint64(src[spos])
				spos++
			} else {
				overbits += 8
			}
			nbits += 8
		}
	}

	for spos < smax || nbits-overbits >= minDecode {
		refill()

		v := int(lenVal[bits>>(nbits-5)&0x1f])
		if v == 0 {
			// Literal. The history decides which of the three codings the
			// encoder used for this byte.
			var lit byte
			if lithist&0xf != 0 {
				nbits -= 9
				lit = byte(bits >> nbits & 0xff)
			} else {
				nbits -= 8
				lit = byte(bits >> nbits & 0x7f)
				if lit < 32 {
					if lit < 24 {
						nbits -= 2
						lit = lit<<2 | byte(bits>>nbits&3)
					} else {
						nbits -= 3
						lit = lit<<3 | byte(bits>>nbits&7)
					}
					lit -= 64
				}
			}

			if dpos >= dmax {
				return 0, ErrTooMuchOutput
			}

			dst[dpos] = lit
			dpos++
			if lit < 32 || lit > 127 {
				lithist = lithist<<1 | 1
			} else {
				lithist <<= 1
			}
			continue
		}

		// Match length: short lengths decode straight from the 5-bit peek;
		// the escape replays the encoder's expanding-width loop bit by bit.
		length := v
		if v < 255 {
			nbits -= int(lenBits[length])
		} else {
			nbits -= dBigLenBits
			code := int(bits>>nbits&(1<<dBigLenBits-1)) - dBigLenCode
			length = dMaxFastLen
			use := dBigLenBase
			step := dBigLenBits&1 ^ 1
			for code >= use {
				if nbits == 0 {
					return 0, ErrLenOutOfRange
				}

				length += use
				code -= use
				code <<= 1
				nbits--
				code |= int(bits >> nbits & 1)
				use <<= step
				step ^= 1
			}
			length += code

			refill()
		}

		// Match offset: 4-bit class, then the class's extra bits.
		nbits -= 4
		class := bits >> nbits & 0xf
		off := int(offBase[class])
		width := int(offBits[class])
		nbits -= width
		off |= int(bits>>nbits) & (1<<width - 1)
		off++

		if off > dpos {
			return 0, fmt.Errorf("%w: off=%d d=%d len=%d nbits=%d", ErrOffsetOutOfRange, off, dpos, length, nbits)
		}
		if dpos+length > dmax {
			return 0, ErrLenOutOfRange
		}

		copyBackRef(dst, dpos, off, length)
		dpos += length
	}

	if nbits < overbits {
		return 0, ErrDataOverrun
	}

	return dpos, nil
}
