// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/whack

package whack

// bitWriter accumulates MSB-first codes and drains whole bytes into the
// output, refusing to grow past the input size.
type bitWriter struct {
	dst   []byte
	bits  uint64
	nbits int
	limit int
}

// put appends the low width bits of v.
func (b *bitWriter) put(v uint64, width int) {
	b.bits = b.bits<<width | v
	b.nbits += width
}

// flush moves whole bytes to the output. Reports false once the output has
// reached the limit; the block is then not worth keeping.
func (b *bitWriter) flush() bool {
	for b.nbits >= 8 {
		if len(b.dst) >= b.limit {
			return false
		}

		b.dst = append(b.dst, byte(b.bits>>(b.nbits-8)))
		b.nbits -= 8
	}

	return true
}

// pad zero-fills the buffer up to the next byte boundary.
func (b *bitWriter) pad() {
	if r := b.nbits & 7; r != 0 {
		b.bits <<= 8 - r
		b.nbits += 8 - r
	}
}

// compressBlock runs the whack parse over src: one dictionary probe per
// position, literal or match emission under the bit grammar, and dictionary
// insertion for every position consumed. Aborts with ErrNotCompressible the
// moment the output would reach len(src), and once at the midpoint when
// literals dominate the parse.
func compressBlock(w *dictionary, src []byte, stats *Stats) ([]byte, error) {
	n := len(src)
	if n < minMatch {
		return nil, ErrNotCompressible
	}

	bw := bitWriter{dst: make([]byte, 0, n), limit: n}
	now := w.begin
	esrc := n
	half := n >> 1
	cont := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
	lithist := ^uint32(0)

	var lits, matches, offbits, lenbits int

	s := 0
	for s < esrc {
		h := hashKey(cont)
		length, toff := w.findLongestMatch(src, s, esrc, h, now)
		ss := s + length

		if !bw.flush() {
			w.begin = now
			return nil, ErrNotCompressible
		}

		if length < minMatch {
			c := src[s]
			if c < 32 || c > 127 {
				lithist = lithist<<1 | 1
			} else {
				lithist <<= 1
			}

			switch {
			case lithist&0x1e != 0:
				// A non-ASCII byte among the last four literals: raw byte
				// behind a single 0 flag bit.
				bw.put(uint64(c), 9)
			case lithist&1 != 0:
				// Non-ASCII byte, clean history: 64-biased escape form.
				c += 64
				if c < 96 {
					bw.put(uint64(c), 10)
				} else {
					bw.put(uint64(c), 11)
				}
			default:
				// ASCII byte, clean history: the high bit of the byte itself
				// is the 0 literal flag.
				bw.put(uint64(c), 8)
			}
			lits++

			// Bail once at the midpoint when fewer than a fifth of the
			// positions so far became matches; such blocks do not shrink.
			if s > half {
				if 4*s < 5*lits {
					w.begin = now
					return nil, ErrNotCompressible
				}
				half = esrc
			}

			if s+minMatch <= esrc {
				w.next[now&(whackMaxOff-1)] = w.hash[h]
				w.hash[h] = now
				if s+minMatch < esrc {
					cont = cont<<8 | uint32(src[s+minMatch])
				}
			}
			now++
			s++
			continue
		}

		matches++
		if length > maxLen {
			length = maxLen
			ss = s + length
		}

		length -= minMatch
		if length < maxFastLen {
			e := lenTab[length]
			bw.put(e.code, e.bits)
			lenbits += e.bits
		} else {
			code := bigLenCode
			width := bigLenBits
			use := bigLenBase
			length -= maxFastLen
			for length >= use {
				length -= use
				code = (code + use) << 1
				use <<= width & 1 ^ 1
				width++
			}
			bw.put(uint64(code+length), width)
			lenbits += width

			if !bw.flush() {
				w.begin = now
				return nil, ErrNotCompressible
			}
		}

		toff--
		width := minOffBits
		for toff >= 1<<width {
			width++
		}
		if width < maxOffBits-1 {
			bw.put(uint64(width-minOffBits), 3)
			if width != minOffBits {
				// The top offset bit is implied by the class.
				width--
			}
			offbits += width + 3
		} else {
			bw.put(uint64(0xe|(width-(maxOffBits-1))), 4)
			width--
			offbits += width + 4
		}
		bw.put(uint64(toff&(1<<width-1)), width)

		for s != ss {
			if s+minMatch <= esrc {
				h = hashKey(cont)
				w.next[now&(whackMaxOff-1)] = w.hash[h]
				w.hash[h] = now
				if s+minMatch < esrc {
					cont = cont<<8 | uint32(src[s+minMatch])
				}
			}
			now++
			s++
		}
	}
	w.begin = now

	litbits := len(bw.dst)*8 + bw.nbits - offbits - lenbits

	bw.pad()
	if !bw.flush() || len(bw.dst) >= n {
		return nil, ErrNotCompressible
	}

	if stats != nil {
		stats.BytesIn += esrc
		stats.BytesOut += len(bw.dst)
		stats.Literals += lits
		stats.Matches += matches
		stats.LiteralBits += litbits
		stats.OffsetBits += offbits
		stats.LengthBits += lenbits
	}

	return bw.dst, nil
}
