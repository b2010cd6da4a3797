// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/whack

package whack

// findLongestMatch walks the hash chain for bucket h looking for the longest
// match for src[ss:] within the sliding window. esrc is the end of the
// source; now is the dictionary position about to be assigned to ss.
// Returns (0, 0) when no match of at least minMatch exists.
//
// Offsets along a chain must be strictly increasing; an entry whose offset
// is not larger than the previous one, or larger than the window, ends the
// walk (this is also how the zero terminator in a fresh bucket is detected
// under 16-bit wraparound). A match longer than maxCheck is taken as good
// enough and ends the search immediately.
func (d *dictionary) findLongestMatch(src []byte, ss, esrc int, h, now uint16) (bestLen, bestOff int) {
	if esrc < ss+minMatch {
		return 0, 0
	}

	if ss+maxLen < esrc {
		esrc = ss + maxLen
	}

	var last uint16
	then := d.hash[h]
	for check := d.maxCheck; check > 0; check-- {
		off := now - then
		if off <= last || off > whackMaxOff {
			break
		}

		s := ss
		t := s - int(off)
		if src[s] == src[t] && src[s+1] == src[t+1] && src[s+2] == src[t+2] {
			if bestLen == 0 || esrc-s > bestLen && src[s+bestLen] == src[t+bestLen] {
				s += minMatch
				t += minMatch
				for s < esrc && src[s] == src[t] {
					s++
					t++
				}

				if s-ss > bestLen {
					bestLen = s - ss
					bestOff = int(off)
					if bestLen > d.maxCheck {
						break
					}
				}
			}
		}

		last = off
		then = d.next[then&(whackMaxOff-1)]
	}

	return bestLen, bestOff
}
