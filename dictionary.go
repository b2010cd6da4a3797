// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/whack

package whack

// dictionary is the compressor's hash-chain dictionary. Each of the 16384
// hash buckets holds the most recent dictionary position with that hash;
// next threads older positions sharing the bucket into per-bucket chains.
//
// Positions are 16-bit wrapping counters. A chain entry is reachable only
// while (now - then) & 0xFFFF lies in (0, whackMaxOff]. The counter starts at
// 2*whackMaxOff, so the zero value left in a fresh bucket fails that test for
// the first 2*whackMaxOff positions of a block. Once the counter wraps, a zero
// bucket can pass the test; the match search then compares the bytes at that
// distance like any other candidate.
type dictionary struct {
	begin    uint16 // next position counter value
	hash     [whackMaxOff]uint16
	next     [whackMaxOff]uint16
	maxCheck int // chain entries examined per position, also the good-enough length
}

// reset restores the fresh-dictionary invariant: zeroed chains and the
// counter back at 2*whackMaxOff. Required before any reuse.
func (d *dictionary) reset(level int) {
	d.begin = 2 * whackMaxOff
	d.maxCheck = maxCheckForLevel(level)
	clear(d.hash[:])
	clear(d.next[:])
}

// hashKey is Knuth multiplicative hashing of the 24-bit rolling context
// (three source bytes), using a wrapping 32-bit multiply.
func hashKey(cont uint32) uint16 {
	return uint16((cont & 0xffffff) * 0x6b43a9b5 >> (32 - hashLog) & hashMask)
}
