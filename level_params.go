package whack

// Compression levels map to a single search-effort parameter: the maximum
// number of hash-chain entries examined per position, which doubles as the
// good-enough length for early termination.

const (
	minLevel = 2
	maxLevel = 14

	minMaxCheck = 2
	maxMaxCheck = 1024
)

// maxCheckForLevel derives the chain-walk bound from a compression level:
// 2^level minus a quarter, clamped to [2, 1024]. The level itself is clamped
// to [minLevel, maxLevel] first.
func maxCheckForLevel(level int) int {
	level = max(level, minLevel)
	level = min(level, maxLevel)

	check := 1 << uint(level)
	check -= check >> 2

	check = max(check, minMaxCheck)
	check = min(check, maxMaxCheck)

	return check
}
