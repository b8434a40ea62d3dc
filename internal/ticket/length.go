package ticket

const (
	// DefaultMinLength is the shortest length picked when none is given.
	DefaultMinLength = 8

	// DefaultMaxLength is the longest length picked when none is given.
	DefaultMaxLength = 32
)

// RangeInt returns a uniformly distributed integer in [lo, hi] drawn from GlobalSource.
// lo must not be greater than hi.
func RangeInt(lo, hi int) int {
	return RangeIntFrom(GlobalSource, lo, hi)
}

// RangeIntFrom is RangeInt on the given source.
func RangeIntFrom(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
