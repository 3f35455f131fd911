package hash

import (
	"github.com/gostonefire/chainmap/internal/utils"
	"math"
)

// MaximumCapacity - The max number of buckets in a table, it must be a power of two
const MaximumCapacity int = 1 << 30

// Spread - Applies a supplemental hash function to a raw hash code, which defends against poor quality
// hash functions. Since tables use power-of-two lengths, hash codes that only differ in their upper bits
// would otherwise always collide. Folding shifted copies of the upper bits into the lower bits bounds the
// number of collisions for hash codes that differ only by constant multiples at each bit position.
func Spread(h uint32) uint32 {
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}

// IndexFor - Returns the bucket index for a dispersed hash code given the table length.
// The length must be a power of two.
func IndexFor(h uint32, length int) int {
	return int(h & uint32(length-1))
}

// TableSizeFor - Returns the table length to use for a requested capacity, that is the nearest bigger
// power of two, capped at MaximumCapacity.
func TableSizeFor(capacity int) int {
	return utils.RoundUp2(capacity, MaximumCapacity)
}

// Threshold - Returns floor(tableSize * loadFactor), saturated at math.MaxInt
func Threshold(tableSize int, loadFactor float64) int {
	t := float64(tableSize) * loadFactor
	if t >= math.MaxInt {
		return math.MaxInt
	}
	return int(t)
}
