package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/chainmap/internal/utils"
	"golang.org/x/exp/constraints"
	"hash/crc32"
	"hash/maphash"
)

// fold64 - Folds a 64-bit hash into 32 bits by xor-ing the upper half into the lower half
func fold64(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}

// StringHasher - Hashes string keys using xxhash
type StringHasher struct{}

// String - Returns a Hasher for string keys
func String() StringHasher {
	return StringHasher{}
}

// Hash - Returns the folded xxhash of key
func (StringHasher) Hash(key string) uint32 {
	return fold64(xxhash.Sum64String(key))
}

// Equal - Returns true if a and b are the same string
func (StringHasher) Equal(a, b string) bool {
	return a == b
}

// BytesHasher - Hashes byte slice keys using xxhash.
// A nil slice is the map's reserved nil key and is a different key than an empty slice.
type BytesHasher struct{}

// Bytes - Returns a Hasher for byte slice keys
func Bytes() BytesHasher {
	return BytesHasher{}
}

// Hash - Returns the folded xxhash of key
func (BytesHasher) Hash(key []byte) uint32 {
	return fold64(xxhash.Sum64(key))
}

// Equal - Returns true if a and b have the same length and contents
func (BytesHasher) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// CRC32Hasher - Hashes byte slice keys using crc32.ChecksumIEEE
type CRC32Hasher struct{}

// CRC32Bytes - Returns a Hasher for byte slice keys based on the IEEE crc32 checksum
func CRC32Bytes() CRC32Hasher {
	return CRC32Hasher{}
}

// Hash - Returns crc32.ChecksumIEEE of key
func (CRC32Hasher) Hash(key []byte) uint32 {
	return crc32.ChecksumIEEE(key)
}

// Equal - Returns true if a and b have the same length and contents
func (CRC32Hasher) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// IntegerHasher - Hashes integer keys by folding their 64-bit representation, so small integers hash to themselves
type IntegerHasher[K constraints.Integer] struct{}

// Integer - Returns a Hasher for any integer key type
func Integer[K constraints.Integer]() IntegerHasher[K] {
	return IntegerHasher[K]{}
}

// Hash - Returns the lower 32 bits xor the upper 32 bits of key
func (IntegerHasher[K]) Hash(key K) uint32 {
	return fold64(uint64(key))
}

// Equal - Returns true if a == b
func (IntegerHasher[K]) Equal(a, b K) bool {
	return a == b
}

// ComparableHasher - Hashes any comparable key using hash/maphash with a per-hasher random seed.
// Hash codes are therefore not stable across processes.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// Comparable - Returns a Hasher for any comparable key type
func Comparable[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash - Returns the folded maphash of key
func (C ComparableHasher[K]) Hash(key K) uint32 {
	return fold64(maphash.Comparable(C.seed, key))
}

// Equal - Returns true if a == b
func (C ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

// FuncHasher - Adapts a pair of plain functions to the Hasher interface
type FuncHasher[K any] struct {
	hash  func(K) uint32
	equal func(a, b K) bool
}

// Funcs - Returns a Hasher built from a hash function and an equality predicate
func Funcs[K any](hash func(K) uint32, equal func(a, b K) bool) FuncHasher[K] {
	return FuncHasher[K]{hash: hash, equal: equal}
}

// Hash - Calls the wrapped hash function
func (F FuncHasher[K]) Hash(key K) uint32 {
	return F.hash(key)
}

// Equal - Calls the wrapped equality predicate
func (F FuncHasher[K]) Equal(a, b K) bool {
	return F.equal(a, b)
}
