package shared

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFn is a function that returns the hash of 't'. The container that
// uses it reduces the value to a slot index, so the function itself does
// not need to know the capacity.
type HashFn[T any] func(t T) uintptr

// GetHasher returns a hasher for the golang default types.
func GetHasher[Key any]() HashFn[Key] {
	var key Key
	kind := reflect.ValueOf(&key).Elem().Type().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 2:
			return *(*func(Key) uintptr)(unsafe.Pointer(&hashWord))
		case 4:
			return *(*func(Key) uintptr)(unsafe.Pointer(&hashDword))
		case 8:
			return *(*func(Key) uintptr)(unsafe.Pointer(&hashQword))

		default:
			panic("unsupported integer byte size")
		}

	case reflect.Int8, reflect.Uint8:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*func(Key) uintptr)(unsafe.Pointer(&hashString))

	default:
		panic(fmt.Sprintf("unsupported key type %T of kind %v", key, kind))
	}
}

// HashString hashes s with xxh3. It is the default string hasher,
// because xxh3 spreads the non-uniform prefixes of real-world strings
// well over the full 64 bit range.
func HashString(s string) uintptr {
	return uintptr(xxh3.HashString(s))
}

// HashBytes hashes b with xxHash64. Use it to build a HashFn for types
// that serialize themselves to a byte slice.
func HashBytes(b []byte) uintptr {
	return uintptr(xxhash.Sum64(b))
}

// SeededStringHasher returns a murmur3 based string hasher with the
// given seed. Two sets built with different seeds place the same
// elements differently, which is handy to sidestep degenerate
// distributions of a known input set.
func SeededStringHasher(seed uint32) HashFn[string] {
	return func(s string) uintptr {
		return uintptr(murmur3.Sum64WithSeed([]byte(s), seed))
	}
}

var hashByte = func(in uint8) uintptr {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uintptr(key)
}

var hashWord = func(in uint16) uintptr {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uintptr(key)
}

var hashDword = func(key uint32) uintptr {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uintptr(key)
}

var hashFloat32 = func(in float32) uintptr {
	p := unsafe.Pointer(&in)
	key := *(*uint32)(p)

	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uintptr(key)
}

var hashFloat64 = func(in float64) uintptr {
	p := unsafe.Pointer(&in)
	key := *(*uint64)(p)

	key ^= (key >> 33)
	key *= 0xff51afd7ed558ccd
	key ^= (key >> 33)
	key *= 0xc4ceb9fe1a85ec53
	key ^= (key >> 33)
	return uintptr(key)
}

// hashQword implements MurmurHash3's 64-bit Finalizer
var hashQword = func(key uint64) uintptr {
	key ^= (key >> 33)
	key *= 0xff51afd7ed558ccd
	key ^= (key >> 33)
	key *= 0xc4ceb9fe1a85ec53
	key ^= (key >> 33)
	return uintptr(key)
}

var hashString = func(s string) uintptr {
	return uintptr(xxh3.HashString(s))
}
