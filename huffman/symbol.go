package huffman

import "cmp"

// Symbol is the constraint satisfied by any type usable as a Table
// alphabet symbol: it must support equality and a total order.
type Symbol = cmp.Ordered

// Integer further restricts Symbol to the built-in integer kinds. The
// symbol-bitsize Table constructor needs to enumerate a symbol range
// (NewTableFromSymbolBitsizes), which only makes sense for integers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
