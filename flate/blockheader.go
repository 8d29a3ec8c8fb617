package flate

import "github.com/garymm/starflate/huffman"

type blockType uint8

const (
	blockStored blockType = iota
	blockFixedHuffman
	blockDynamicHuffman
)

type blockHeader struct {
	final bool
	typ   blockType
}

// readBlockHeader consumes the 3-bit header (BFINAL, BTYPE) that begins
// every DEFLATE block. It fails with InvalidBlockHeader if fewer than 3
// bits remain or BTYPE is the reserved value 3.
func readBlockHeader(br *huffman.BitReader) blockHeader {
	v, err := br.PopBits(3)
	if err != nil {
		fail(InvalidBlockHeader)
	}
	final := v&1 != 0
	switch typ := (v >> 1) & 0b11; typ {
	case 0:
		return blockHeader{final: final, typ: blockStored}
	case 1:
		return blockHeader{final: final, typ: blockFixedHuffman}
	case 2:
		return blockHeader{final: final, typ: blockDynamicHuffman}
	default:
		fail(InvalidBlockHeader)
		panic("unreachable")
	}
}
