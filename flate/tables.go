package flate

import "github.com/garymm/starflate/huffman"

// codeLengthOrder is the fixed permutation in which a dynamic block lists
// the code-length alphabet's bitsizes (RFC 1951 section 3.2.7).
var codeLengthOrder = [19]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthInfo describes, for each length code 257..284, how many extra
// bits follow it and what base length those extra bits add to. Code 285
// has no entry; its length is always 258.
type lengthInfo struct {
	extraBits uint8
	base      uint16
}

var lengthTable = [28]lengthInfo{
	{0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 9}, {0, 10},
	{1, 11}, {1, 13}, {1, 15}, {1, 17},
	{2, 19}, {2, 23}, {2, 27}, {2, 31},
	{3, 35}, {3, 43}, {3, 51}, {3, 59},
	{4, 67}, {4, 83}, {4, 99}, {4, 115},
	{5, 131}, {5, 163}, {5, 195}, {5, 227},
}

// distanceInfo describes, for each distance code 0..29, how many extra
// bits follow it and what base distance those extra bits add to.
type distanceInfo struct {
	extraBits uint8
	base      uint16
}

var distanceTable = [30]distanceInfo{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 5}, {1, 7},
	{2, 9}, {2, 13},
	{3, 17}, {3, 25},
	{4, 33}, {4, 49},
	{5, 65}, {5, 97},
	{6, 129}, {6, 193},
	{7, 257}, {7, 385},
	{8, 513}, {8, 769},
	{9, 1025}, {9, 1537},
	{10, 2049}, {10, 3073},
	{11, 4097}, {11, 6145},
	{12, 8193}, {12, 12289},
	{13, 16385}, {13, 24577},
}

var fixedLitTable, fixedDistTable *huffman.Table[uint16]

func init() {
	var err error
	fixedLitTable, err = huffman.NewTableFromSymbolBitsizes([]huffman.SymbolBitsize[uint16]{
		{Range: huffman.SymbolRange[uint16]{Low: 0, High: 143}, Bitsize: 8},
		{Range: huffman.SymbolRange[uint16]{Low: 144, High: 255}, Bitsize: 9},
		{Range: huffman.SymbolRange[uint16]{Low: 256, High: 279}, Bitsize: 7},
		{Range: huffman.SymbolRange[uint16]{Low: 280, High: 287}, Bitsize: 8},
	})
	if err != nil {
		panic(err)
	}

	fixedDistTable, err = huffman.NewTableFromSymbolBitsizes([]huffman.SymbolBitsize[uint16]{
		{Range: huffman.SymbolRange[uint16]{Low: 0, High: 31}, Bitsize: 5},
	})
	if err != nil {
		panic(err)
	}
}
