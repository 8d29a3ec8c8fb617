package flate

import "github.com/garymm/starflate/huffman"

// readDynamicTables parses a dynamic block's header (HLIT, HDIST, HCLEN),
// the code-length alphabet, and the two symbol-to-bitsize schedules it
// encodes, per RFC 1951 section 3.2.7. It fails with InvalidLitOrLen on
// any malformed schedule.
func readDynamicTables(br *huffman.BitReader) (litTable, distTable *huffman.Table[uint16]) {
	hlit, err := br.PopBits(5)
	if err != nil {
		fail(InvalidLitOrLen)
	}
	nLit := 257 + int(hlit)

	hdist, err := br.PopBits(5)
	if err != nil {
		fail(InvalidLitOrLen)
	}
	nDist := 1 + int(hdist)

	hclen, err := br.PopBits(4)
	if err != nil {
		fail(InvalidLitOrLen)
	}
	nCLen := 4 + int(hclen)

	var clenBitsizes [19]uint8
	for i := 0; i < nCLen; i++ {
		v, err := br.PopBits(3)
		if err != nil {
			fail(InvalidLitOrLen)
		}
		clenBitsizes[codeLengthOrder[i]] = uint8(v)
	}

	var clenSchedule []huffman.SymbolBitsize[uint16]
	for sym, bitsize := range clenBitsizes {
		if bitsize == 0 {
			continue
		}
		clenSchedule = append(clenSchedule, huffman.SymbolBitsize[uint16]{
			Range:   huffman.SymbolRange[uint16]{Low: uint16(sym), High: uint16(sym)},
			Bitsize: bitsize,
		})
	}
	clenTable, err := huffman.NewTableFromSymbolBitsizes(clenSchedule)
	if err != nil {
		fail(InvalidLitOrLen)
	}

	bitsizes := make([]uint8, 0, nLit+nDist)
	for len(bitsizes) < nLit+nDist {
		sym, size, ok := huffman.DecodeOne(clenTable, *br)
		if !ok {
			fail(InvalidLitOrLen)
		}
		if err := br.Consume(int(size)); err != nil {
			fail(InvalidLitOrLen)
		}

		switch {
		case sym <= 15:
			bitsizes = append(bitsizes, uint8(sym))
		case sym == 16:
			if len(bitsizes) == 0 {
				fail(InvalidLitOrLen)
			}
			extra, err := br.PopBits(2)
			if err != nil {
				fail(InvalidLitOrLen)
			}
			prev := bitsizes[len(bitsizes)-1]
			for n := 3 + int(extra); n > 0; n-- {
				bitsizes = append(bitsizes, prev)
			}
		case sym == 17:
			extra, err := br.PopBits(3)
			if err != nil {
				fail(InvalidLitOrLen)
			}
			for n := 3 + int(extra); n > 0; n-- {
				bitsizes = append(bitsizes, 0)
			}
		case sym == 18:
			extra, err := br.PopBits(7)
			if err != nil {
				fail(InvalidLitOrLen)
			}
			for n := 11 + int(extra); n > 0; n-- {
				bitsizes = append(bitsizes, 0)
			}
		default:
			fail(InvalidLitOrLen)
		}

		if len(bitsizes) > nLit+nDist {
			fail(InvalidLitOrLen)
		}
	}

	litTable = buildSymbolTable(bitsizes[:nLit])
	distTable = buildSymbolTable(bitsizes[nLit : nLit+nDist])
	return litTable, distTable
}

// buildSymbolTable converts a flat per-symbol bitsize slice (the form
// readDynamicTables decodes) into the (symbol_range, bitsize) schedule
// huffman.NewTableFromSymbolBitsizes expects, collapsing runs of equal
// bitsize into a single range, and builds the table. It fails with
// InvalidLitOrLen if the schedule is not a valid prefix-code assignment.
func buildSymbolTable(bitsizes []uint8) *huffman.Table[uint16] {
	var schedule []huffman.SymbolBitsize[uint16]
	for i := 0; i < len(bitsizes); {
		j := i + 1
		for j < len(bitsizes) && bitsizes[j] == bitsizes[i] {
			j++
		}
		if bitsizes[i] != 0 {
			schedule = append(schedule, huffman.SymbolBitsize[uint16]{
				Range:   huffman.SymbolRange[uint16]{Low: uint16(i), High: uint16(j - 1)},
				Bitsize: bitsizes[i],
			})
		}
		i = j
	}
	tbl, err := huffman.NewTableFromSymbolBitsizes(schedule)
	if err != nil {
		fail(InvalidLitOrLen)
	}
	return tbl
}
