package flate

import "github.com/garymm/starflate/huffman"

// decodeStoredBlock implements BTYPE 00: consume to a byte boundary, read
// LEN/NLEN, verify them, and copy LEN raw bytes into dst starting at n.
// It returns the new write cursor.
func decodeStoredBlock(br *huffman.BitReader, dst []byte, n int) int {
	br.ConsumeToByteBoundary()

	length, err := br.PopU16()
	if err != nil {
		fail(SrcTooSmall)
	}
	nlength, err := br.PopU16()
	if err != nil {
		fail(SrcTooSmall)
	}
	if length != ^nlength {
		fail(NoCompressionLenMismatch)
	}

	if br.Size() < int(length)*8 {
		fail(SrcTooSmall)
	}
	if len(dst)-n < int(length) {
		fail(DstTooSmall)
	}

	data := br.ByteData()
	copy(dst[n:], data[:length])
	if err := br.Consume(int(length) * 8); err != nil {
		fail(SrcTooSmall)
	}
	return n + int(length)
}

// decodeHuffmanBlock runs the common literal/length/distance loop shared
// by fixed- and dynamic-Huffman blocks (BTYPE 01 and 10) until an
// end-of-block symbol is decoded. It returns the new write cursor.
func decodeHuffmanBlock(br *huffman.BitReader, dst []byte, n int, litTable, distTable *huffman.Table[uint16]) int {
	for {
		sym, size, ok := huffman.DecodeOne(litTable, *br)
		if !ok {
			fail(InvalidLitOrLen)
		}
		if err := br.Consume(int(size)); err != nil {
			fail(InvalidLitOrLen)
		}

		switch {
		case sym < endOfBlock:
			if n >= len(dst) {
				fail(DstTooSmall)
			}
			dst[n] = byte(sym)
			n++

		case sym == endOfBlock:
			return n

		case sym <= 285:
			length := decodeLength(br, sym)

			dsym, dsize, ok := huffman.DecodeOne(distTable, *br)
			if !ok || dsym >= 30 {
				fail(InvalidDistance)
			}
			if err := br.Consume(int(dsize)); err != nil {
				fail(InvalidDistance)
			}
			dist := decodeDistance(br, dsym)

			if int(dist) > n {
				fail(InvalidDistance)
			}
			if n+int(length) > len(dst) {
				fail(DstTooSmall)
			}
			n = copyFromBefore(dst, n, int(dist), int(length))

		default:
			fail(InvalidLitOrLen)
		}
	}
}

// decodeLength computes a match length from a literal/length symbol in
// [257, 285] already decoded from br, consuming any extra bits the code
// requires.
func decodeLength(br *huffman.BitReader, sym uint16) uint16 {
	if sym == 285 {
		return 258
	}
	info := lengthTable[sym-257]
	extra, err := br.PopBits(info.extraBits)
	if err != nil {
		fail(InvalidLitOrLen)
	}
	return info.base + extra
}

// decodeDistance computes a back-reference distance from a distance
// symbol in [0, 29] already decoded from br, consuming any extra bits
// the code requires.
func decodeDistance(br *huffman.BitReader, sym uint16) uint16 {
	info := distanceTable[sym]
	extra, err := br.PopBits(info.extraBits)
	if err != nil {
		fail(InvalidDistance)
	}
	return info.base + extra
}

// copyFromBefore copies length bytes from dst[n-dist:] to dst[n:], where
// the source range may extend into or past the destination when dist <
// length. It returns the new write cursor n+length.
//
// When dist >= length the ranges do not overlap destructively and a
// single copy suffices. When dist < length the output repeats the last
// dist bytes cyclically; each round copies min(remaining, dist) bytes,
// and dist doubles every round since the bytes just written are now
// available as source for the next round.
func copyFromBefore(dst []byte, n, dist, length int) int {
	remaining := length
	for remaining > 0 {
		chunk := dist
		if chunk > remaining {
			chunk = remaining
		}
		copy(dst[n:n+chunk], dst[n-dist:n-dist+chunk])
		n += chunk
		remaining -= chunk
		dist += chunk
	}
	return n
}
