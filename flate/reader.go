// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package flate

import "github.com/garymm/starflate/huffman"

// Decompress decodes a full DEFLATE stream (RFC 1951) from src into dst,
// looping over blocks until one is marked final.
//
// It returns the number of bytes written to dst and Success if dst now
// holds the decoded plaintext. Any other Status means dst's contents up
// to the point of failure are unspecified and must be discarded;
// Decompress never panics on malformed input — it translates every
// failure into a Status value.
//
// Decompress does not allocate or resize dst; the caller must size it to
// hold the decompressed output, or else Decompress returns DstTooSmall.
func Decompress(src, dst []byte) (n int, status Status) {
	defer errRecover(&status)

	br := huffman.NewBitReader(src, len(src)*8)
	for {
		hdr := readBlockHeader(&br)

		switch hdr.typ {
		case blockStored:
			n = decodeStoredBlock(&br, dst, n)
		case blockFixedHuffman:
			n = decodeHuffmanBlock(&br, dst, n, fixedLitTable, fixedDistTable)
		case blockDynamicHuffman:
			litTable, distTable := readDynamicTables(&br)
			n = decodeHuffmanBlock(&br, dst, n, litTable, distTable)
		}

		if hdr.final {
			break
		}
	}
	return n, Success
}
