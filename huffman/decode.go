package huffman

// DecodeOne decodes a single symbol starting at the front of br.
//
// br is taken by value: DecodeOne builds up a candidate Code by reading
// bits from its own copy, leaving the caller's cursor untouched until a
// symbol is actually found. On success it reports the symbol and the
// number of bits that encoded it, so the caller can advance its own
// BitReader by that many bits; on failure (the stream runs out before any
// code matches, or the candidate grows longer than every code in t) it
// reports ok=false.
func DecodeOne[S Symbol](t *Table[S], br BitReader) (sym S, size uint8, ok bool) {
	var code Code
	pos := 0

	for {
		b, err := br.ReadBit()
		if err != nil {
			return sym, 0, false
		}
		code.RightPad(b)

		i, found := t.Find(code, pos)
		if found {
			e := t.entries[i]
			return e.Symbol, e.Bitsize(), true
		}
		pos = i
		if pos >= t.Len() {
			return sym, 0, false
		}
	}
}

// Decode decodes symbols from br until it is exhausted or a symbol fails
// to decode, advancing br as it goes. It is a courtesy wrapper around repeated DecodeOne calls; the
// block-structured flate decoder does not use it, since it needs to
// interleave symbol decoding with length/distance handling.
func Decode[S Symbol](t *Table[S], br *BitReader) []S {
	var out []S
	for br.Size() > 0 {
		sym, size, ok := DecodeOne(t, *br)
		if !ok {
			break
		}
		_ = br.Consume(int(size))
		out = append(out, sym)
	}
	return out
}
