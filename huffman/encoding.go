package huffman

// Encoding pairs a Code with the symbol it represents.
type Encoding[S Symbol] struct {
	Code
	Symbol S
}

// Less orders encodings by (symbol, bitsize, value), the total order used
// when walking or comparing the public view of a Table.
func (e Encoding[S]) Less(o Encoding[S]) bool {
	if e.Symbol != o.Symbol {
		return e.Symbol < o.Symbol
	}
	if e.Bitsize() != o.Bitsize() {
		return e.Bitsize() < o.Bitsize()
	}
	return e.Value() < o.Value()
}
