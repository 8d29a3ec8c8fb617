package huffman

import (
	"sort"

	"github.com/garymm/starflate/internal"
)

// Table is a canonical Huffman code table over an alphabet of symbols of
// type S. Its public view, reached via Len/At, exposes only the Encoding
// projection of its storage: every symbol appears exactly once, entries
// of equal bitsize have lexicographically consecutive values in the same
// order as their symbols, and shorter codes lexicographically precede
// longer ones. Iteration order (At(0), At(1), ...) is this canonical
// order.
type Table[S Symbol] struct {
	entries []tableNode[S]
}

// Len returns the number of symbols in t.
func (t *Table[S]) Len() int { return len(t.entries) }

// At returns the i'th encoding in canonical order.
func (t *Table[S]) At(i int) Encoding[S] { return t.entries[i].Encoding }

// FrequencyEntry is one (symbol, count) pair fed to
// NewTableFromFrequencies.
type FrequencyEntry[S Symbol] struct {
	Symbol S
	Count  uint64
}

// NewTableFromFrequencies builds a canonical Table from a set of symbol
// frequencies.
//
// If eot is non-nil, an extra end-of-transmission symbol is added with a
// frequency of 1; this is a courtesy for callers encoding an unframed
// stream and is not part of DEFLATE itself.
//
// Every symbol in frequencies must be unique and every count must be
// positive, or NewTableFromFrequencies fails with ErrDuplicateSymbol or
// ErrPrecondition.
func NewTableFromFrequencies[S Symbol](frequencies []FrequencyEntry[S], eot *S) (*Table[S], error) {
	entries := make([]tableNode[S], 0, len(frequencies)+1)
	seen := make(map[S]bool, len(frequencies)+1)

	if eot != nil {
		entries = append(entries, newLeaf(*eot, 1))
		seen[*eot] = true
	}
	for _, f := range frequencies {
		if f.Count == 0 {
			return nil, ErrPrecondition
		}
		if seen[f.Symbol] {
			return nil, ErrDuplicateSymbol
		}
		seen[f.Symbol] = true
		entries = append(entries, newLeaf(f.Symbol, f.Count))
	}

	return buildFromLeaves(entries)
}

// NewTableFromData builds a canonical Table by counting occurrences of
// each symbol in data, then constructing as NewTableFromFrequencies would.
//
// A table built from frequencies and a table built from the expanded
// symbol sequence implied by those frequencies are guaranteed to produce
// identical encodings (construction agreement).
func NewTableFromData[S Symbol](data []S, eot *S) (*Table[S], error) {
	counts := make(map[S]uint64)
	var order []S
	for _, s := range data {
		if _, ok := counts[s]; !ok {
			order = append(order, s)
		}
		counts[s]++
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	freqs := make([]FrequencyEntry[S], len(order))
	for i, s := range order {
		freqs[i] = FrequencyEntry[S]{Symbol: s, Count: counts[s]}
	}
	return NewTableFromFrequencies(freqs, eot)
}

// buildFromLeaves runs the intrusive in-place Huffman construction over a
// freshly populated leaf set, then canonicalizes the result.
func buildFromLeaves[S Symbol](entries []tableNode[S]) (*Table[S], error) {
	switch len(entries) {
	case 0:
		return &Table[S]{}, nil
	case 1:
		entries[0].Code = Code{bitsize: 1, value: 0}
		setSkipFields(entries)
		return &Table[S]{entries: entries}, nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].frequency != entries[j].frequency {
			return entries[i].frequency < entries[j].frequency
		}
		return entries[i].Symbol < entries[j].Symbol
	})

	buildHuffmanTree(entries)

	if err := canonicalize(entries); err != nil {
		return nil, err
	}
	return &Table[S]{entries: entries}, nil
}

// buildHuffmanTree implements the intrusive in-place Huffman construction:
// entries is already sorted ascending by (frequency, symbol). Repeatedly
// join the first two subtrees and rotate the merged node rightward to
// where its frequency keeps the array sorted, until one subtree spans the
// whole array.
func buildHuffmanTree[S Symbol](entries []tableNode[S]) {
	n := len(entries)
	for entries[0].subtreeSize != n {
		j := entries[0].subtreeSize
		jSize := entries[j].subtreeSize

		join(entries, 0, j)

		lower := j + jSize
		upper := lower
		for upper < n && entries[upper].frequency <= entries[0].frequency {
			upper += entries[upper].subtreeSize
		}

		rotateLeft(entries[:upper], lower)
	}
}

// rotateLeft rotates s left by k positions: s[:k] moves to the end.
func rotateLeft[T any](s []T, k int) {
	if k == 0 || k == len(s) {
		return
	}
	tmp := make([]T, k)
	copy(tmp, s[:k])
	copy(s, s[k:])
	copy(s[len(s)-k:], tmp)
}

// CodeSymbol is one (code, symbol) pair fed to NewTableFromContents.
type CodeSymbol[S Symbol] struct {
	Code   Code
	Symbol S
}

// NewTableFromContents builds a Table directly from a pre-assigned
// canonical code listing, skipping Huffman construction entirely.
//
// contents must be listed in ascending (bitsize, symbol) order (DEFLATE
// canonical order) with unique symbols and unique codes, or
// NewTableFromContents fails with ErrNotCanonical, ErrDuplicateSymbol, or
// ErrDuplicateCode.
func NewTableFromContents[S Symbol](contents []CodeSymbol[S]) (*Table[S], error) {
	entries := make([]tableNode[S], len(contents))
	seenSym := make(map[S]bool, len(contents))
	seenCode := make(map[Code]bool, len(contents))

	for i, c := range contents {
		if seenSym[c.Symbol] {
			return nil, ErrDuplicateSymbol
		}
		if seenCode[c.Code] {
			return nil, ErrDuplicateCode
		}
		seenSym[c.Symbol] = true
		seenCode[c.Code] = true

		entries[i] = tableNode[S]{Encoding: Encoding[S]{Code: c.Code, Symbol: c.Symbol}}

		if i > 0 {
			prev := contents[i-1]
			if !lessCanonical(prev, c) {
				return nil, ErrNotCanonical
			}
		}
	}

	setSkipFields(entries)
	return &Table[S]{entries: entries}, nil
}

func lessCanonical[S Symbol](a, b CodeSymbol[S]) bool {
	if a.Code.Bitsize() != b.Code.Bitsize() {
		return a.Code.Bitsize() < b.Code.Bitsize()
	}
	return a.Symbol < b.Symbol
}

// SymbolRange is an inclusive range of integer symbols [Low, High].
type SymbolRange[S Integer] struct {
	Low, High S
}

// SymbolBitsize pairs a symbol range with the bitsize every symbol in that
// range should receive. A Bitsize of 0 means "absent from the alphabet".
type SymbolBitsize[S Integer] struct {
	Range   SymbolRange[S]
	Bitsize uint8
}

// NewTableFromSymbolBitsizes builds a canonical Table from a
// symbol-to-bitsize schedule, such as the one decoded from a DEFLATE
// dynamic block header. Entries with Bitsize 0 are omitted from the
// resulting alphabet.
//
// NewTableFromSymbolBitsizes fails with ErrOversubscribed if the schedule
// describes more codes of some bitsize than the codespace allows.
func NewTableFromSymbolBitsizes[S Integer](schedule []SymbolBitsize[S]) (*Table[S], error) {
	var entries []tableNode[S]
	for _, sb := range schedule {
		if sb.Bitsize == 0 {
			continue
		}
		for sym := sb.Range.Low; ; sym++ {
			entries = append(entries, tableNode[S]{
				Encoding: Encoding[S]{Symbol: sym, Code: Code{bitsize: sb.Bitsize}},
			})
			if sym == sb.Range.High {
				break
			}
		}
	}

	if err := canonicalize(entries); err != nil {
		return nil, err
	}
	return &Table[S]{entries: entries}, nil
}

// canonicalize sorts entries by (bitsize, symbol) ascending, assigns
// canonical values per RFC 1951 section 3.2.2, and recomputes skip fields.
// Every entry must already carry a correct bitsize.
func canonicalize[S Symbol](entries []tableNode[S]) error {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bitsize() != entries[j].Bitsize() {
			return entries[i].Bitsize() < entries[j].Bitsize()
		}
		return entries[i].Symbol < entries[j].Symbol
	})

	var nextBitsize uint8
	var nextValue uint32

	for i := range entries {
		e := &entries[i]
		if i > 0 {
			nextValue++
		}
		if e.Bitsize() != nextBitsize {
			nextValue <<= e.Bitsize() - nextBitsize
			nextBitsize = e.Bitsize()
		}
		if nextValue >= uint32(1)<<nextBitsize {
			return ErrOversubscribed
		}
		e.Code = Code{bitsize: nextBitsize, value: uint16(nextValue)}
	}

	setSkipFields(entries)

	if internal.Debug {
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Bitsize() > entries[i].Bitsize() {
				panic("huffman: canonicalize produced unsorted bitsizes")
			}
		}
	}
	return nil
}

// Find searches, starting at index pos, for an entry with code c.
//
// If found, it returns the entry's index and true. If not found, it
// returns the earliest index whose entry has a larger bitsize than c (or
// t.Len() if no such entry exists) and false — the caller should resume
// searching there once it has read one more bit into c.
func (t *Table[S]) Find(c Code, pos int) (int, bool) {
	n := len(t.entries)
	for pos < n {
		e := &t.entries[pos]
		if e.Bitsize() > c.Bitsize() {
			break
		}
		if e.Bitsize() == c.Bitsize() {
			dist := int(c.Value()) - int(e.Value())
			if dist >= 0 && dist < e.skip {
				return pos + dist, true
			}
		}
		pos += e.skip
	}
	return pos, false
}
