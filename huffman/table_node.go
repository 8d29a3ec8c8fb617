package huffman

// tableNode is a node of a Huffman tree under construction, or a finished
// entry of a canonical Table once construction has completed.
//
// During the build phase, frequency and subtreeSize are live: a leaf
// starts with subtreeSize 1, and joining two adjacent nodes folds the
// right node into the left one, growing its subtreeSize to span both.
// During the decode phase (after canonicalize has sorted the storage and
// assigned codes), skip holds the number of entries from itself to the
// end of its run of equal bitsize — at the start of a run that is the
// whole run, which Table.Find uses to skip all same-length codes in one
// step. The two phases never overlap; nothing
// reads frequency or subtreeSize after canonicalize runs.
type tableNode[S Symbol] struct {
	Encoding[S]

	frequency   uint64
	subtreeSize int

	skip int
}

func newLeaf[S Symbol](sym S, freq uint64) tableNode[S] {
	return tableNode[S]{
		Encoding:    Encoding[S]{Symbol: sym},
		frequency:   freq,
		subtreeSize: 1,
	}
}

// join folds entries[j] (and its whole subtree) into entries[i], which
// must be the node immediately preceding it. entries[i] becomes (or
// remains) an internal node whose subtree spans
// [i, j+entries[j].subtreeSize).
func join[S Symbol](entries []tableNode[S], i, j int) {
	jSize := entries[j].subtreeSize

	for k := i; k < j; k++ {
		entries[k].LeftPad(Zero)
	}
	for k := j; k < j+jSize; k++ {
		entries[k].LeftPad(One)
	}

	entries[i].frequency += entries[j].frequency
	entries[i].subtreeSize += jSize
}

// setSkipFields walks entries in reverse, setting each entry's skip to the
// number of entries from itself onward, up to the end of its run of equal
// bitsize.
// entries must already be sorted by (bitsize, symbol) ascending.
func setSkipFields[S Symbol](entries []tableNode[S]) {
	for i := len(entries) - 1; i >= 0; i-- {
		if i+1 < len(entries) && entries[i].Bitsize() == entries[i+1].Bitsize() {
			entries[i].skip = entries[i+1].skip + 1
		} else {
			entries[i].skip = 1
		}
	}
}
