package flate

import (
	"bytes"
	"testing"

	stdflate "compress/flate"

	klauspost "github.com/klauspost/compress/flate"

	"github.com/garymm/starflate/internal/testutil"
)

const (
	digits  = "../testdata/digits.txt"
	repeats = "../testdata/repeats.bin"
	twain   = "../testdata/twain.txt"
	zeros   = "../testdata/zeros.bin"
)

func compressStd(t *testing.T, input []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	wr, err := stdflate.NewWriter(&buf, stdflate.DefaultCompression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wr.Write(input); err != nil {
		t.Fatal(err)
	}
	if err := wr.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func compressKlauspost(t *testing.T, input []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	wr, err := klauspost.NewWriter(&buf, klauspost.DefaultCompression)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wr.Write(input); err != nil {
		t.Fatal(err)
	}
	if err := wr.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestRoundTrip cross-validates Decompress against two independent
// DEFLATE encoders (the standard library's and klauspost's), mirroring the compress/flate-backed
// round-trip vector this package's decoder descends from.
func TestRoundTrip(t *testing.T) {
	vectors := []struct{ input []byte }{
		{nil},
		{[]byte("a")},
		{testutil.MustLoadFile(digits)},
		{testutil.MustLoadFile(repeats)},
		{testutil.MustLoadFile(twain)},
		{testutil.MustLoadFile(zeros)},
	}

	for i, v := range vectors {
		for _, enc := range []struct {
			name    string
			compress func(*testing.T, []byte) []byte
		}{
			{"std", compressStd},
			{"klauspost", compressKlauspost},
		} {
			compressed := enc.compress(t, v.input)
			dst := make([]byte, len(v.input))
			n, status := Decompress(compressed, dst)
			if status != Success {
				t.Errorf("test %d (%s): Decompress status = %v, want Success", i, enc.name, status)
				continue
			}
			if n != len(v.input) {
				t.Errorf("test %d (%s): Decompress wrote %d bytes, want %d", i, enc.name, n, len(v.input))
				continue
			}
			if !bytes.Equal(dst, v.input) {
				t.Errorf("test %d (%s): output mismatch", i, enc.name)
			}
		}
	}
}

// TestStoredBlockTwoChunks is the spec's canonical stored-block scenario:
// two consecutive stored blocks spelling "rosebud".
func TestStoredBlockTwoChunks(t *testing.T) {
	src := testutil.MustDecodeHex(
		"00" + "0400" + "fbff" + "726f7365" + // BFINAL=0,BTYPE=00; LEN=4,NLEN=~4; "rose"
			"01" + "0300" + "fcff" + "627564", // BFINAL=1,BTYPE=00; LEN=3,NLEN=~3; "bud"
	)
	dst := make([]byte, 7)
	n, status := Decompress(src, dst)
	if status != Success {
		t.Fatalf("status = %v, want Success", status)
	}
	if got, want := string(dst[:n]), "rosebud"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// TestStoredBlockNLenMismatch corrupts the first block's NLEN field and
// expects NoCompressionLenMismatch.
func TestStoredBlockNLenMismatch(t *testing.T) {
	src := testutil.MustDecodeHex(
		"00" + "0400" + "fcff" + "726f7365" +
			"01" + "0300" + "fcff" + "627564",
	)
	dst := make([]byte, 7)
	_, status := Decompress(src, dst)
	if status != NoCompressionLenMismatch {
		t.Fatalf("status = %v, want NoCompressionLenMismatch", status)
	}
}

// TestOverlapCopy exercises copyFromBefore's round-doubling path: two
// literals followed by a (L=5, D=2) back-reference must produce
// "ABABABA".
func TestOverlapCopy(t *testing.T) {
	// Fixed-Huffman block, BFINAL=1,BTYPE=01, containing literals 'A','B',
	// then length/distance pair for L=5 (code 259, extra 0), D=2 (code 1,
	// extra 0), then end-of-block.
	compressed := testutil.MustDecodeBitGen(`<<<
		< 1 01              # BFINAL=1, BTYPE=01
		> 01110001 01110010 # literals 'A', 'B'
		> 0000011           # length code 259
		> 00001             # distance code 1
		> 0000000           # end-of-block
	`)
	dst := make([]byte, 7)
	n, status := Decompress(compressed, dst)
	if status != Success {
		t.Fatalf("status = %v, want Success", status)
	}
	if got, want := string(dst[:n]), "ABABABA"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

// TestDstTooSmall checks that a destination buffer one byte too small
// yields DstTooSmall. The contents of dst are not checked, since
// Decompress leaves them unspecified on failure.
func TestDstTooSmall(t *testing.T) {
	want := []byte("rosebud")
	compressed := compressStd(t, want)
	dst := make([]byte, len(want)-1)
	_, status := Decompress(compressed, dst)
	if status != DstTooSmall {
		t.Fatalf("status = %v, want DstTooSmall", status)
	}
}

// TestInvalidBlockHeader checks that a reserved BTYPE value of 3 is
// rejected.
func TestInvalidBlockHeader(t *testing.T) {
	// BFINAL=1, BTYPE=11 (reserved), packed LSB-first into one byte: 111.
	src := []byte{0b111}
	dst := make([]byte, 1)
	_, status := Decompress(src, dst)
	if status != InvalidBlockHeader {
		t.Fatalf("status = %v, want InvalidBlockHeader", status)
	}
}

// TestTruncatedStream checks that a stream that ends before a block
// header can be fully read fails rather than panicking past this
// package's boundary.
func TestTruncatedStream(t *testing.T) {
	dst := make([]byte, 10)
	_, status := Decompress(nil, dst)
	if status != InvalidBlockHeader {
		t.Fatalf("status = %v, want InvalidBlockHeader", status)
	}
}
