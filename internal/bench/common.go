// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the decode performance of this module's flate
// package against other DEFLATE implementations on the same inputs.
package bench

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io/ioutil"
	"runtime"
	"testing"

	"github.com/dsnet/golib/strconv"
	klauspost "github.com/klauspost/compress/flate"

	starflate "github.com/garymm/starflate/flate"
)

// Decoder decompresses a full DEFLATE stream compressed bytes into a
// fresh byte slice, returning the decompressed output.
type Decoder func(compressed []byte) ([]byte, error)

// Decoders maps a short implementation name to the Decoder it exercises.
// This module's own flate.Decompress is always present under "starflate".
var Decoders = map[string]Decoder{
	"starflate": func(compressed []byte) ([]byte, error) {
		dst := make([]byte, estimateDecompressedSize(compressed))
		n, status := starflate.Decompress(compressed, dst)
		if status != starflate.Success {
			return nil, status
		}
		return dst[:n], nil
	},
	"stdlib": func(compressed []byte) ([]byte, error) {
		rd := flate.NewReader(bytes.NewReader(compressed))
		defer rd.Close()
		return ioutil.ReadAll(rd)
	},
	"klauspost": func(compressed []byte) ([]byte, error) {
		rd := klauspost.NewReader(bytes.NewReader(compressed))
		defer rd.Close()
		return ioutil.ReadAll(rd)
	},
}

// estimateDecompressedSize returns an output buffer size large enough for
// any DEFLATE stream: a back-reference emits at most 258 bytes and takes
// at least 2 bits of input, so no stream expands by more than 1032x.
func estimateDecompressedSize(compressed []byte) int {
	return len(compressed)*1032 + 1024
}

// Result is one benchmark measurement: decode rate in MB/s, and its
// ratio relative to the first (reference) decoder in a comparison.
type Result struct {
	RateMBs float64
	Delta   float64
}

// BenchmarkDecoders runs every registered Decoder against input
// (compressed with compress/flate) and reports a Result per decoder
// name, in the order given.
func BenchmarkDecoders(input []byte, names []string) ([]Result, error) {
	var buf bytes.Buffer
	wr, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := wr.Write(input); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	compressed := buf.Bytes()

	results := make([]Result, len(names))
	for i, name := range names {
		dec := Decoders[name]
		if dec == nil {
			return nil, fmt.Errorf("bench: unregistered decoder %q", name)
		}

		runtime.GC()
		br := testing.Benchmark(func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				if _, err := dec(compressed); err != nil {
					b.Fatalf("decode error: %v", err)
				}
			}
			b.SetBytes(int64(len(input)))
		})

		us := float64(br.T.Nanoseconds()) / 1e3 / float64(br.N)
		results[i].RateMBs = float64(br.Bytes) / us
		if i > 0 && results[0].RateMBs > 0 {
			results[i].Delta = results[i].RateMBs / results[0].RateMBs
		}
	}
	return results, nil
}

// sizeLabel renders n bytes in human-readable binary-prefix form, e.g.
// "1.5Ki", matching the style of golib/strconv's Base1024 formatting.
func sizeLabel(n int) string {
	return strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
}
