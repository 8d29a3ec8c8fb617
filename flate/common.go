// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package flate implements a DEFLATE (RFC 1951) decompressor: block
// header parsing, the dynamic Huffman table builder, and the
// literal/length/distance expansion loop, built on top of the huffman
// package's canonical code tables.
package flate

import "runtime"

const endOfBlock = 256

// Status is the outcome of a Decompress call. The zero value, Success,
// means the input was fully and validly decoded.
type Status uint8

const (
	Success Status = iota
	InvalidBlockHeader
	NoCompressionLenMismatch
	DstTooSmall
	SrcTooSmall
	InvalidLitOrLen
	InvalidDistance
)

var statusNames = [...]string{
	Success:                  "success",
	InvalidBlockHeader:       "invalid block header",
	NoCompressionLenMismatch: "stored block LEN/NLEN mismatch",
	DstTooSmall:              "destination buffer too small",
	SrcTooSmall:              "source buffer truncated",
	InvalidLitOrLen:          "invalid literal/length code",
	InvalidDistance:          "invalid distance",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown status"
}

// Error lets a Status be used anywhere the error interface is expected,
// for example when a caller wraps Decompress with github.com/pkg/errors.
func (s Status) Error() string { return "flate: " + s.String() }

// statusSignal is the panic payload used to unwind the decode call stack
// back to Decompress's single return point, in the style of flate.Error's
// errRecover in the package this one is descended from.
type statusSignal struct{ status Status }

func fail(s Status) { panic(statusSignal{s}) }

func errRecover(status *Status) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing; status already holds Success.
	case statusSignal:
		*status = ex.status
	case runtime.Error:
		panic(ex)
	default:
		panic(ex)
	}
}
