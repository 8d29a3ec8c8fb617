package main

import (
	"encoding/binary"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/garymm/starflate/flate"
)

const (
	gzipMagic0        = 0x1f
	gzipMagic1        = 0x8b
	gzipMethodDeflate = 8

	flagText    = 1 << 0
	flagHCRC    = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// gunzip strips a gzip envelope (RFC 1952) from raw and returns the
// decompressed payload: the magic bytes, compression method, flag byte
// and its optional fields (FEXTRA, FNAME, FCOMMENT, FHCRC), then the
// DEFLATE body, then a trailing CRC32 and ISIZE. ISIZE sizes the output
// buffer; the CRC32 is not verified.
func gunzip(raw []byte) ([]byte, error) {
	if len(raw) < 18 {
		return nil, errors.New("gzip: input too short to contain a header and trailer")
	}
	if raw[0] != gzipMagic0 || raw[1] != gzipMagic1 {
		return nil, errors.New("gzip: bad magic bytes")
	}
	if raw[2] != gzipMethodDeflate {
		return nil, errors.Errorf("gzip: unsupported compression method %d", raw[2])
	}
	flg := raw[3]
	// Bytes 4-7 MTIME, byte 8 XFL, byte 9 OS are not needed to decode the
	// body and are skipped.
	pos := 10

	if flg&flagExtra != 0 {
		if pos+2 > len(raw) {
			return nil, errors.New("gzip: truncated FEXTRA length")
		}
		xlen := int(binary.LittleEndian.Uint16(raw[pos:]))
		pos += 2 + xlen
	}
	if flg&flagName != 0 {
		end, err := skipCString(raw, pos)
		if err != nil {
			return nil, errors.Wrap(err, "gzip: FNAME")
		}
		pos = end
	}
	if flg&flagComment != 0 {
		end, err := skipCString(raw, pos)
		if err != nil {
			return nil, errors.Wrap(err, "gzip: FCOMMENT")
		}
		pos = end
	}
	if flg&flagHCRC != 0 {
		pos += 2
	}
	if pos > len(raw)-8 {
		return nil, errors.New("gzip: truncated header")
	}

	// Of the trailing CRC32 and ISIZE, only ISIZE is used, to size dst; the
	// CRC32 is not verified here (see cmd/gunzip's Non-goals).
	trailer := raw[len(raw)-8:]
	isize := binary.LittleEndian.Uint32(trailer[4:])
	log.WithField("isize", isize).Debug("skipping gzip CRC32 trailer check")

	body := raw[pos : len(raw)-8]
	dst := make([]byte, isize)
	n, status := flate.Decompress(body, dst)
	if status != flate.Success {
		return nil, errors.Wrap(status, "gzip: decompressing body")
	}
	return dst[:n], nil
}

func skipCString(b []byte, start int) (int, error) {
	for i := start; i < len(b); i++ {
		if b[i] == 0 {
			return i + 1, nil
		}
	}
	return 0, errors.New("unterminated string")
}
