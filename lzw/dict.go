package lzw

import (
	"io"

	"github.com/robertkibet/gocompress"
	"github.com/robertkibet/gocompress/bitio"
)

// encode runs the LZW compression loop. The compression-side dictionary
// is keyed by (prefix code, next byte) pairs rather than materialized
// byte strings: every distinct string the encoder has ever seen
// corresponds to exactly one such pair, so this is equivalent to a
// string-keyed dictionary without ever allocating the strings themselves.
func encode(data []byte, bw *bitio.Writer) error {
	dict := make(map[uint32]uint16)
	nextCode := uint16(firstUserCode)
	width := initialCodeWidth

	// w is the code of the longest dictionary match accumulated so far;
	// -1 means "no bytes buffered yet".
	w := -1

	for _, b := range data {
		if w == -1 {
			w = int(b)
			continue
		}

		key := dictKey(uint16(w), b)
		if code, ok := dict[key]; ok {
			w = int(code)
			continue
		}

		if err := bw.WriteBits(uint32(w), width); err != nil {
			return err
		}

		if nextCode < maxDictionary {
			dict[key] = nextCode
			// The decoder only adds this entry after reading the next
			// code, so widen on the code just assigned: that is the value
			// the decoder's next_code holds when it makes the same check.
			if int(nextCode) > (1<<uint(width)) && width < maxCodeWidth {
				width++
			}
			nextCode++
		}
		if nextCode >= maxDictionary {
			if err := bw.WriteBits(clearCode, width); err != nil {
				return err
			}
			dict = make(map[uint32]uint16)
			nextCode = firstUserCode
			width = initialCodeWidth
		}

		w = int(b)
	}

	if w != -1 {
		if err := bw.WriteBits(uint32(w), width); err != nil {
			return err
		}
		// The decoder adds one more entry after this last code before it
		// reads STOP, and may widen on it.
		if int(nextCode) > (1<<uint(width)) && width < maxCodeWidth {
			width++
		}
	}
	return bw.WriteBits(stopCode, width)
}

func dictKey(prefix uint16, next byte) uint32 {
	return uint32(prefix)<<8 | uint32(next)
}

// decode runs the LZW decompression loop, including the code ==
// next_code self-reference case. The decompression-side dictionary is a
// growing slice of byte slices indexed by code, since the decoder must
// materialize the strings it emits.
func decode(br *bitio.Reader, out io.Writer) (int, error) {
	dict := newDecodeDictionary()
	nextCode := uint16(firstUserCode)
	width := initialCodeWidth
	written := 0

	readCode := func() (uint16, bool) {
		v, err := br.ReadBits(width)
		if err != nil {
			return 0, false
		}
		return uint16(v), true
	}

	prevCode, ok := readCode()
	if !ok {
		return written, gocompress.ErrMissingStop
	}
	if prevCode == stopCode {
		return written, nil
	}
	if int(prevCode) >= len(dict) {
		return written, gocompress.ErrInvalidCode
	}
	prevString := dict[prevCode]
	n, err := out.Write(prevString)
	written += n
	if err != nil {
		return written, gocompress.NewIOError("write", "", err)
	}

	for {
		code, ok := readCode()
		if !ok {
			return written, gocompress.ErrMissingStop
		}
		if code == stopCode {
			return written, nil
		}

		if code == clearCode {
			dict = newDecodeDictionary()
			nextCode = firstUserCode
			width = initialCodeWidth

			next, ok := readCode()
			if !ok {
				return written, gocompress.ErrMissingStop
			}
			if next == stopCode {
				return written, nil
			}
			if int(next) >= len(dict) {
				return written, gocompress.ErrInvalidCode
			}
			prevString = dict[next]
			n, err := out.Write(prevString)
			written += n
			if err != nil {
				return written, gocompress.NewIOError("write", "", err)
			}
			continue
		}

		var current []byte
		switch {
		case int(code) < len(dict):
			current = dict[code]
		case code == nextCode:
			current = append(append([]byte{}, prevString...), prevString[0])
		default:
			return written, gocompress.ErrInvalidCode
		}

		n, err := out.Write(current)
		written += n
		if err != nil {
			return written, gocompress.NewIOError("write", "", err)
		}

		if nextCode < maxDictionary {
			entry := append(append([]byte{}, prevString...), current[0])
			dict = append(dict, entry)
			nextCode++
			if int(nextCode) > (1<<uint(width)) && width < maxCodeWidth {
				width++
			}
		}

		prevString = current
	}
}

func newDecodeDictionary() [][]byte {
	dict := make([][]byte, firstUserCode, maxDictionary)
	for i := 0; i < 256; i++ {
		dict[i] = []byte{byte(i)}
	}
	return dict
}
