package core

// source.go reads a whole export into memory and prepares it for parsing.
//
// Exports arrive from browsers, mail attachments, and spreadsheet tools, so
// the text is cleaned before tokenizing:
//   - UTF-8 BOM is removed (Excel on Windows adds one)
//   - invalid UTF-8 is replaced with U+FFFD

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readSource reads r fully. maxSize <= 0 disables the size check.
func readSource(name string, r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize > 0 {
		r = io.LimitReader(r, maxSize+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Name: name, Err: err}
	}

	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, maxSize)
	}

	return data, nil
}

// cleanText strips a leading BOM and sanitizes UTF-8.
func cleanText(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	return string(sanitizeUTF8(data))
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune(utf8.RuneError)
			data = data[1:]
		} else {
			buf.Write(data[:size])
			data = data[size:]
		}
	}

	return buf.Bytes()
}
