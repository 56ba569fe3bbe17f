package program

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxFieldSize bounds a single length-prefixed field.
const maxFieldSize = 1 << 24

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var endian = binary.LittleEndian

func readU32(r io.Reader) (v uint32) {
	check(binary.Read(r, endian, &v))
	return
}

func readBytes(r io.Reader) []byte {
	sz := readU32(r)
	if sz > maxFieldSize {
		panic(errors.Errorf("field size %d exceeds limit", sz))
	}

	p := make([]byte, sz)
	_, err := io.ReadFull(r, p)
	check(err)
	return p
}

func writeU32(w io.Writer, v uint32) {
	check(binary.Write(w, endian, v))
}

func writeBytes(w io.Writer, p []byte) {
	writeU32(w, uint32(len(p)))
	_, err := w.Write(p)
	check(err)
}
