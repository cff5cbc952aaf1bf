/*
   LFLExtract - room extractor for Maniac Mansion C64 disk images
   Copyright (c) 2021, Alexander Vollschwitz

   This file is part of LFLExtract.

   LFLExtract is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   LFLExtract is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with LFLExtract. If not, see <http://www.gnu.org/licenses/>.
*/

package lfl

import (
	"encoding/binary"
	"io"

	"github.com/xelalexv/lflextract/pkg/raw"
)

/*
	Writer writes bytes and little endian words to an LFL file. When created
	with an inverting encoding, every byte and every word is inverted before
	it is written. Reading from disk images is never affected.
*/
type Writer struct {
	out    io.Writer
	invert bool
	buf    []byte
}

//
func NewWriter(out io.Writer, enc Encoding) *Writer {
	return &Writer{out: out, invert: enc.Inverts(), buf: make([]byte, 256)}
}

//
func (w *Writer) WriteByte(b byte) error {
	if w.invert {
		b = raw.Invert(b)
	}
	w.buf[0] = b
	_, err := w.out.Write(w.buf[:1])
	return err
}

//
func (w *Writer) WriteUint16LE(v uint16) error {
	if w.invert {
		v = raw.InvertWord(v)
	}
	binary.LittleEndian.PutUint16(w.buf, v)
	_, err := w.out.Write(w.buf[:2])
	return err
}

// Write writes all of p, applying the encoding to each byte. p is not
// modified.
func (w *Writer) Write(p []byte) (int, error) {

	if !w.invert {
		return w.out.Write(p)
	}

	written := 0

	for len(p) > 0 {
		n := raw.InvertBytes(w.buf, p)
		m, err := w.out.Write(w.buf[:n])
		written += m
		if err != nil {
			return written, err
		}
		p = p[n:]
	}

	return written, nil
}
