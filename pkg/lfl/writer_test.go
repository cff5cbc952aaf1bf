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

package lfl_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xelalexv/lflextract/pkg/lfl"
)

type failingWriter struct{}

func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterPlain(t *testing.T) {
	var out bytes.Buffer
	w := lfl.NewWriter(&out, lfl.Plain)

	w.WriteByte(0x12)
	w.WriteUint16LE(0x0132)
	w.Write([]byte{0xaa, 0x55})

	want := []byte{0x12, 0x32, 0x01, 0xaa, 0x55}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %v, want %v", out.Bytes(), want)
	}
}

func TestWriterInverted(t *testing.T) {
	var out bytes.Buffer
	w := lfl.NewWriter(&out, lfl.Inverted)

	w.WriteByte(0x12)
	w.WriteUint16LE(0x0132)
	p := []byte{0xaa, 0x55}
	w.Write(p)

	want := []byte{0xed, 0xcd, 0xfe, 0x55, 0xaa}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %v, want %v", out.Bytes(), want)
	}
	if !bytes.Equal(p, []byte{0xaa, 0x55}) {
		t.Errorf("input was modified: %v", p)
	}
}

func TestWriterInvertedLongWrite(t *testing.T) {
	p := make([]byte, 1000)
	for ix := range p {
		p[ix] = byte(ix)
	}

	var out bytes.Buffer
	n, err := lfl.NewWriter(&out, lfl.Inverted).Write(p)
	if err != nil || n != len(p) {
		t.Fatalf("got %d, %v, want %d, nil", n, err, len(p))
	}

	for ix, b := range out.Bytes() {
		if b != byte(ix)^0xff {
			t.Fatalf("byte %d: got 0x%02x, want 0x%02x", ix, b, byte(ix)^0xff)
		}
	}
}

func TestWriterErrors(t *testing.T) {
	w := lfl.NewWriter(&failingWriter{}, lfl.Inverted)
	if err := w.WriteByte(1); err == nil {
		t.Error("expected error from WriteByte")
	}
	if err := w.WriteUint16LE(1); err == nil {
		t.Error("expected error from WriteUint16LE")
	}
	if _, err := w.Write([]byte{1}); err == nil {
		t.Error("expected error from Write")
	}
}

func TestGetEncoding(t *testing.T) {
	cases := map[string]lfl.Encoding{
		"c64":      lfl.Inverted,
		"C64":      lfl.Inverted,
		"inverted": lfl.Inverted,
		"plain":    lfl.Plain,
		"":         lfl.UNKNOWN,
		"xor":      lfl.UNKNOWN,
	}
	for name, want := range cases {
		if got := lfl.GetEncoding(name); got != want {
			t.Errorf("%q: got %v, want %v", name, got, want)
		}
	}
	if lfl.GetEncoding(lfl.Plain.String()) != lfl.Plain {
		t.Error("plain encoding does not round trip through its name")
	}
}
