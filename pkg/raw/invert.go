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

package raw

/*
	Invert flips all bits of a data byte. The C64 edition stores its LFL files
	in this inverted form, and since inversion is its own inverse, the same
	function serves for encoding and decoding.
*/
func Invert(b byte) byte {
	return b ^ 0xff
}

// InvertWord flips all bits of a 16 bit value.
func InvertWord(w uint16) uint16 {
	return w ^ 0xffff
}

/*
	InvertBytes inverts src into dest, and returns the number of inverted
	bytes, i.e. the minimum of both lengths. dest and src may be the same slice.
*/
func InvertBytes(dest, src []byte) int {
	n := len(src)
	if len(dest) < n {
		n = len(dest)
	}
	for ix := 0; ix < n; ix++ {
		dest[ix] = src[ix] ^ 0xff
	}
	return n
}
