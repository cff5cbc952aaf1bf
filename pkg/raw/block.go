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

import (
	"encoding/binary"
	"fmt"
)

// Field locates a field within a block: the offset of its first byte, the
// number of elements, and the width of each element in bytes (1 or 2).
type Field struct {
	Offset int
	Count  int
	Width  int
}

// Length returns the length of the field in bytes.
func (f Field) Length() int {
	return f.Count * f.Width
}

//
func NewBlock(index map[string]Field, data []byte) *Block {
	return &Block{index: index, Data: data}
}

// Block gives named access to the fields of a fixed layout byte buffer.
// Multi-byte values are little endian.
type Block struct {
	index map[string]Field
	Data  []byte
}

//
func (b *Block) Field(key string) (Field, bool) {
	f, ok := b.index[key]
	return f, ok
}

//
func (b *Block) GetSlice(key string) []byte {
	if f, ok := b.index[key]; ok {
		end := f.Offset + f.Length()
		if 0 <= f.Offset && end <= len(b.Data) {
			return b.Data[f.Offset:end]
		}
	}
	return []byte{}
}

// GetByte returns element ix of a byte field.
func (b *Block) GetByte(key string, ix int) (byte, error) {
	s, err := b.element(key, ix, 1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// GetUint16 returns element ix of a word field.
func (b *Block) GetUint16(key string, ix int) (uint16, error) {
	s, err := b.element(key, ix, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(s), nil
}

//
func (b *Block) element(key string, ix, width int) ([]byte, error) {

	f, ok := b.index[key]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", key)
	}
	if f.Width != width {
		return nil, fmt.Errorf("field %s has width %d, not %d",
			key, f.Width, width)
	}
	if ix < 0 || ix >= f.Count {
		return nil, fmt.Errorf("index %d out of range for field %s", ix, key)
	}

	s := b.GetSlice(key)
	if len(s) == 0 {
		return nil, fmt.Errorf("field %s exceeds block", key)
	}
	return s[ix*width : (ix+1)*width], nil
}

// Size returns the number of bytes needed to hold all fields of index.
func Size(index map[string]Field) int {
	max := 0
	for _, f := range index {
		if end := f.Offset + f.Length(); end > max {
			max = end
		}
	}
	return max
}
