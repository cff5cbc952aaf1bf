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

package disk

//
type Disk int

const (
	Absent Disk = iota
	One
	Two
)

// tags as found in the room directory
const (
	TagOne byte = '1'
	TagTwo byte = '2'
)

// SignatureLength is the size of the little endian signature at the start of
// each disk image.
const SignatureLength = 2

//
func FromTag(t byte) Disk {

	switch t {

	case TagOne:
		return One

	case TagTwo:
		return Two

	default:
		return Absent
	}
}

//
func (d Disk) String() string {

	switch d {

	case One:
		return "disk 1"

	case Two:
		return "disk 2"

	default:
		return "<absent>"
	}
}

//
func (d Disk) Tag() byte {

	switch d {

	case One:
		return TagOne

	case Two:
		return TagTwo

	default:
		return 0
	}
}

// Signature returns the magic number each disk image of this edition starts
// with. The second disk's signature doubles as the signature of the index file.
func (d Disk) Signature() uint16 {

	switch d {

	case One:
		return 0x0a31

	case Two:
		return 0x0132

	default:
		return 0
	}
}

//
func (d Disk) IsPresent() bool {
	return d == One || d == Two
}
