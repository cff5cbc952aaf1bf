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

// Package imagetest builds synthetic disk images for tests.
package imagetest

import (
	"encoding/binary"
	"io/ioutil"
	"path/filepath"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/lfl"
)

// Room places the records of a room on a disk. Records hold payloads only,
// length prefixes are added when building the image. Tag overrides the tag
// derived from Disk when non-zero.
type Room struct {
	Room    int
	Disk    disk.Disk
	Tag     byte
	Track   int
	Sector  int
	Records [][]byte
	// cut the image this many bytes short of the room's end
	Truncate int
}

// Edition returns a copy of the C64 edition with the record counts of all
// rooms set to 0, except for those given in rooms.
func Edition(rooms []Room) *lfl.Edition {
	ed := *lfl.ManiacMansionC64
	ed.Resources = make([]int, lfl.ManiacMansionC64.RoomCount())
	for _, r := range rooms {
		ed.Resources[r.Room] = len(r.Records)
	}
	return &ed
}

// Header returns a directory header for ed with all opaque tables filled with
// a counting pattern, and the room directory filled from rooms.
func Header(ed *lfl.Edition, rooms []Room) []byte {

	index := ed.HeaderIndex()
	data := make([]byte, ed.HeaderLength())

	for ix := range data {
		data[ix] = byte(ix * 7)
	}

	binary.LittleEndian.PutUint16(
		data[index[lfl.FieldSignature].Offset:], disk.One.Signature())

	disks := index[lfl.FieldRoomDisks]
	placements := index[lfl.FieldRoomPlacements]
	for ix := 0; ix < disks.Count; ix++ {
		data[disks.Offset+ix] = 0
		data[placements.Offset+2*ix] = 0
		data[placements.Offset+2*ix+1] = 0
	}

	for _, r := range rooms {
		tag := r.Tag
		if tag == 0 {
			tag = r.Disk.Tag()
		}
		data[disks.Offset+r.Room] = tag
		data[placements.Offset+2*r.Room] = byte(r.Sector)
		data[placements.Offset+2*r.Room+1] = byte(r.Track)
	}

	return data
}

// Build returns the contents of disk 1 and disk 2 images holding rooms.
func Build(ed *lfl.Edition, rooms []Room) ([]byte, []byte) {

	one := Header(ed, rooms)
	two := make([]byte, disk.SignatureLength)
	binary.LittleEndian.PutUint16(two, disk.Two.Signature())

	for _, r := range rooms {

		if !r.Disk.IsPresent() {
			continue
		}

		off, err := disk.Offset(r.Track, r.Sector)
		if err != nil {
			panic(err)
		}

		img := &one
		if r.Disk == disk.Two {
			img = &two
		}

		data := RoomData(r)
		end := int(off) + len(data) - r.Truncate

		if len(*img) < end {
			*img = append(*img, make([]byte, end-len(*img))...)
		}
		copy((*img)[off:end], data)
		if r.Truncate > 0 {
			*img = (*img)[:end]
		}
	}

	return one, two
}

// RoomData returns the plain contents of the LFL file for r.
func RoomData(r Room) []byte {
	var ret []byte
	for _, rec := range r.Records {
		l := make([]byte, 2)
		binary.LittleEndian.PutUint16(l, uint16(len(rec)+2))
		ret = append(ret, l...)
		ret = append(ret, rec...)
	}
	return ret
}

// WriteFiles builds the images and writes them as disk1.d64 and disk2.d64 to
// dir, returning both paths.
func WriteFiles(dir string, ed *lfl.Edition, rooms []Room) (string, string,
	error) {

	one, two := Build(ed, rooms)
	p1 := filepath.Join(dir, "disk1.d64")
	p2 := filepath.Join(dir, "disk2.d64")

	if err := ioutil.WriteFile(p1, one, 0644); err != nil {
		return "", "", err
	}
	if err := ioutil.WriteFile(p2, two, 0644); err != nil {
		return "", "", err
	}
	return p1, p2, nil
}
