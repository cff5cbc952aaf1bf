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
	"errors"
	"fmt"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/raw"
)

//
var ErrNoSuchRoom = errors.New("no such room")

// Edition describes the layout of one release of the game on disk. None of
// this can be discovered from the images themselves.
type Edition struct {
	Name string
	//
	ObjectCount  int
	CostumeCount int
	ScriptCount  int
	SoundCount   int
	// number of length prefixed records per room; its length is the room count
	Resources []int
}

// ManiacMansionC64 is the two disk C64 release.
var ManiacMansionC64 = &Edition{
	Name:         "Maniac Mansion (C64)",
	ObjectCount:  256,
	CostumeCount: 25,
	ScriptCount:  160,
	SoundCount:   70,
	Resources: []int{
		0, 11, 1, 3, 9, 12, 1, 13, 10, 6,
		4, 1, 7, 1, 1, 2, 7, 8, 19, 9,
		6, 9, 2, 6, 8, 4, 16, 8, 3, 3,
		12, 12, 2, 8, 1, 1, 2, 1, 9, 1,
		3, 7, 3, 3, 13, 5, 4, 3, 1, 1,
		3, 10, 1, 0, 0,
	},
}

//
func (e *Edition) RoomCount() int {
	return len(e.Resources)
}

// ResourceCount returns the number of records stored for room.
func (e *Edition) ResourceCount(room int) (int, error) {
	if room < 0 || room >= len(e.Resources) {
		return 0, fmt.Errorf("%w: %d", ErrNoSuchRoom, room)
	}
	return e.Resources[room], nil
}

// field names of the directory header
const (
	FieldSignature      = "signature"
	FieldObjectFlags    = "objectFlags"
	FieldRoomDisks      = "roomDisks"
	FieldRoomPlacements = "roomPlacements"
	FieldCostumeRooms   = "costumeRooms"
	FieldCostumeOffsets = "costumeOffsets"
	FieldScriptRooms    = "scriptRooms"
	FieldScriptOffsets  = "scriptOffsets"
	FieldSoundRooms     = "soundRooms"
	FieldSoundOffsets   = "soundOffsets"
)

// fields of the directory header in the order they appear on disk 1, and in
// the index file
var headerFields = []string{
	FieldSignature,
	FieldObjectFlags,
	FieldRoomDisks,
	FieldRoomPlacements,
	FieldCostumeRooms,
	FieldCostumeOffsets,
	FieldScriptRooms,
	FieldScriptOffsets,
	FieldSoundRooms,
	FieldSoundOffsets,
}

// HeaderIndex returns the layout of the directory header at the start of
// disk 1. Room placements are (sector, track) byte pairs.
func (e *Edition) HeaderIndex() map[string]raw.Field {

	sizes := map[string]raw.Field{
		FieldSignature:      {Count: 1, Width: disk.SignatureLength},
		FieldObjectFlags:    {Count: e.ObjectCount, Width: 1},
		FieldRoomDisks:      {Count: e.RoomCount(), Width: 1},
		FieldRoomPlacements: {Count: 2 * e.RoomCount(), Width: 1},
		FieldCostumeRooms:   {Count: e.CostumeCount, Width: 1},
		FieldCostumeOffsets: {Count: e.CostumeCount, Width: 2},
		FieldScriptRooms:    {Count: e.ScriptCount, Width: 1},
		FieldScriptOffsets:  {Count: e.ScriptCount, Width: 2},
		FieldSoundRooms:     {Count: e.SoundCount, Width: 1},
		FieldSoundOffsets:   {Count: e.SoundCount, Width: 2},
	}

	index := make(map[string]raw.Field, len(sizes))
	offset := 0

	for _, name := range headerFields {
		f := sizes[name]
		f.Offset = offset
		index[name] = f
		offset += f.Length()
	}

	return index
}

// HeaderLength is the size of the directory header in bytes, including the
// disk signature.
func (e *Edition) HeaderLength() int {
	return raw.Size(e.HeaderIndex())
}
