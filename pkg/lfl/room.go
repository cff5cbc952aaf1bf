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
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/lflextract/pkg/disk"
)

// a record's length includes its own two byte length field
const recordLengthSize = 2

//
var ErrRecordLength = errors.New("invalid record length")

//
var ErrRoomAbsent = errors.New("room not present on any disk")

// Record is a length prefixed resource within a room.
type Record struct {
	Length  uint16
	Payload []byte
}

//
func (r *Record) Emit(w io.Writer, ix int) {
	io.WriteString(w,
		fmt.Sprintf("\nRECORD %d: length %d\n", ix, r.Length))
	d := hex.Dumper(w)
	defer d.Close()
	d.Write(r.Payload)
}

// Room holds the records of one room in on-disk order.
type Room struct {
	Entry   *Entry
	Offset  int64
	Records []*Record
}

/*
	ReadRoom reads count records for the room described by e from img, starting
	at the room's offset. img is rewound afterwards. Reading past the end of the
	image is an error, as is a record shorter than its own length field.
*/
func ReadRoom(img *disk.Image, e *Entry, count int) (*Room, error) {

	if !e.Disk.IsPresent() {
		return nil, fmt.Errorf("%w: %d", ErrRoomAbsent, e.Room)
	}
	if img.Disk() != e.Disk {
		return nil, fmt.Errorf("room %d is on %s, but got %s",
			e.Room, e.Disk, img.Disk())
	}

	off, err := e.Offset()
	if err != nil {
		return nil, err
	}

	if err := img.SeekTo(off); err != nil {
		return nil, err
	}
	defer img.Rewind()

	room := &Room{Entry: e, Offset: off, Records: make([]*Record, 0, count)}

	for ix := 0; ix < count; ix++ {

		length, err := img.ReadUint16LE()
		if err != nil {
			return nil, fmt.Errorf("room %d, record %d: %w", e.Room, ix, err)
		}

		if length < recordLengthSize {
			return nil, fmt.Errorf("room %d, record %d: %w %d",
				e.Room, ix, ErrRecordLength, length)
		}

		rec := &Record{
			Length:  length,
			Payload: make([]byte, length-recordLengthSize),
		}
		if err := img.ReadFull(rec.Payload); err != nil {
			return nil, fmt.Errorf("room %d, record %d: %w", e.Room, ix, err)
		}

		log.WithFields(log.Fields{
			"room":   e.Room,
			"record": ix,
			"length": length,
		}).Trace("read record")

		room.Records = append(room.Records, rec)
	}

	return room, nil
}

// Size returns the size of the room's LFL file in bytes.
func (r *Room) Size() int {
	size := 0
	for _, rec := range r.Records {
		size += int(rec.Length)
	}
	return size
}

// Write writes all records, each with its length prefix, to w.
func (r *Room) Write(w *Writer) error {
	for ix, rec := range r.Records {
		if err := w.WriteUint16LE(rec.Length); err != nil {
			return fmt.Errorf("room %d, record %d: %v", r.Entry.Room, ix, err)
		}
		if _, err := w.Write(rec.Payload); err != nil {
			return fmt.Errorf("room %d, record %d: %v", r.Entry.Room, ix, err)
		}
	}
	return nil
}

// Emit emits this room
func (r *Room) Emit(w io.Writer) {
	io.WriteString(w, fmt.Sprintf(
		"\nROOM %02d: %s, track %d, sector %d, offset %x, %d records, %d bytes\n",
		r.Entry.Room, r.Entry.Disk, r.Entry.Track, r.Entry.Sector, r.Offset,
		len(r.Records), r.Size()))
	for ix, rec := range r.Records {
		rec.Emit(w, ix)
	}
	io.WriteString(w, "\n")
}
