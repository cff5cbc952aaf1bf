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
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/raw"
)

// Entry is the directory entry of a single room.
type Entry struct {
	Room int
	Disk disk.Disk
	// tag as stored in the directory
	Tag    byte
	Track  int
	Sector int
}

// Offset returns the byte offset of the room's data within its disk image.
func (e *Entry) Offset() (int64, error) {
	off, err := disk.Offset(e.Track, e.Sector)
	if err != nil {
		return 0, fmt.Errorf("room %d: %w", e.Room, err)
	}
	return off, nil
}

//
func (e *Entry) String() string {
	if !e.Disk.IsPresent() {
		return fmt.Sprintf("room %02d: <absent> (tag 0x%02x)", e.Room, e.Tag)
	}
	return fmt.Sprintf("room %02d: %s, track %d, sector %d",
		e.Room, e.Disk, e.Track, e.Sector)
}

// Directory is the room directory found at the start of disk 1, together with
// the remaining header tables, which are carried along for the index file.
type Directory struct {
	edition *Edition
	block   *raw.Block
	entries []*Entry
}

/*
	ReadDirectory reads the directory header from the start of img, which needs
	to be disk 1. The image is rewound afterwards.
*/
func ReadDirectory(img *disk.Image, ed *Edition) (*Directory, error) {

	if img.Disk() != disk.One {
		return nil, fmt.Errorf("room directory is on %s, not %s",
			disk.One, img.Disk())
	}

	if err := img.Rewind(); err != nil {
		return nil, err
	}
	defer img.Rewind()

	index := ed.HeaderIndex()
	data := make([]byte, raw.Size(index))
	if err := img.ReadFull(data); err != nil {
		return nil, fmt.Errorf("error reading room directory: %w", err)
	}

	d := &Directory{
		edition: ed,
		block:   raw.NewBlock(index, data),
		entries: make([]*Entry, ed.RoomCount()),
	}

	if sig, err := d.block.GetUint16(FieldSignature, 0); err != nil {
		return nil, err
	} else if sig != disk.One.Signature() {
		return nil, fmt.Errorf("%w in %s", disk.ErrSignature, disk.One)
	}

	for ix := range d.entries {
		e, err := d.parseEntry(ix)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"room":   ix,
			"disk":   e.Disk,
			"track":  e.Track,
			"sector": e.Sector,
		}).Trace("directory entry")
		d.entries[ix] = e
	}

	log.Debugf("read room directory with %d entries", len(d.entries))
	return d, nil
}

//
func (d *Directory) parseEntry(room int) (*Entry, error) {

	tag, err := d.block.GetByte(FieldRoomDisks, room)
	if err != nil {
		return nil, err
	}
	sector, err := d.block.GetByte(FieldRoomPlacements, 2*room)
	if err != nil {
		return nil, err
	}
	track, err := d.block.GetByte(FieldRoomPlacements, 2*room+1)
	if err != nil {
		return nil, err
	}

	return &Entry{
		Room:   room,
		Disk:   disk.FromTag(tag),
		Tag:    tag,
		Track:  int(track),
		Sector: int(sector),
	}, nil
}

//
func (d *Directory) Edition() *Edition {
	return d.edition
}

//
func (d *Directory) RoomCount() int {
	return len(d.entries)
}

// Entry returns the entry for room.
func (d *Directory) Entry(room int) (*Entry, error) {
	if room < 0 || room >= len(d.entries) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchRoom, room)
	}
	return d.entries[room], nil
}

//
func (d *Directory) Entries() []*Entry {
	return d.entries
}

/*
	WriteIndex writes the index file. It starts with the index signature,
	followed by a mirror of all header tables in their on-disk order and
	width.
*/
func (d *Directory) WriteIndex(w *Writer) error {

	if err := w.WriteUint16LE(disk.Two.Signature()); err != nil {
		return err
	}

	for _, name := range headerFields[1:] {

		f, _ := d.block.Field(name)

		for ix := 0; ix < f.Count; ix++ {
			var err error
			if f.Width == 2 {
				var v uint16
				if v, err = d.block.GetUint16(name, ix); err == nil {
					err = w.WriteUint16LE(v)
				}
			} else {
				var b byte
				if b, err = d.block.GetByte(name, ix); err == nil {
					err = w.WriteByte(b)
				}
			}
			if err != nil {
				return fmt.Errorf("error writing %s: %v", name, err)
			}
		}
	}

	return nil
}

// List writes a human readable listing of all rooms to w.
func (d *Directory) List(w io.Writer) {

	fmt.Fprintf(w, "\n%s\n\nROOM DISK    TRACK SECTOR OFFSET RECORDS\n",
		d.edition.Name)

	present := 0

	for _, e := range d.entries {

		if !e.Disk.IsPresent() {
			fmt.Fprintf(w, "  %02d <absent>\n", e.Room)
			continue
		}

		present++
		count, _ := d.edition.ResourceCount(e.Room)

		if off, err := e.Offset(); err != nil {
			fmt.Fprintf(w, "  %02d %-8s %5d %6d %s\n",
				e.Room, e.Disk, e.Track, e.Sector, "<invalid>")
		} else {
			fmt.Fprintf(w, "  %02d %-8s %5d %6d %6x %7d\n",
				e.Room, e.Disk, e.Track, e.Sector, off, count)
		}
	}

	fmt.Fprintf(w, "\n%d of %d rooms present\n\n", present, len(d.entries))
}
