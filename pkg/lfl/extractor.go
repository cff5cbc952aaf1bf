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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/lflextract/pkg/disk"
)

// IndexRoom is the room number whose file name is taken by the index file.
const IndexRoom = 0

// FileName returns the name of the LFL file for room.
func FileName(room int) string {
	return fmt.Sprintf("%02d.LFL", room)
}

//
func IndexFileName() string {
	return FileName(IndexRoom)
}

/*
	Extractor extracts the index and room files from a disk set. Except for
	Extract, its methods expect the caller to hold the lock of the disk set.
*/
type Extractor struct {
	images   *disk.Set
	edition  *Edition
	encoding Encoding
}

//
func NewExtractor(images *disk.Set, ed *Edition, enc Encoding) *Extractor {
	return &Extractor{images: images, edition: ed, encoding: enc}
}

//
func (x *Extractor) Images() *disk.Set {
	return x.images
}

//
func (x *Extractor) Edition() *Edition {
	return x.edition
}

//
func (x *Extractor) Encoding() Encoding {
	return x.encoding
}

//
func (x *Extractor) Directory() (*Directory, error) {
	return ReadDirectory(x.images.Image(disk.One), x.edition)
}

// Room reads the records of room. For rooms not present on either disk,
// ErrRoomAbsent is returned.
func (x *Extractor) Room(dir *Directory, room int) (*Room, error) {

	e, err := dir.Entry(room)
	if err != nil {
		return nil, err
	}
	if !e.Disk.IsPresent() {
		return nil, fmt.Errorf("%w: %d", ErrRoomAbsent, room)
	}

	count, err := x.edition.ResourceCount(room)
	if err != nil {
		return nil, err
	}

	return ReadRoom(x.images.Image(e.Disk), e, count)
}

//
func (x *Extractor) WriteIndex(dir *Directory, out io.Writer) error {
	return dir.WriteIndex(NewWriter(out, x.encoding))
}

//
func (x *Extractor) WriteRoom(r *Room, out io.Writer) error {
	return r.Write(NewWriter(out, x.encoding))
}

/*
	Extract writes the index file and the files of all present rooms into
	directory outDir, and returns the number of room files written. The index
	file is complete before any room is read. Any error ends extraction. Files
	written up to that point are kept, but a file that could not be completed
	is removed.
*/
func (x *Extractor) Extract(ctx context.Context, outDir string) (int, error) {

	if !x.images.Lock(ctx) {
		return 0, fmt.Errorf("could not lock disk images")
	}
	defer x.images.Unlock()

	dir, err := x.Directory()
	if err != nil {
		return 0, err
	}

	log.Infof("creating %s...", IndexFileName())
	if err := writeFile(filepath.Join(outDir, IndexFileName()),
		func(w io.Writer) error { return x.WriteIndex(dir, w) }); err != nil {
		return 0, fmt.Errorf("unable to create index file: %v", err)
	}

	written := 0

	for _, e := range dir.Entries() {

		if !e.Disk.IsPresent() {
			log.Debugf("skipping room %d, tag 0x%02x", e.Room, e.Tag)
			continue
		}

		if e.Room == IndexRoom {
			log.Warnf("room %d conflicts with index file, skipping", e.Room)
			continue
		}

		room, err := x.Room(dir, e.Room)
		if err != nil {
			return written, err
		}

		file := filepath.Join(outDir, FileName(e.Room))
		log.WithFields(log.Fields{
			"disk":    e.Disk,
			"offset":  room.Offset,
			"records": len(room.Records),
		}).Infof("creating %s...", file)

		if err := writeFile(file,
			func(w io.Writer) error { return x.WriteRoom(room, w) }); err != nil {
			return written, fmt.Errorf("unable to create %s: %v", file, err)
		}
		written++
	}

	log.Infof("all done, %d room files written", written)
	return written, nil
}

// writeFile creates file and fills it via write. On error, the file is removed.
func writeFile(file string, write func(w io.Writer) error) (ret error) {

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer func() {
		if err := f.Close(); err != nil && ret == nil {
			ret = err
		}
		if ret != nil {
			if err := os.Remove(file); err != nil {
				log.Errorf("error removing incomplete file %s: %v", file, err)
			}
		}
	}()

	out := bufio.NewWriter(f)
	if err := write(out); err != nil {
		return err
	}
	return out.Flush()
}
