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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

//
var ErrSignature = errors.New("signature not found")

// Image is a raw dump of one disk side. It is only ever sought and read.
type Image struct {
	name   string
	disk   Disk
	source io.ReadSeeker
	closer io.Closer
	buf    [2]byte
}

// Open opens the disk image file at path and verifies that it carries the
// signature of disk d.
func Open(path string, d Disk) (*Image, error) {

	log.WithFields(log.Fields{
		"path": path,
		"disk": d,
	}).Debug("opening disk image")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s for input: %v", path, err)
	}

	img, err := newImage(path, d, f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return img, nil
}

// NewImage wraps an already open source. The signature of disk d is verified.
func NewImage(name string, d Disk, src io.ReadSeeker) (*Image, error) {
	var c io.Closer
	if cl, ok := src.(io.Closer); ok {
		c = cl
	}
	return newImage(name, d, src, c)
}

//
func newImage(name string, d Disk, src io.ReadSeeker,
	c io.Closer) (*Image, error) {

	if !d.IsPresent() {
		return nil, fmt.Errorf("cannot create image for %s", d)
	}

	img := &Image{name: name, disk: d, source: src, closer: c}

	if err := img.verify(); err != nil {
		return nil, err
	}
	return img, nil
}

//
func (i *Image) verify() error {

	if err := i.Rewind(); err != nil {
		return err
	}

	sig, err := i.ReadUint16LE()
	if err != nil || sig != i.disk.Signature() {
		return fmt.Errorf("%w in %s (%s)", ErrSignature, i.disk, i.name)
	}

	log.WithFields(log.Fields{
		"image":     i.name,
		"signature": fmt.Sprintf("%04x", sig),
	}).Debugf("%s verified", i.disk)
	return nil
}

//
func (i *Image) Name() string {
	return i.name
}

//
func (i *Image) Disk() Disk {
	return i.disk
}

//
func (i *Image) ReadByte() (byte, error) {
	if _, err := io.ReadFull(i.source, i.buf[:1]); err != nil {
		return 0, i.readError(err)
	}
	return i.buf[0], nil
}

//
func (i *Image) ReadUint16LE() (uint16, error) {
	if _, err := io.ReadFull(i.source, i.buf[:2]); err != nil {
		return 0, i.readError(err)
	}
	return binary.LittleEndian.Uint16(i.buf[:2]), nil
}

// ReadFull fills p completely. A short read is an error, data is never padded.
func (i *Image) ReadFull(p []byte) error {
	if _, err := io.ReadFull(i.source, p); err != nil {
		return i.readError(err)
	}
	return nil
}

//
func (i *Image) readError(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("error reading %s (%s): %w", i.disk, i.name, err)
}

// SeekTo positions the image at offset, counted from its start.
func (i *Image) SeekTo(offset int64) error {
	if _, err := i.source.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking %s to offset %d: %v",
			i.disk, offset, err)
	}
	return nil
}

//
func (i *Image) Rewind() error {
	return i.SeekTo(0)
}

//
func (i *Image) Position() (int64, error) {
	return i.source.Seek(0, io.SeekCurrent)
}

//
func (i *Image) Close() error {
	if i.closer == nil {
		return nil
	}
	log.Debugf("closing %s", i.disk)
	return i.closer.Close()
}
