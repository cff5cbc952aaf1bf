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
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Set holds the two disk images of the game. Users need to lock the set
// while seeking and reading, so that extraction of rooms stays serial.
type Set struct {
	images [2]*Image
	lock   chan bool
}

// OpenSet opens both disk images, disk 1 at path1 and disk 2 at path2.
func OpenSet(path1, path2 string) (*Set, error) {

	one, err := Open(path1, One)
	if err != nil {
		return nil, err
	}

	two, err := Open(path2, Two)
	if err != nil {
		one.Close()
		return nil, err
	}

	return NewSet(one, two)
}

//
func NewSet(one, two *Image) (*Set, error) {
	if one == nil || one.Disk() != One {
		return nil, fmt.Errorf("first image is not %s", One)
	}
	if two == nil || two.Disk() != Two {
		return nil, fmt.Errorf("second image is not %s", Two)
	}
	return &Set{
		images: [2]*Image{one, two},
		lock:   make(chan bool, 1),
	}, nil
}

// Image returns the image for disk d, or nil if d is absent.
func (s *Set) Image(d Disk) *Image {
	switch d {
	case One:
		return s.images[0]
	case Two:
		return s.images[1]
	}
	return nil
}

//
func (s *Set) Lock(ctx context.Context) bool {
	select {
	case s.lock <- true:
		log.Trace("disk set locked")
		return true
	case <-ctx.Done():
		log.Debug("disk set lock timed out")
		return false
	}
}

//
func (s *Set) Unlock() {
	select {
	case <-s.lock:
		log.Trace("disk set unlocked")
	default:
		log.Debug("disk set was already unlocked")
	}
}

//
func (s *Set) Close() error {
	var ret error
	for _, img := range s.images {
		if err := img.Close(); err != nil {
			log.Errorf("error closing %s: %v", img.Disk(), err)
			ret = err
		}
	}
	return ret
}
