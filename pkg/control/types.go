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

package control

import (
	"fmt"
	"strings"

	"github.com/xelalexv/lflextract/pkg/lfl"
)

//
type Status struct {
	Edition  string   `json:"edition"`
	Encoding string   `json:"encoding"`
	Images   []string `json:"images"`
}

//
func (s *Status) String() string {
	return fmt.Sprintf("\nedition:  %s\nencoding: %s\nimages:   %s\n",
		s.Edition, s.Encoding, strings.Join(s.Images, ", "))
}

//
type Room struct {
	Room    int    `json:"room"`
	Present bool   `json:"present"`
	Disk    int    `json:"disk,omitempty"`
	Track   int    `json:"track,omitempty"`
	Sector  int    `json:"sector,omitempty"`
	Offset  int64  `json:"offset,omitempty"`
	Records int    `json:"records,omitempty"`
	File    string `json:"file,omitempty"`
}

//
func (r *Room) fill(e *lfl.Entry, ed *lfl.Edition) {

	r.Room = e.Room
	r.Present = e.Disk.IsPresent()
	if !r.Present {
		return
	}

	r.Disk = int(e.Disk)
	r.Track = e.Track
	r.Sector = e.Sector
	r.Offset, _ = e.Offset()
	r.Records, _ = ed.ResourceCount(e.Room)
	r.File = lfl.FileName(e.Room)
}

//
func (r *Room) String() string {
	if !r.Present {
		return fmt.Sprintf("%02d   <absent>", r.Room)
	}
	return fmt.Sprintf("%02d   %d    %5d %6d %6x %7d  %s",
		r.Room, r.Disk, r.Track, r.Sector, r.Offset, r.Records, r.File)
}
