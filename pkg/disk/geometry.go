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
	"errors"
	"fmt"
)

// SectorSize is the size of a sector in bytes
const SectorSize = 256

// tracks are numbered 1 through 35, track 0 does not exist
const TrackCount = 35

//
var ErrGeometry = errors.New("invalid disk geometry")

// sectorOffsets holds for each track the number of sectors on all tracks
// preceding it. Outer tracks carry more sectors than inner ones: 21 sectors on
// tracks 1-17, 19 on 18-24, 18 on 25-30, and 17 on 31-35.
var sectorOffsets = [TrackCount + 1]int{
	0,
	0, 21, 42, 63, 84, 105, 126, 147, 168, 189, 210, 231, 252, 273, 294, 315, 336,
	357, 376, 395, 414, 433, 452, 471,
	490, 508, 526, 544, 562, 580,
	598, 615, 632, 649, 666,
}

// total number of sectors on a disk
const SectorCount = 683

//
func SectorsPerTrack(track int) (int, error) {
	if track < 1 || track > TrackCount {
		return 0, fmt.Errorf("%w: track %d out of range 1-%d",
			ErrGeometry, track, TrackCount)
	}
	if track == TrackCount {
		return SectorCount - sectorOffsets[track], nil
	}
	return sectorOffsets[track+1] - sectorOffsets[track], nil
}

// Offset returns the byte offset of the given sector within a disk image.
func Offset(track, sector int) (int64, error) {

	count, err := SectorsPerTrack(track)
	if err != nil {
		return 0, err
	}

	if sector < 0 || sector >= count {
		return 0, fmt.Errorf("%w: sector %d out of range 0-%d on track %d",
			ErrGeometry, sector, count-1, track)
	}

	return int64(sectorOffsets[track]+sector) * SectorSize, nil
}
