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
	"testing"
)

func TestOffsetKnownValues(t *testing.T) {
	cases := []struct {
		track, sector int
		want          int64
	}{
		{1, 0, 0},
		{1, 5, 5 * SectorSize},
		{2, 0, 21 * SectorSize},
		{18, 0, 357 * SectorSize},
		{25, 3, 493 * SectorSize},
		{35, 16, 682 * SectorSize},
	}

	for _, c := range cases {
		got, err := Offset(c.track, c.sector)
		if err != nil {
			t.Fatalf("unexpected error for track %d, sector %d: %v",
				c.track, c.sector, err)
		}
		if got != c.want {
			t.Errorf("offset of track %d, sector %d: got %d, want %d",
				c.track, c.sector, got, c.want)
		}
	}
}

func TestOffsetIsMonotonic(t *testing.T) {
	last := int64(-1)
	total := 0

	for track := 1; track <= TrackCount; track++ {
		count, err := SectorsPerTrack(track)
		if err != nil {
			t.Fatalf("unexpected error for track %d: %v", track, err)
		}

		first, _ := Offset(track, 0)
		if first < last {
			t.Errorf("track %d starts at %d, before end of previous track %d",
				track, first, last)
		}

		for sector := 0; sector < count; sector++ {
			off, err := Offset(track, sector)
			if err != nil {
				t.Fatalf("unexpected error for track %d, sector %d: %v",
					track, sector, err)
			}
			if off <= last {
				t.Errorf("offset %d of track %d, sector %d not increasing",
					off, track, sector)
			}
			last = off
			total++
		}
	}

	if total != SectorCount {
		t.Errorf("sector count mismatch: got %d, want %d", total, SectorCount)
	}
}

func TestSectorsPerTrackZones(t *testing.T) {
	zones := map[int]int{1: 21, 17: 21, 18: 19, 24: 19, 25: 18, 30: 18, 31: 17, 35: 17}
	for track, want := range zones {
		got, err := SectorsPerTrack(track)
		if err != nil {
			t.Fatalf("unexpected error for track %d: %v", track, err)
		}
		if got != want {
			t.Errorf("sectors on track %d: got %d, want %d", track, got, want)
		}
	}
}

func TestOffsetRejectsInvalidGeometry(t *testing.T) {
	cases := []struct {
		track, sector int
	}{
		{0, 0},
		{36, 0},
		{-1, 0},
		{1, 21},
		{18, 19},
		{35, 17},
		{5, -1},
	}

	for _, c := range cases {
		if _, err := Offset(c.track, c.sector); !errors.Is(err, ErrGeometry) {
			t.Errorf("track %d, sector %d: got error %v, want %v",
				c.track, c.sector, err, ErrGeometry)
		}
	}
}
