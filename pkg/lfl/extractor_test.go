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

package lfl_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/lfl"
	"github.com/xelalexv/lflextract/pkg/lfl/imagetest"
)

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ret []string
	for _, i := range infos {
		ret = append(ret, i.Name())
	}
	sort.Strings(ret)
	return ret
}

func invert(data []byte) []byte {
	ret := make([]byte, len(data))
	for ix, b := range data {
		ret[ix] = b ^ 0xff
	}
	return ret
}

func TestFileName(t *testing.T) {
	cases := map[int]string{0: "00.LFL", 7: "07.LFL", 42: "42.LFL", 54: "54.LFL"}
	for room, want := range cases {
		if got := lfl.FileName(room); got != want {
			t.Errorf("room %d: got %s, want %s", room, got, want)
		}
	}
	if lfl.IndexFileName() != "00.LFL" {
		t.Errorf("index file name: got %s", lfl.IndexFileName())
	}
}

func TestExtract(t *testing.T) {
	ed := imagetest.Edition(testRooms)
	set := newTestSet(t, ed, testRooms)
	out := t.TempDir()

	n, err := lfl.NewExtractor(set, ed, lfl.Inverted).Extract(
		context.Background(), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("room files written: got %d, want 3", n)
	}

	want := []string{"00.LFL", "01.LFL", "07.LFL", "09.LFL"}
	if got := listFiles(t, out); !equalStrings(got, want) {
		t.Fatalf("files: got %v, want %v", got, want)
	}

	for _, r := range testRooms[:3] {
		got, err := ioutil.ReadFile(filepath.Join(out, lfl.FileName(r.Room)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := invert(imagetest.RoomData(r)); !bytes.Equal(got, want) {
			t.Errorf("room %d: got %v, want %v", r.Room, got, want)
		}
	}

	index, err := ioutil.ReadFile(filepath.Join(out, lfl.IndexFileName()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != ed.HeaderLength() {
		t.Errorf("index size: got %d, want %d", len(index), ed.HeaderLength())
	}
	if index[0] != 0x32^0xff || index[1] != 0x01^0xff {
		t.Errorf("index signature: got %02x %02x", index[0], index[1])
	}

	if pos, _ := set.Image(disk.One).Position(); pos != 0 {
		t.Errorf("disk 1 not rewound, position %d", pos)
	}
	if pos, _ := set.Image(disk.Two).Position(); pos != 0 {
		t.Errorf("disk 2 not rewound, position %d", pos)
	}
}

func TestExtractSkipsIndexRoom(t *testing.T) {
	rooms := []imagetest.Room{
		{Room: 0, Disk: disk.One, Track: 1, Sector: 5},
		{Room: 2, Disk: disk.Two, Track: 1, Sector: 1, Records: [][]byte{{9}}},
	}
	ed := imagetest.Edition(rooms)
	set := newTestSet(t, ed, rooms)
	out := t.TempDir()

	n, err := lfl.NewExtractor(set, ed, lfl.Plain).Extract(
		context.Background(), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("room files written: got %d, want 1", n)
	}

	index, _ := ioutil.ReadFile(filepath.Join(out, lfl.IndexFileName()))
	if len(index) != ed.HeaderLength() {
		t.Errorf("index file was overwritten, size %d", len(index))
	}
}

func TestExtractStopsAtTruncatedRoom(t *testing.T) {
	rooms := []imagetest.Room{
		{Room: 3, Disk: disk.Two, Track: 1, Sector: 1, Records: [][]byte{{1, 2}}},
		{
			Room: 5, Disk: disk.Two, Track: 2, Sector: 0,
			Records: [][]byte{{1, 2, 3, 4}}, Truncate: 2,
		},
		{Room: 6, Disk: disk.One, Track: 1, Sector: 6, Records: [][]byte{{7}}},
	}
	ed := imagetest.Edition(rooms)
	set := newTestSet(t, ed, rooms)
	out := t.TempDir()

	n, err := lfl.NewExtractor(set, ed, lfl.Plain).Extract(
		context.Background(), out)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got error %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if n != 1 {
		t.Errorf("room files written: got %d, want 1", n)
	}

	want := []string{"00.LFL", "03.LFL"}
	if got := listFiles(t, out); !equalStrings(got, want) {
		t.Errorf("files: got %v, want %v", got, want)
	}
}

func TestExtractIntoMissingDirectory(t *testing.T) {
	ed := imagetest.Edition(testRooms)
	set := newTestSet(t, ed, testRooms)
	out := filepath.Join(t.TempDir(), "missing")

	if _, err := lfl.NewExtractor(set, ed, lfl.Plain).Extract(
		context.Background(), out); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output directory was created")
	}
}

func TestExtractWhileLocked(t *testing.T) {
	ed := imagetest.Edition(testRooms)
	set := newTestSet(t, ed, testRooms)

	set.Lock(context.Background())
	defer set.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := lfl.NewExtractor(set, ed, lfl.Plain).Extract(
		ctx, t.TempDir()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for ix := range a {
		if a[ix] != b[ix] {
			return false
		}
	}
	return true
}
