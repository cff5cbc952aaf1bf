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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/lfl"
	"github.com/xelalexv/lflextract/pkg/lfl/imagetest"
)

var testRooms = []imagetest.Room{
	{
		Room: 1, Disk: disk.One, Track: 1, Sector: 5,
		Records: [][]byte{{0xa1, 0xa2}, {0xa3}},
	},
	{
		Room: 7, Disk: disk.Two, Track: 18, Sector: 3,
		Records: [][]byte{{0xb1}},
	},
	{
		Room: 8, Disk: disk.Two, Track: 19, Sector: 0,
		Records: [][]byte{{1, 2, 3, 4}}, Truncate: 1,
	},
}

func newTestAPI(t *testing.T, enc lfl.Encoding) *api {
	t.Helper()

	ed := imagetest.Edition(testRooms)
	one, two := imagetest.Build(ed, testRooms)

	img1, err := disk.NewImage("disk1.d64", disk.One, bytes.NewReader(one))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img2, err := disk.NewImage("disk2.d64", disk.Two, bytes.NewReader(two))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set, err := disk.NewSet(img1, img2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &api{extractor: lfl.NewExtractor(set, ed, enc)}
}

func call(a *api, path string, wantJSON bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if wantJSON {
		req.Header.Set("Accept", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	return rec
}

func TestAPIStatus(t *testing.T) {
	a := newTestAPI(t, lfl.Inverted)

	rec := call(a, "/status", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}

	var stat Status
	if err := json.Unmarshal(rec.Body.Bytes(), &stat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stat.Encoding != "c64" || len(stat.Images) != 2 ||
		stat.Images[1] != "disk2.d64" {
		t.Errorf("unexpected status: %+v", stat)
	}
}

func TestAPIRooms(t *testing.T) {
	a := newTestAPI(t, lfl.Plain)

	rec := call(a, "/rooms", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}

	var rooms []*Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 55 {
		t.Fatalf("room count: got %d, want 55", len(rooms))
	}

	r := rooms[7]
	if !r.Present || r.Disk != 2 || r.Track != 18 || r.Sector != 3 ||
		r.Records != 1 || r.File != "07.LFL" {
		t.Errorf("unexpected room 7: %+v", r)
	}
	if rooms[2].Present {
		t.Errorf("room 2 should be absent")
	}

	rec = call(a, "/rooms", false)
	if !strings.Contains(rec.Body.String(), "07.LFL") {
		t.Errorf("text listing misses room 7:\n%s", rec.Body.String())
	}
}

func TestAPIRoom(t *testing.T) {
	a := newTestAPI(t, lfl.Inverted)

	rec := call(a, "/room/1", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}

	want := []byte{0x04 ^ 0xff, 0xff, 0xa1 ^ 0xff, 0xa2 ^ 0xff,
		0x03 ^ 0xff, 0xff, 0xa3 ^ 0xff}
	if !bytes.Equal(rec.Body.Bytes(), want) {
		t.Errorf("got %v, want %v", rec.Body.Bytes(), want)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "01.LFL") {
		t.Errorf("unexpected content disposition: %s", cd)
	}
}

func TestAPIRoomErrors(t *testing.T) {
	a := newTestAPI(t, lfl.Plain)

	cases := map[string]int{
		"/room/2":  http.StatusNotFound,
		"/room/99": http.StatusNotFound,
		"/room/8":  http.StatusUnprocessableEntity,
		"/room/x":  http.StatusNotFound,
	}
	for path, want := range cases {
		if rec := call(a, path, false); rec.Code != want {
			t.Errorf("%s: got status %d, want %d", path, rec.Code, want)
		}
	}
}

func TestAPIIndex(t *testing.T) {
	a := newTestAPI(t, lfl.Plain)

	rec := call(a, "/index", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}

	ed := a.extractor.Edition()
	if rec.Body.Len() != ed.HeaderLength() {
		t.Errorf("index size: got %d, want %d", rec.Body.Len(), ed.HeaderLength())
	}
	if b := rec.Body.Bytes(); b[0] != 0x32 || b[1] != 0x01 {
		t.Errorf("index signature: got %02x %02x", b[0], b[1])
	}
}

func TestAPIDump(t *testing.T) {
	a := newTestAPI(t, lfl.Inverted)

	rec := call(a, "/room/7/dump", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "ROOM 07") {
		t.Errorf("unexpected dump:\n%s", rec.Body.String())
	}
}

func TestAPILocked(t *testing.T) {
	a := newTestAPI(t, lfl.Plain)

	a.extractor.Images().Lock(context.Background())
	defer a.extractor.Images().Unlock()

	if rec := call(a, "/room/1", false); rec.Code != http.StatusLocked {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusLocked)
	}
}
