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

package run

import (
	"context"
	"fmt"
	"os"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = *NewRunner(
		"dump -r|--room {room} {disk1 image} {disk2 image}",
		"dump records of a room",
		"\nUse the dump command to output a hex dump of all records of a room.",
		"", `- Record payloads are shown as stored on disk, regardless of encoding.

`+runnerHelpEpilogue, d.Run)

	d.AddBaseSettings()
	d.AddSetting(&d.Room, "room", "r", "", -1, "room number", false)

	return d
}

//
type Dump struct {
	//
	Runner
	//
	Room int
}

//
func (d *Dump) Run() error {

	ex, err := d.newExtractor()
	if err != nil {
		return err
	}
	defer ex.Images().Close()

	if d.Room == -1 {
		return NewUsageError("you need to specify the --room command line flag")
	}
	if err := validateRoom(ex, d.Room); err != nil {
		return err
	}

	if !ex.Images().Lock(context.Background()) {
		return fmt.Errorf("could not lock disk images")
	}
	defer ex.Images().Unlock()

	dir, err := ex.Directory()
	if err != nil {
		return err
	}

	room, err := ex.Room(dir, d.Room)
	if err != nil {
		return err
	}

	room.Emit(os.Stdout)
	return nil
}
