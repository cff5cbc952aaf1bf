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
func NewList() *List {

	l := &List{}
	l.Runner = *NewRunner(
		"ls {disk1 image} {disk2 image}",
		"list room directory of disk images",
		`
Use the ls command to list the room directory found on disk 1, i.e. for each room
the disk, track & sector where its data starts, and the number of records it has.`,
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()

	return l
}

//
type List struct {
	Runner
}

//
func (l *List) Run() error {

	ex, err := l.newExtractor()
	if err != nil {
		return err
	}
	defer ex.Images().Close()

	if !ex.Images().Lock(context.Background()) {
		return fmt.Errorf("could not lock disk images")
	}
	defer ex.Images().Unlock()

	dir, err := ex.Directory()
	if err != nil {
		return err
	}

	dir.List(os.Stdout)
	return nil
}
