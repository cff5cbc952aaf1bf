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
	"fmt"

	"github.com/xelalexv/lflextract/pkg/disk"
	"github.com/xelalexv/lflextract/pkg/lfl"
)

//
const runnerHelpPrologue = ""
const runnerHelpEpilogue = `- When a flag can be set via environment variable, the variable name is given
  in parenthesis at the end of the flag explanation. Note however that a flag,
  when specified overrides an environment variable.
- Disk images are raw dumps of the two game disks, given in order disk 1, disk 2.
`

/*
	NewRunner creates a base runner for commands to use. The parameters are
	passed to the base command wrapped by this runner.
*/
func NewRunner(use, short, long, helpPrologue, helpEpilogue string,
	exec func() error) *Runner {
	return &Runner{
		Command: *NewCommand(
			use, short, long, helpPrologue, helpEpilogue, exec),
	}
}

// Runner is the base for all commands that work on a pair of disk images.
type Runner struct {
	//
	Command
	//
	Encoding string
}

//
func (r *Runner) AddBaseSettings() {
	// Implementation Note: This cannot be included in NewRunner, but rather has
	// to be called from the top level command type. Otherwise, we will confuse
	// Cobra/Viper and the settings will not be filled with their values.
	r.AddSetting(&r.Encoding, "encoding", "e", "LFLEXTRACT_ENCODING", "c64",
		"output encoding, 'c64' (inverted) or 'plain'", false)
}

//
func (r *Runner) encoding() (lfl.Encoding, error) {
	enc := lfl.GetEncoding(r.Encoding)
	if enc == lfl.UNKNOWN {
		return enc, NewUsageError("unknown encoding: %s", r.Encoding)
	}
	return enc, nil
}

// openImages opens the two disk images given as positional arguments.
func (r *Runner) openImages() (*disk.Set, error) {
	if err := r.RequireArgs(2); err != nil {
		return nil, err
	}
	return disk.OpenSet(r.Args[0], r.Args[1])
}

/*
	newExtractor parses the settings, opens the disk images, and returns an
	extractor for them. The caller needs to close the disk set.
*/
func (r *Runner) newExtractor() (*lfl.Extractor, error) {

	if err := r.ParseSettings(); err != nil {
		return nil, err
	}

	enc, err := r.encoding()
	if err != nil {
		return nil, err
	}

	images, err := r.openImages()
	if err != nil {
		return nil, err
	}

	return lfl.NewExtractor(images, lfl.ManiacMansionC64, enc), nil
}

//
func validateRoom(x *lfl.Extractor, room int) error {
	if count := x.Edition().RoomCount(); room < 0 || room >= count {
		return fmt.Errorf(
			"invalid room number: %d; valid numbers are 0 through %d",
			room, count-1)
	}
	return nil
}
