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
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/lflextract/pkg/lfl"
)

//
func NewExtract() *Extract {

	x := &Extract{}
	x.Runner = *NewRunner(
		`extract [-o|--output {dir}] [-e|--encoding {c64|plain}] [-f|--force]
        {disk1 image} {disk2 image}`,
		"extract index & room files from disk images",
		`
Use the extract command to extract the index file 00.LFL and all room files from
the two disk images. Room files are named after their room number, e.g. 07.LFL.`,
		"", `- Unless given, the output directory is the directory containing the disk 2
  image.
- Logging can be configured with these environment variables:

  LOG_FORMAT		set to 'json' for JSON logging
  LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
  LOG_METHODS		set to non-empty for including methods in log
  LOG_LEVEL		panic, fatal, error, warn, info, debug, trace

`+runnerHelpEpilogue, x.Run)

	x.AddBaseSettings()
	x.AddSetting(&x.Output, "output", "o", "LFLEXTRACT_OUTPUT", nil,
		"output directory", false)
	x.AddSetting(&x.Force, "force", "f", "", false,
		"create output directory if missing, overwrite without asking", false)

	return x
}

//
type Extract struct {
	//
	Runner
	//
	Output string
	Force  bool
}

//
func (x *Extract) Run() error {

	ex, err := x.newExtractor()
	if err != nil {
		return err
	}
	defer ex.Images().Close()

	out := x.Output
	if out == "" {
		out = filepath.Dir(x.Args[len(x.Args)-1])
	}

	if err := x.prepareOutput(out); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"output":   out,
		"encoding": ex.Encoding(),
	}).Info("extracting")

	n, err := ex.Extract(context.Background(), out)
	if err != nil {
		return err
	}

	fmt.Printf("\n%d room files written to %s\n", n, out)
	return nil
}

//
func (x *Extract) prepareOutput(out string) error {

	if info, err := os.Stat(out); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output %s is not a directory", out)
		}
	} else if os.IsNotExist(err) && x.Force {
		log.Infof("creating output directory %s", out)
		return os.MkdirAll(out, 0755)
	} else {
		return err
	}

	index := filepath.Join(out, lfl.IndexFileName())
	if _, err := os.Stat(index); err == nil && !x.Force &&
		!GetUserConfirmation("Index file exists, overwrite?") {
		return fmt.Errorf("not overwriting %s", index)
	}

	return nil
}
