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

package main

import (
	"fmt"
	"os"

	"github.com/xelalexv/lflextract/pkg/run"
)

//
var LFLExtractVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: lflextract {extract|ls|dump|serve|version} ... {disk1 image} {disk2 image}

run 'lflextract {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nLFLExtract %s\n\n", LFLExtractVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "extract":
		run.DieOnError(run.NewExtract().Execute(args))

	case "ls":
		run.DieOnError(run.NewList().Execute(args))

	case "dump":
		run.DieOnError(run.NewDump().Execute(args))

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "version":
		version()

	case "-h", "--help":
		synopsis()

	case "":
		synopsis()
		os.Exit(run.ExitUsage)

	default:
		synopsis()
		run.DieOnError(run.NewUsageError("unknown action: %s", action))
	}
}
