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

package lfl

import (
	"strings"
)

// Encoding selects how output files are written. It is fixed for a whole run.
type Encoding int

const (
	UNKNOWN Encoding = iota
	// every byte inverted, as expected for the C64 edition
	Inverted
	// bytes as read from the disk images
	Plain
)

//
func GetEncoding(e string) Encoding {

	switch strings.ToLower(e) {

	case "c64", "inverted":
		return Inverted

	case "plain":
		return Plain

	default:
		return UNKNOWN
	}
}

//
func (e Encoding) String() string {

	switch e {

	case Inverted:
		return "c64"

	case Plain:
		return "plain"

	default:
		return "<unknown>"
	}
}

//
func (e Encoding) Inverts() bool {
	return e == Inverted
}
