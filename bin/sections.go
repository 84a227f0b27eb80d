/*
   Analog - Windows security internals, translated to macOS.
   Copyright (C) 2026 The Analog Authors.

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published
   by the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"context"
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/shm"
	"github.com/analogsec/analog/vm"
)

var (
	sections_command = app.Command("sections",
		"System V shared memory segments - the section object analogue.")

	sections_list = sections_command.Command("list",
		"List segments via ipcs.").Default()

	sections_demo = sections_command.Command("demo",
		"Create a segment, attach, write, reattach read only, remove.")
)

func doSectionsList() {
	config_obj := load_config()

	segments, err := shm.List(context.Background(),
		config_obj.ToolPath("ipcs"))
	kingpin.FatalIfError(err, "Listing shared memory segments")

	rows := []*ordereddict.Dict{}
	for _, segment := range segments {
		rows = append(rows, segment.ToDict())
	}
	renderRows(config_obj, rows)
}

// doSectionsDemo walks the CreateFileMapping / MapViewOfFile
// analogues on one private segment.
func doSectionsDemo() {
	load_config()

	id, err := shm.MakeSegment(4096)
	kingpin.FatalIfError(err, "Creating segment")

	fmt.Printf("Created segment %d (CreateFileMapping over the pagefile)\n\n", id)

	buf, err := shm.AttachSegment(id, false)
	kingpin.FatalIfError(err, "Attaching segment")

	copy(buf, []byte("written through the rw attachment"))
	fmt.Printf("After write through rw attachment (MapViewOfFile):\n%s\n",
		vm.Dump(buf, 48))

	err = shm.DetachSegment(buf)
	kingpin.FatalIfError(err, "Detaching segment")

	// A second, read only attachment sees the same bytes - the
	// segment outlives its views.
	buf, err = shm.AttachSegment(id, true)
	kingpin.FatalIfError(err, "Reattaching segment read only")

	fmt.Printf("Read only reattachment sees the same contents:\n%s",
		vm.Dump(buf, 48))

	err = shm.DetachSegment(buf)
	kingpin.FatalIfError(err, "Detaching segment")

	err = shm.RemoveSegment(id)
	kingpin.FatalIfError(err, "Removing segment")
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case sections_list.FullCommand():
			doSectionsList()
		case sections_demo.FullCommand():
			doSectionsDemo()
		default:
			return false
		}
		return true
	})
}
