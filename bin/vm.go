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

	"github.com/analogsec/analog/vm"
)

var (
	vm_command = app.Command("vm", "Virtual memory inspection.")

	vm_regions     = vm_command.Command("regions", "Region map of a process via vmmap.")
	vm_regions_pid = vm_regions.Arg("pid", "Process to map.").
			Required().Int32()

	vm_demo = vm_command.Command("demo",
		"Map a page, write to it, then flip it read only.")
)

func doVMRegions() {
	config_obj := load_config()

	regions, err := vm.Regions(context.Background(),
		*vm_regions_pid, config_obj.ToolPath("vmmap"))
	kingpin.FatalIfError(err, "Mapping pid %v", *vm_regions_pid)

	rows := []*ordereddict.Dict{}
	for _, region := range regions {
		rows = append(rows, region.ToDict())
	}
	renderRows(config_obj, rows)
}

// doVMDemo walks through the VirtualAlloc / VirtualProtect analogues
// on a single anonymous page.
func doVMDemo() {
	load_config()

	buf, err := vm.Map(4096)
	kingpin.FatalIfError(err, "Mapping anonymous page")
	defer func() {
		_ = vm.Unmap(buf)
	}()

	fmt.Printf("Mapped %d bytes anonymous rw- (VirtualAlloc PAGE_READWRITE)\n\n",
		len(buf))

	copy(buf, []byte("written while the page was rw-"))
	fmt.Printf("After write:\n%s\n", vm.Dump(buf, 48))

	err = vm.Protect(buf, vm.ProtRead)
	kingpin.FatalIfError(err, "Protecting page")

	fmt.Printf("Flipped to r-- (VirtualProtect PAGE_READONLY); contents persist:\n%s",
		vm.Dump(buf, 48))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case vm_regions.FullCommand():
			doVMRegions()
		case vm_demo.FullCommand():
			doVMDemo()
		default:
			return false
		}
		return true
	})
}
