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

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/dylib"
)

var (
	modules_command = app.Command("modules",
		"Linked libraries of a Mach-O binary.")

	modules_path = modules_command.Arg("path", "Binary to inspect.").
			Required().String()

	modules_otool = modules_command.Flag("otool",
		"Use otool -L instead of reading the load commands directly.").
		Bool()

	kext_command = app.Command("kext",
		"Loaded kernel extensions - the driver list analogue.")
)

func doModules() {
	config_obj := load_config()

	rows := []*ordereddict.Dict{}

	if !*modules_otool {
		libs, err := dylib.ImportedLibraries(*modules_path)
		if err == nil {
			for _, lib := range libs {
				rows = append(rows,
					ordereddict.NewDict().Set("Dylib", lib))
			}
			renderRows(config_obj, rows)
			return
		}
	}

	// debug/macho cannot open everything (old fat layouts,
	// encrypted binaries) - otool is the fallback.
	libs, err := dylib.LinkedLibraries(context.Background(),
		*modules_path, config_obj.ToolPath("otool"))
	kingpin.FatalIfError(err, "Reading modules of %v", *modules_path)

	for _, lib := range libs {
		rows = append(rows, lib.ToDict())
	}
	renderRows(config_obj, rows)
}

func doKext() {
	config_obj := load_config()

	kexts, err := dylib.ListKexts(context.Background(),
		config_obj.ToolPath("kextstat"))
	kingpin.FatalIfError(err, "Listing kernel extensions")

	rows := []*ordereddict.Dict{}
	for _, kext := range kexts {
		rows = append(rows, kext.ToDict())
	}
	renderRows(config_obj, rows)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case modules_command.FullCommand():
			doModules()
		case kext_command.FullCommand():
			doKext()
		default:
			return false
		}
		return true
	})
}
