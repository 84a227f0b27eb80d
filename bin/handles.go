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

	"github.com/analogsec/analog/handles"
)

var (
	handles_command = app.Command("handles",
		"Open descriptors via lsof - the handle table analogue.")

	handles_pid = handles_command.Flag("pid",
		"Restrict to one process.").Int32()

	handles_unix = handles_command.Flag("unix",
		"Only unix domain sockets (the ALPC port analogue).").Bool()
)

func doHandles() {
	config_obj := load_config()

	result, err := handles.List(context.Background(), handles.Options{
		Pid:      *handles_pid,
		UnixOnly: *handles_unix,
		LsofPath: config_obj.ToolPath("lsof"),
	})
	kingpin.FatalIfError(err, "Listing handles")

	rows := []*ordereddict.Dict{}
	for _, handle := range result {
		rows = append(rows, handle.ToDict())
	}
	renderRows(config_obj, rows)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == handles_command.FullCommand() {
			doHandles()
			return true
		}
		return false
	})
}
