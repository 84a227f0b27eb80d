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

	"github.com/analogsec/analog/psutils"
)

var (
	pslist_command = app.Command("pslist",
		"List processes with their token summary.")

	pslist_pid = pslist_command.Flag("pid",
		"Show only this pid.").Int32()
)

func doPslist() {
	config_obj := load_config()

	var rows []*ordereddict.Dict
	if *pslist_pid > 0 {
		row, err := psutils.GetProcess(context.Background(), *pslist_pid)
		kingpin.FatalIfError(err, "Reading pid %v", *pslist_pid)
		rows = []*ordereddict.Dict{row}
	} else {
		var err error
		rows, err = psutils.ListProcesses(context.Background())
		kingpin.FatalIfError(err, "Listing processes")
	}

	renderRows(config_obj, rows)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == pslist_command.FullCommand() {
			doPslist()
			return true
		}
		return false
	})
}
