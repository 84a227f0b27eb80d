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

	"github.com/analogsec/analog/sessions"
)

var (
	sessions_command = app.Command("sessions",
		"Interactive login sessions - the logon session analogue.")
)

func doSessions() {
	config_obj := load_config()

	result, err := sessions.List(context.Background(),
		config_obj.ToolPath("who"))
	kingpin.FatalIfError(err, "Listing sessions")

	rows := []*ordereddict.Dict{}
	for _, session := range result {
		rows = append(rows, session.ToDict())
	}
	renderRows(config_obj, rows)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == sessions_command.FullCommand() {
			doSessions()
			return true
		}
		return false
	})
}
