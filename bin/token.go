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
	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/token"
)

var (
	token_command = app.Command("token",
		"Show a process's access token analogue (uids, groups, elevation).")

	token_pid = token_command.Flag("pid",
		"Inspect this pid instead of ourselves.").Int32()
)

func doToken() {
	config_obj := load_config()

	var tok *token.Token
	if *token_pid > 0 {
		var err error
		tok, err = token.FromPid(*token_pid)
		kingpin.FatalIfError(err, "Reading token for pid %v", *token_pid)
	} else {
		tok = token.Self()
	}

	renderRows(config_obj, []*ordereddict.Dict{tok.ToDict()})
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == token_command.FullCommand() {
			doToken()
			return true
		}
		return false
	})
}
