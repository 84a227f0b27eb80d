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

	"github.com/analogsec/analog/integrity"
	"github.com/analogsec/analog/token"
)

var (
	integrity_command = app.Command("integrity",
		"Classify a token into an integrity level analogue.")

	integrity_pid = integrity_command.Flag("pid",
		"Classify this pid instead of ourselves.").Int32()

	sip_command = app.Command("sip",
		"System Integrity Protection status via csrutil.")
)

func doIntegrity() {
	config_obj := load_config()

	var tok *token.Token
	sandboxed := false

	if *integrity_pid > 0 {
		var err error
		tok, err = token.FromPid(*integrity_pid)
		kingpin.FatalIfError(err, "Reading token for pid %v",
			*integrity_pid)
		// Sandbox membership is only observable for our own
		// process, so remote pids classify on the token alone.
	} else {
		tok = token.Self()
		sandboxed = integrity.InAppSandbox()
	}

	renderRows(config_obj, []*ordereddict.Dict{
		integrity.Describe(tok, sandboxed)})
}

func doSIP() {
	config_obj := load_config()

	status, err := integrity.SIP(context.Background(),
		config_obj.ToolPath("csrutil"))
	kingpin.FatalIfError(err, "Reading SIP status")

	renderRows(config_obj, status.ToRows())
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case integrity_command.FullCommand():
			doIntegrity()
		case sip_command.FullCommand():
			doSIP()
		default:
			return false
		}
		return true
	})
}
