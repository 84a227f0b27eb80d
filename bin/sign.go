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

	"github.com/analogsec/analog/json"
	"github.com/analogsec/analog/signing"
)

var (
	sign_command = app.Command("sign",
		"Code signature inspection - the Authenticode analogue.")

	sign_verify      = sign_command.Command("verify", "Verify a signature.")
	sign_verify_path = sign_verify.Arg("path",
		"Binary or bundle to verify.").Required().String()

	sign_show      = sign_command.Command("show", "Show signing info.")
	sign_show_path = sign_show.Arg("path",
		"Binary or bundle to inspect.").Required().String()

	sign_entitlements      = sign_command.Command("entitlements", "Dump entitlements.")
	sign_entitlements_path = sign_entitlements.Arg("path",
		"Binary or bundle to inspect.").Required().String()
)

func doSignVerify() {
	config_obj := load_config()

	result, err := signing.Verify(context.Background(),
		*sign_verify_path, config_obj.ToolPath("codesign"))
	kingpin.FatalIfError(err, "Verifying %v", *sign_verify_path)

	renderRows(config_obj, []*ordereddict.Dict{result.ToDict()})
}

func doSignShow() {
	config_obj := load_config()

	info, err := signing.Show(context.Background(),
		*sign_show_path, config_obj.ToolPath("codesign"))
	kingpin.FatalIfError(err, "Reading signature of %v", *sign_show_path)

	renderRows(config_obj, []*ordereddict.Dict{info.ToDict()})
}

func doSignEntitlements() {
	config_obj := load_config()

	entitlements, err := signing.Entitlements(context.Background(),
		*sign_entitlements_path, config_obj.ToolPath("codesign"))
	kingpin.FatalIfError(err, "Reading entitlements of %v",
		*sign_entitlements_path)

	// Entitlements are one nested document, not a row set.
	fmt.Println(string(json.MustMarshalIndent(entitlements)))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case sign_verify.FullCommand():
			doSignVerify()
		case sign_show.FullCommand():
			doSignShow()
		case sign_entitlements.FullCommand():
			doSignEntitlements()
		default:
			return false
		}
		return true
	})
}
