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
	"os"
	"strconv"

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/descriptor"
	"github.com/analogsec/analog/logging"
)

var (
	sd_command = app.Command("sd",
		"File security descriptors (owner, mode, ACL, flags, xattrs).")

	sd_show      = sd_command.Command("show", "Show a path's full descriptor.")
	sd_show_path = sd_show.Arg("path", "File to describe.").
			Required().String()
	sd_show_follow = sd_show.Flag("follow",
		"Describe the symlink target instead of the link.").Bool()

	sd_chmod      = sd_command.Command("chmod", "Set the POSIX mode bits.")
	sd_chmod_mode = sd_chmod.Arg("mode", "Octal mode, e.g. 0640.").
			Required().String()
	sd_chmod_path = sd_chmod.Arg("path", "File to change.").
			Required().String()
)

func doSDShow() {
	config_obj := load_config()

	desc, err := descriptor.Describe(context.Background(),
		*sd_show_path, descriptor.Options{
			Follow: *sd_show_follow,
			LsPath: config_obj.ToolPath("ls"),
		})
	kingpin.FatalIfError(err, "Describing %v", *sd_show_path)

	renderRows(config_obj, []*ordereddict.Dict{desc.ToDict()})
}

func doSDChmod() {
	config_obj := load_config()

	mode, err := strconv.ParseUint(*sd_chmod_mode, 8, 32)
	kingpin.FatalIfError(err, "Invalid octal mode %v", *sd_chmod_mode)

	err = os.Chmod(*sd_chmod_path, os.FileMode(mode))
	kingpin.FatalIfError(err, "chmod %v", *sd_chmod_path)

	logging.LogAudit(config_obj, "chmod", ordereddict.NewDict().
		Set("Path", *sd_chmod_path).
		Set("Mode", *sd_chmod_mode))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case sd_show.FullCommand():
			doSDShow()
		case sd_chmod.FullCommand():
			doSDChmod()
		default:
			return false
		}
		return true
	})
}
