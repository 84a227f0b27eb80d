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
	"github.com/shirou/gopsutil/v4/host"
)

var (
	info_command = app.Command("info", "Host and OS information.")
)

func doInfo() {
	config_obj := load_config()

	info, err := host.InfoWithContext(context.Background())
	kingpin.FatalIfError(err, "Reading host info")

	renderRows(config_obj, []*ordereddict.Dict{
		ordereddict.NewDict().
			Set("Hostname", info.Hostname).
			Set("OS", info.OS).
			Set("Platform", info.Platform).
			Set("PlatformVersion", info.PlatformVersion).
			Set("KernelVersion", info.KernelVersion).
			Set("Arch", info.KernelArch).
			Set("BootTime", info.BootTime).
			Set("Procs", info.Procs),
	})
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		if command == info_command.FullCommand() {
			doInfo()
			return true
		}
		return false
	})
}
