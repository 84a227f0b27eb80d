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

	"github.com/analogsec/analog/logging"
	"github.com/analogsec/analog/prefs"
)

var (
	prefs_command = app.Command("prefs",
		"Preference domains via defaults - the registry analogue.")

	prefs_read        = prefs_command.Command("read", "Read one key.")
	prefs_read_domain = prefs_read.Arg("domain",
		"Preference domain, e.g. com.apple.dock.").Required().String()
	prefs_read_key = prefs_read.Arg("key", "Key to read.").
			Required().String()

	prefs_write        = prefs_command.Command("write", "Write one key.")
	prefs_write_domain = prefs_write.Arg("domain",
		"Preference domain.").Required().String()
	prefs_write_key = prefs_write.Arg("key", "Key to write.").
			Required().String()
	prefs_write_value = prefs_write.Arg("value", "Value to write.").
				Required().String()
	prefs_write_type = prefs_write.Flag("type",
		"Value type.").Default("string").
		Enum("string", "int", "bool", "float")

	prefs_delete        = prefs_command.Command("delete", "Delete one key.")
	prefs_delete_domain = prefs_delete.Arg("domain",
		"Preference domain.").Required().String()
	prefs_delete_key = prefs_delete.Arg("key", "Key to delete.").
				Required().String()

	prefs_export        = prefs_command.Command("export", "Dump a whole domain.")
	prefs_export_domain = prefs_export.Arg("domain",
		"Preference domain.").Required().String()
)

func doPrefsRead() {
	config_obj := load_config()

	value, err := prefs.Read(context.Background(),
		*prefs_read_domain, *prefs_read_key,
		config_obj.ToolPath("defaults"))
	kingpin.FatalIfError(err, "Reading %v %v",
		*prefs_read_domain, *prefs_read_key)

	renderRows(config_obj, []*ordereddict.Dict{
		ordereddict.NewDict().
			Set("Domain", *prefs_read_domain).
			Set("Key", *prefs_read_key).
			Set("Type", value.Type).
			Set("Value", value.Data),
	})
}

func doPrefsWrite() {
	config_obj := load_config()

	err := prefs.Write(context.Background(),
		*prefs_write_domain, *prefs_write_key,
		&prefs.Value{
			Type: *prefs_write_type,
			Data: *prefs_write_value,
		},
		config_obj.ToolPath("defaults"))
	kingpin.FatalIfError(err, "Writing %v %v",
		*prefs_write_domain, *prefs_write_key)

	logging.LogAudit(config_obj, "prefs write", ordereddict.NewDict().
		Set("Domain", *prefs_write_domain).
		Set("Key", *prefs_write_key).
		Set("Type", *prefs_write_type).
		Set("Value", *prefs_write_value))
}

func doPrefsDelete() {
	config_obj := load_config()

	err := prefs.Delete(context.Background(),
		*prefs_delete_domain, *prefs_delete_key,
		config_obj.ToolPath("defaults"))
	kingpin.FatalIfError(err, "Deleting %v %v",
		*prefs_delete_domain, *prefs_delete_key)

	logging.LogAudit(config_obj, "prefs delete", ordereddict.NewDict().
		Set("Domain", *prefs_delete_domain).
		Set("Key", *prefs_delete_key))
}

func doPrefsExport() {
	config_obj := load_config()

	rows, err := prefs.Export(context.Background(),
		*prefs_export_domain, config_obj.ToolPath("defaults"))
	kingpin.FatalIfError(err, "Exporting %v", *prefs_export_domain)

	renderRows(config_obj, rows)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case prefs_read.FullCommand():
			doPrefsRead()
		case prefs_write.FullCommand():
			doPrefsWrite()
		case prefs_delete.FullCommand():
			doPrefsDelete()
		case prefs_export.FullCommand():
			doPrefsExport()
		default:
			return false
		}
		return true
	})
}
