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
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/config"
	"github.com/analogsec/analog/logging"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("analog",
		"Inspect macOS security internals through their Windows analogues.")

	config_path = app.Flag("config", "The configuration file.").
			Short('c').Envar("ANALOG_CONFIG").String()

	verbose_flag = app.Flag(
		"verbose", "Enable verbose logging.").Short('v').
		Default("false").Bool()

	format_flag = app.Flag(
		"format", "Output format (table, json, jsonl, csv). "+
			"Defaults to table on a terminal, jsonl otherwise.").String()

	nocolor_flag = app.Flag("nocolor", "Disable color output.").Bool()

	command_handlers []CommandHandler
)

// load_config loads and validates the config file, then primes the
// logging subsystem. Each command handler calls this first.
func load_config() *config.Config {
	config_obj, err := config.LoadConfig(*config_path)
	kingpin.FatalIfError(err, "Unable to load config file")

	err = config.Validate(config_obj)
	kingpin.FatalIfError(err, "Invalid config")

	if *nocolor_flag {
		logging.NoColor = true
		if config_obj.Output != nil {
			config_obj.Output.NoColor = true
		}
	}

	err = logging.InitLogging(config_obj)
	kingpin.FatalIfError(err, "Logging")

	if *verbose_flag {
		logging.SetVerbose()
	}

	return config_obj
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate).DefaultEnvars()
	args := os.Args[1:]

	command := kingpin.MustParse(app.Parse(args))

	if !*verbose_flag {
		logging.SuppressLogging = true
	}

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
