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

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/config"
	"github.com/analogsec/analog/reporting"
)

// renderRows writes rows to stdout. The --format flag wins over the
// config default, which wins over the terminal heuristic.
func renderRows(config_obj *config.Config, rows []*ordereddict.Dict) {
	requested := *format_flag
	if requested == "" && config_obj.Output != nil {
		requested = config_obj.Output.Format
	}

	format := reporting.ResolveFormat(requested, os.Stdout)
	err := reporting.Render(format, os.Stdout, rows)
	kingpin.FatalIfError(err, "Rendering output")
}
