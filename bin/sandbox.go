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

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/logging"
	"github.com/analogsec/analog/sandbox"
)

var (
	sandbox_command = app.Command("sandbox",
		"Path allow-list sandbox - the restricted token analogue.")

	sandbox_check      = sandbox_command.Command("check", "Check a path against the policy.")
	sandbox_check_path = sandbox_check.Arg("path", "Path to check.").
				Required().String()
	sandbox_check_write = sandbox_check.Flag("write",
		"Check write access instead of read.").Bool()

	sandbox_run     = sandbox_command.Command("run", "Run a command confined by the policy.")
	sandbox_run_cmd = sandbox_run.Arg("command",
		"Command line to run, quoted as one argument.").Required().String()
	sandbox_run_uid = sandbox_run.Flag("uid",
		"Run the child as this uid (requires root).").Uint32()
	sandbox_run_gid = sandbox_run.Flag("gid",
		"Run the child as this gid (requires root).").Uint32()
	sandbox_run_net = sandbox_run.Flag("net",
		"Allow network access.").Bool()
)

func doSandboxCheck() {
	config_obj := load_config()

	policy := sandbox.FromConfig(config_obj)

	access := sandbox.AccessRead
	if *sandbox_check_write {
		access = sandbox.AccessWrite
	}

	result := "allowed"
	err := policy.Check(*sandbox_check_path, access)
	if err != nil {
		result = "denied"
	}

	renderRows(config_obj, []*ordereddict.Dict{
		ordereddict.NewDict().
			Set("Path", *sandbox_check_path).
			Set("Access", access.String()).
			Set("Result", result),
	})
}

func doSandboxRun() {
	config_obj := load_config()

	policy := sandbox.FromConfig(config_obj)
	if *sandbox_run_net {
		policy.AllowNetwork = true
	}

	argv, err := sandbox.SplitCommand(*sandbox_run_cmd)
	kingpin.FatalIfError(err, "Parsing command")

	logging.LogAudit(config_obj, "sandbox run", ordereddict.NewDict().
		Set("Command", *sandbox_run_cmd).
		Set("Uid", *sandbox_run_uid).
		Set("Gid", *sandbox_run_gid).
		Set("AllowNetwork", policy.AllowNetwork))

	// Unlike the other tools, sandbox-exec must be an absolute
	// path - only pass an explicit override through.
	sandbox_exec := ""
	if config_obj.Tools != nil {
		sandbox_exec = config_obj.Tools["sandbox-exec"]
	}

	exit_code, err := sandbox.RunConfined(context.Background(),
		policy, argv, sandbox.RunOptions{
			Uid:             *sandbox_run_uid,
			Gid:             *sandbox_run_gid,
			SandboxExecPath: sandbox_exec,
			Stdout:          os.Stdout,
			Stderr:          os.Stderr,
		})
	kingpin.FatalIfError(err, "Running confined command")

	os.Exit(exit_code)
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case sandbox_check.FullCommand():
			doSandboxCheck()
		case sandbox_run.FullCommand():
			doSandboxRun()
		default:
			return false
		}
		return true
	})
}
