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
	"strings"

	"github.com/Velocidex/ordereddict"
	"github.com/alecthomas/kingpin/v2"

	"github.com/analogsec/analog/descriptor"
	"github.com/analogsec/analog/logging"
)

var (
	acl_command = app.Command("acl",
		"Ordered ACL entries - the real DACL analogue.")

	acl_list      = acl_command.Command("list", "List ACL entries on a path.")
	acl_list_path = acl_list.Arg("path", "File to inspect.").
			Required().String()

	acl_grant = acl_command.Command("grant",
		"Append an ACL entry with chmod +a.")
	acl_grant_principal = acl_grant.Arg("principal",
		"user:name or group:name.").Required().String()
	acl_grant_perms = acl_grant.Arg("perms",
		"Comma separated permissions, e.g. read,write.").Required().String()
	acl_grant_path = acl_grant.Arg("path", "File to change.").
			Required().String()
	acl_grant_deny = acl_grant.Flag("deny",
		"Add a deny entry instead of allow.").Bool()

	acl_revoke = acl_command.Command("revoke",
		"Remove a matching ACL entry with chmod -a.")
	acl_revoke_principal = acl_revoke.Arg("principal",
		"user:name or group:name.").Required().String()
	acl_revoke_perms = acl_revoke.Arg("perms",
		"Comma separated permissions of the entry to remove.").
		Required().String()
	acl_revoke_path = acl_revoke.Arg("path", "File to change.").
			Required().String()
	acl_revoke_deny = acl_revoke.Flag("deny",
		"The entry to remove is a deny entry.").Bool()
)

func doACLList() {
	config_obj := load_config()

	aces, err := descriptor.ReadACL(context.Background(),
		*acl_list_path, config_obj.ToolPath("ls"))
	kingpin.FatalIfError(err, "Reading ACL on %v", *acl_list_path)

	rows := []*ordereddict.Dict{}
	for _, ace := range aces {
		rows = append(rows, ace.ToDict())
	}
	renderRows(config_obj, rows)
}

func doACLGrant() {
	config_obj := load_config()

	perms := strings.Split(*acl_grant_perms, ",")
	err := descriptor.Grant(context.Background(),
		*acl_grant_path, *acl_grant_principal,
		!*acl_grant_deny, perms, config_obj.ToolPath("chmod"))
	kingpin.FatalIfError(err, "Granting on %v", *acl_grant_path)

	logging.LogAudit(config_obj, "acl grant", ordereddict.NewDict().
		Set("Path", *acl_grant_path).
		Set("Principal", *acl_grant_principal).
		Set("Perms", *acl_grant_perms).
		Set("Deny", *acl_grant_deny))
}

func doACLRevoke() {
	config_obj := load_config()

	perms := strings.Split(*acl_revoke_perms, ",")
	err := descriptor.Revoke(context.Background(),
		*acl_revoke_path, *acl_revoke_principal,
		!*acl_revoke_deny, perms, config_obj.ToolPath("chmod"))
	kingpin.FatalIfError(err, "Revoking on %v", *acl_revoke_path)

	logging.LogAudit(config_obj, "acl revoke", ordereddict.NewDict().
		Set("Path", *acl_revoke_path).
		Set("Principal", *acl_revoke_principal).
		Set("Perms", *acl_revoke_perms).
		Set("Deny", *acl_revoke_deny))
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case acl_list.FullCommand():
			doACLList()
		case acl_grant.FullCommand():
			doACLGrant()
		case acl_revoke.FullCommand():
			doACLRevoke()
		default:
			return false
		}
		return true
	})
}
