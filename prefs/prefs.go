// Preference domains via defaults(1).
//
// The macOS defaults database is the nearest thing to the Windows
// registry: per-user key/value storage organized into domains
// instead of hives. The defaults tool is the supported interface -
// writing the plist files directly bypasses the cfprefsd cache and
// loses changes.

package prefs

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/utils"
)

// GlobalDomain is the domain read by every application, like
// HKEY_CURRENT_USER for settings.
const GlobalDomain = "NSGlobalDomain"

var domainRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

func ValidateDomain(domain string) error {
	if domain == GlobalDomain {
		return nil
	}
	if !domainRegex.MatchString(domain) {
		return fmt.Errorf("invalid preference domain %q", domain)
	}
	return nil
}

type Value struct {
	// One of string, int, bool, float.
	Type string
	Data string
}

// Read returns a key's value and its defaults type.
func Read(ctx context.Context, domain, key, defaults_path string) (
	*Value, error) {

	err := ValidateDomain(domain)
	if err != nil {
		return nil, err
	}

	if defaults_path == "" {
		defaults_path = "defaults"
	}

	stdout, _, err := utils.RunTool(ctx, defaults_path,
		"read", domain, key)
	if err != nil {
		return nil, err
	}

	result := &Value{Data: strings.TrimRight(string(stdout), "\n")}

	type_out, _, err := utils.RunTool(ctx, defaults_path,
		"read-type", domain, key)
	if err == nil {
		result.Type = ParseReadType(string(type_out))
	}

	return result, nil
}

// ParseReadType extracts the type name from "Type is boolean".
func ParseReadType(output string) string {
	output = strings.TrimSpace(output)
	result := strings.TrimPrefix(output, "Type is ")
	if result == output {
		return ""
	}
	return result
}

// Write sets a key with an explicit type flag so defaults does not
// have to guess.
func Write(ctx context.Context, domain, key string, value *Value,
	defaults_path string) error {

	err := ValidateDomain(domain)
	if err != nil {
		return err
	}

	if defaults_path == "" {
		defaults_path = "defaults"
	}

	type_flag, err := typeFlag(value.Type)
	if err != nil {
		return err
	}

	_, _, err = utils.RunTool(ctx, defaults_path,
		"write", domain, key, type_flag, value.Data)
	return err
}

func typeFlag(value_type string) (string, error) {
	switch value_type {
	case "", "string":
		return "-string", nil
	case "int", "integer":
		return "-int", nil
	case "bool", "boolean":
		return "-bool", nil
	case "float", "real":
		return "-float", nil
	}
	return "", fmt.Errorf("unsupported preference type %q", value_type)
}

func Delete(ctx context.Context, domain, key, defaults_path string) error {
	err := ValidateDomain(domain)
	if err != nil {
		return err
	}

	if defaults_path == "" {
		defaults_path = "defaults"
	}

	_, _, err = utils.RunTool(ctx, defaults_path, "delete", domain, key)
	return err
}

// Export dumps a whole domain as ordered key/value rows, like
// exporting a registry key to a .reg file.
func Export(ctx context.Context, domain, defaults_path string) (
	[]*ordereddict.Dict, error) {

	err := ValidateDomain(domain)
	if err != nil {
		return nil, err
	}

	if defaults_path == "" {
		defaults_path = "defaults"
	}

	stdout, _, err := utils.RunTool(ctx, defaults_path,
		"export", domain, "-")
	if err != nil {
		return nil, err
	}

	return DecodeDomainPlist(stdout)
}
