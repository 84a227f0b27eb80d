package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDomain(t *testing.T) {
	assert.NoError(t, ValidateDomain("com.apple.finder"))
	assert.NoError(t, ValidateDomain(GlobalDomain))
	assert.NoError(t, ValidateDomain("org.example.my-app"))

	assert.Error(t, ValidateDomain(""))
	assert.Error(t, ValidateDomain("-rf"))
	assert.Error(t, ValidateDomain("bad domain"))
	assert.Error(t, ValidateDomain("/Library/Preferences/foo"))
}

func TestParseReadType(t *testing.T) {
	assert.Equal(t, "boolean", ParseReadType("Type is boolean\n"))
	assert.Equal(t, "integer", ParseReadType("Type is integer"))
	assert.Equal(t, "", ParseReadType("garbage"))
}

func TestTypeFlag(t *testing.T) {
	for in, expected := range map[string]string{
		"":        "-string",
		"string":  "-string",
		"int":     "-int",
		"integer": "-int",
		"bool":    "-bool",
		"float":   "-float",
	} {
		flag, err := typeFlag(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, flag)
	}

	_, err := typeFlag("dict")
	assert.Error(t, err)
}

const domainPlistFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ShowPathbar</key>
	<true/>
	<key>FXPreferredViewStyle</key>
	<string>Nlsv</string>
	<key>WindowCount</key>
	<integer>3</integer>
</dict>
</plist>
`

func TestDecodeDomainPlist(t *testing.T) {
	rows, err := DecodeDomainPlist([]byte(domainPlistFixture))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Sorted by key.
	key, _ := rows[0].Get("Key")
	assert.Equal(t, "FXPreferredViewStyle", key)

	key, _ = rows[1].Get("Key")
	value, _ := rows[1].Get("Value")
	assert.Equal(t, "ShowPathbar", key)
	assert.Equal(t, true, value)

	_, err = DecodeDomainPlist([]byte("not a plist"))
	assert.Error(t, err)
}
