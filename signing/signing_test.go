package signing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const codesignFixture = `Executable=/Applications/Safari.app/Contents/MacOS/Safari
Identifier=com.apple.Safari
Format=app bundle with Mach-O universal (x86_64 arm64e)
CodeDirectory v=20500 size=4523 flags=0x10000(runtime) hashes=131+7 location=embedded
Signature size=4523
Authority=Software Signing
Authority=Apple Code Signing Certification Authority
Authority=Apple Root CA
Signed Time=12 Aug 2026 at 09:15:02
Info.plist entries=41
TeamIdentifier=not set
Sealed Resources version=2 rules=13 files=183
`

func TestParseCodesignInfo(t *testing.T) {
	info := ParseCodesignInfo(codesignFixture)

	assert.Equal(t, "com.apple.Safari", info.Identifier)
	assert.Equal(t, "not set", info.TeamIdentifier)
	assert.Equal(t, []string{
		"Software Signing",
		"Apple Code Signing Certification Authority",
		"Apple Root CA"}, info.Authority)
	assert.Equal(t, "0x10000(runtime)", info.Flags)
	assert.True(t, info.Runtime)
	assert.False(t, info.Adhoc())
	assert.Equal(t, "12 Aug 2026 at 09:15:02", info.SignedTime)
}

func TestParseCodesignInfoAdhoc(t *testing.T) {
	info := ParseCodesignInfo(`Executable=/tmp/a.out
Identifier=a.out
Format=Mach-O thin (arm64)
CodeDirectory v=20400 size=450 flags=0x2(adhoc) hashes=8+2 location=embedded
Signature=adhoc
`)
	assert.Equal(t, "0x2(adhoc)", info.Flags)
	assert.True(t, info.Adhoc())
	assert.False(t, info.Runtime)
	assert.Empty(t, info.Authority)
}

const entitlementsFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>com.apple.security.app-sandbox</key>
	<true/>
	<key>com.apple.security.network.client</key>
	<false/>
	<key>com.apple.application-identifier</key>
	<string>TEAM123.com.example.tool</string>
</dict>
</plist>
`

func TestDecodeEntitlements(t *testing.T) {
	// Simulate the legacy blob header in front of the XML.
	blob := append([]byte{0xfa, 0xde, 0x71, 0x71, 0, 0, 0, 8},
		[]byte(entitlementsFixture)...)

	ents, err := DecodeEntitlements(blob)
	require.NoError(t, err)

	sandboxed, pres := ents.Get("com.apple.security.app-sandbox")
	assert.True(t, pres)
	assert.Equal(t, true, sandboxed)

	app_id, _ := ents.Get("com.apple.application-identifier")
	assert.Equal(t, "TEAM123.com.example.tool", app_id)

	// Keys come out sorted.
	assert.Equal(t, []string{
		"com.apple.application-identifier",
		"com.apple.security.app-sandbox",
		"com.apple.security.network.client"}, ents.Keys())
}

func TestDecodeEntitlementsEmpty(t *testing.T) {
	ents, err := DecodeEntitlements(nil)
	require.NoError(t, err)
	assert.Empty(t, ents.Keys())
}
