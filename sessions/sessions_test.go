package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const whoFixture = `alice    console      Aug 20 09:14
alice    ttys001      Aug 23 10:02 (192.168.1.50)
bob      ttys002      Aug 23 11:45
`

func TestParseWhoOutput(t *testing.T) {
	result := ParseWhoOutput(whoFixture)
	require.Len(t, result, 3)

	assert.Equal(t, "alice", result[0].User)
	assert.Equal(t, "console", result[0].Terminal)
	assert.Equal(t, "", result[0].Host)

	assert.Equal(t, "ttys001", result[1].Terminal)
	assert.Equal(t, "192.168.1.50", result[1].Host)

	assert.Equal(t, "bob", result[2].User)
}

func TestParseWhoOutputEmpty(t *testing.T) {
	assert.Empty(t, ParseWhoOutput(""))
	assert.Empty(t, ParseWhoOutput("short line\n"))
}

func TestSessionToDict(t *testing.T) {
	row := (&Session{User: "alice", Terminal: "console"}).ToDict()
	assert.Equal(t, []string{"User", "Terminal", "Host", "Started"},
		row.Keys())

	// Zero time renders empty, not the epoch.
	started, _ := row.Get("Started")
	assert.Equal(t, "", started)
}
