package reporting

import (
	"bytes"
	"testing"

	"github.com/Velocidex/ordereddict"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func sampleRows() []*ordereddict.Dict {
	return []*ordereddict.Dict{
		ordereddict.NewDict().
			Set("Name", "launchd").
			Set("Pid", 1),
		ordereddict.NewDict().
			Set("Name", "analog").
			Set("Pid", 4242),
	}
}

func TestRenderJSONL(t *testing.T) {
	out := &bytes.Buffer{}
	err := Render(FormatJSONL, out, sampleRows())
	assert.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("fixtures"))
	g.Assert(t, "TestRenderJSONL", out.Bytes())
}

func TestRenderCSV(t *testing.T) {
	out := &bytes.Buffer{}
	err := Render(FormatCSV, out, sampleRows())
	assert.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("fixtures"))
	g.Assert(t, "TestRenderCSV", out.Bytes())
}

func TestRenderTable(t *testing.T) {
	out := &bytes.Buffer{}
	err := Render(FormatTable, out, sampleRows())
	assert.NoError(t, err)

	// Table layout details belong to tablewriter - we only care
	// that headers keep their case and cells make it through.
	assert.Contains(t, out.String(), "Name")
	assert.Contains(t, out.String(), "launchd")
	assert.Contains(t, out.String(), "4242")
}

func TestRenderJSONRoundTrip(t *testing.T) {
	out := &bytes.Buffer{}
	err := Render(FormatJSON, out, sampleRows())
	assert.NoError(t, err)
	assert.Contains(t, out.String(), `"Name": "launchd"`)
}

func TestMissingKeysRenderEmpty(t *testing.T) {
	rows := []*ordereddict.Dict{
		ordereddict.NewDict().Set("A", "1").Set("B", "2"),
		ordereddict.NewDict().Set("A", "3"),
	}

	out := &bytes.Buffer{}
	err := Render(FormatCSV, out, rows)
	assert.NoError(t, err)
	assert.Equal(t, "A,B\n1,2\n3,\n", out.String())
}
