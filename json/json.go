// Wrap json library to control encoding.

package json

import (
	"bytes"

	"github.com/Velocidex/json"
	"github.com/Velocidex/ordereddict"
)

// NewEncOpts returns encoding options with the dict encoder
// attached. All marshalling in this repo goes through these options.
func NewEncOpts() *json.EncOpts {
	opts := json.NewEncOpts()
	opts.WithCallback(ordereddict.NewDict(), MarshalJSONDict)
	return opts
}

// MarshalJSONDict encodes an ordereddict.Dict preserving key order.
// This is the row type used throughout the codebase so ordering
// matters for report output.
func MarshalJSONDict(v interface{}, opts *json.EncOpts) ([]byte, error) {
	dict, ok := v.(*ordereddict.Dict)
	if !ok {
		return nil, json.EncoderCallbackSkip
	}

	buf := bytes.Buffer{}
	buf.WriteByte('{')

	for idx, key := range dict.Keys() {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key_bytes, err := json.MarshalWithOptions(key, opts)
		if err != nil {
			return nil, err
		}
		buf.Write(key_bytes)
		buf.WriteByte(':')

		value, _ := dict.Get(key)
		value_bytes, err := json.MarshalWithOptions(value, opts)
		if err != nil {
			return nil, err
		}
		buf.Write(value_bytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
