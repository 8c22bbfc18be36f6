package maps

import (
	"bytes"
	"encoding/json"
)

// marshalPairs encodes parallel key/value slices as a JSON object whose
// members appear in slice order. Non-string keys (numbers, booleans) are
// rendered as JSON strings, mirroring how encoding/json treats Go map keys.
// The byte layout is not a stable contract; only the member order is.
func marshalPairs[K comparable, V any](keys []K, values []V) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		if len(keyJSON) == 0 || keyJSON[0] != '"' {
			keyJSON, err = json.Marshal(string(keyJSON))
			if err != nil {
				return nil, err
			}
		}

		buf.Write(keyJSON)
		buf.WriteByte(':')

		valueJSON, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}

		buf.Write(valueJSON)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
