package connector

import "encoding/json"

// decodeJSON unmarshals an error payload without failing the caller when the
// backend returned a non-JSON body.
func decodeJSON(body []byte, target interface{}) error {
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, target)
}
