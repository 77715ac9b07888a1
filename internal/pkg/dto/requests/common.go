package requests

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// AgeInput accepts the age either as a JSON string (as typed into the form)
// or as a JSON number.
type AgeInput string

func (a *AgeInput) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*a = AgeInput(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*a = AgeInput(number.String())
	return nil
}

func (a AgeInput) String() string {
	return strings.TrimSpace(string(a))
}
