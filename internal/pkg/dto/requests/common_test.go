package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeInputUnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected AgeInput
	}{
		{name: "string", body: `{"age":"42"}`, expected: "42"},
		{name: "number", body: `{"age":70}`, expected: "70"},
		{name: "null", body: `{"age":null}`, expected: ""},
		{name: "missing", body: `{}`, expected: ""},
		{name: "free text", body: `{"age":"forty"}`, expected: "forty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var request EstimateRisk
			require.NoError(t, json.Unmarshal([]byte(tc.body), &request))
			assert.Equal(t, tc.expected, request.Age)
		})
	}

	t.Run("Rejects Objects", func(t *testing.T) {
		var request EstimateRisk
		assert.Error(t, json.Unmarshal([]byte(`{"age":{"value":1}}`), &request))
	})
}
