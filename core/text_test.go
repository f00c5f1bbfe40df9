package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Text
	}{
		{"string", `"F4214T"`, "F4214T"},
		{"integer", `4214`, "4214"},
		{"integral float", `4.0`, "4"},
		{"fraction", `2.5`, "2.5"},
		{"negative", `-1`, "-1"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_UnmarshalJSON_Invalid(t *testing.T) {
	var got Text
	err := json.Unmarshal([]byte(`true`), &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestText_Helpers(t *testing.T) {
	assert.True(t, Text("").IsEmpty())
	assert.True(t, Text("   ").IsEmpty())
	assert.False(t, Text("0").IsEmpty())
	assert.Equal(t, "f4214t", Text("F4214T").Lower())
}
