package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Scalar
	}{
		{name: "string", raw: `"hello"`, want: "hello"},
		{name: "number", raw: `42`, want: "42"},
		{name: "float", raw: `4.5`, want: "4.5"},
		{name: "bool", raw: `true`, want: "true"},
		{name: "null", raw: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestScalar_Empty(t *testing.T) {
	assert.True(t, Scalar("").Empty())
	assert.True(t, Scalar("  ").Empty())
	assert.False(t, Scalar("x").Empty())
}
