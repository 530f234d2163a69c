package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]interface{}
		want    []string
	}{
		{
			name:    "all missing",
			answers: map[string]interface{}{},
			want:    []string{"age", "smoker", "exercise", "diet"},
		},
		{
			name:    "null and empty string count as missing",
			answers: map[string]interface{}{"age": nil, "smoker": "", "exercise": "daily", "diet": "balanced"},
			want:    []string{"age", "smoker"},
		},
		{
			name:    "false and zero are answers",
			answers: map[string]interface{}{"age": json.Number("0"), "smoker": false, "exercise": "never", "diet": "x"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingFields(tt.answers))
		})
	}
}

func TestDecodeObjectKeepsNumbers(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"age":45,"weight":72.50}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("45"), obj["age"])
	assert.Equal(t, json.Number("72.50"), obj["weight"])

	_, err = DecodeObject([]byte(`null`))
	assert.Error(t, err)
	_, err = DecodeObject([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestDecodeArray(t *testing.T) {
	items, ok := DecodeArray(json.RawMessage(`[]`))
	require.True(t, ok)
	assert.Empty(t, items)

	for _, raw := range []string{``, `null`, `"smoking"`, `{"a":1}`, `12`} {
		_, ok := DecodeArray(json.RawMessage(raw))
		assert.False(t, ok, raw)
	}
}

func TestFactorNames(t *testing.T) {
	items, ok := DecodeArray(json.RawMessage(`["smoking", {"name":"poor diet"}, {"factor":"low exercise"}, 7, "  "]`))
	require.True(t, ok)
	assert.Equal(t, []string{"smoking", "poor diet", "low exercise"}, FactorNames(items))
}

func TestToBool(t *testing.T) {
	v, ok := ToBool("Yes")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = ToBool("never")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = ToBool("maybe")
	assert.False(t, ok)
}
