package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullableIntUnmarshal(t *testing.T) {
	t.Parallel()

	type payload struct {
		Years NullableInt `json:"years"`
	}

	tests := []struct {
		name string
		json string
		want *int
	}{
		{"numeric string", `{"years":"5"}`, intPtr(5)},
		{"padded string", `{"years":" 12 "}`, intPtr(12)},
		{"number", `{"years":7}`, intPtr(7)},
		{"float truncates", `{"years":3.9}`, intPtr(3)},
		{"unparseable string", `{"years":"a few"}`, nil},
		{"empty string", `{"years":""}`, nil},
		{"null", `{"years":null}`, nil},
		{"absent", `{}`, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.json), &p))
			if tc.want == nil {
				require.Nil(t, p.Years.Value)
				return
			}
			require.NotNil(t, p.Years.Value)
			require.Equal(t, *tc.want, *p.Years.Value)
		})
	}
}

func TestNullableIntMarshal(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(NullableInt{})
	require.NoError(t, err)
	require.Equal(t, "null", string(out))

	out, err = json.Marshal(NullableInt{Value: intPtr(42)})
	require.NoError(t, err)
	require.Equal(t, "42", string(out))
}

func intPtr(v int) *int { return &v }
