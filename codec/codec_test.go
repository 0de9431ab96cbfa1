package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{name: "json", found: true},
		{name: "go-json", found: true},
		{name: "msgpack", found: false},
		{name: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			require.Equal(t, tt.found, ok)
			if ok {
				require.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecsAgree(t *testing.T) {
	type payload struct {
		ID   int64   `json:"id"`
		Name *string `json:"name,omitempty"`
	}

	name := "Example Net"
	in := payload{ID: 42, Name: &name}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b, err := c.Marshal(in)
		require.NoError(t, err)

		var out payload
		require.NoError(t, c.Unmarshal(b, &out))
		require.Equal(t, in, out)
	}
}
