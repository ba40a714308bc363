package uno

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ronin prefix rewritten", "ronin:a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0", "0xa1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0"},
		{"hex form unchanged", "0xa1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0", "0xa1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0"},
		{"empty passes through", "", ""},
		{"prefix is case sensitive", "RONIN:abc", "RONIN:abc"},
		{"prefix only", "ronin:", "0x"},
		{"prefix not at start", "xronin:abc", "xronin:abc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeAddress(tc.in))
		})
	}
}
