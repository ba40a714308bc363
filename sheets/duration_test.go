package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "00"},
		{5, "05"},
		{59, "59"},
		{60, "01:00"},
		{65, "01:05"},
		{600, "10:00"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7325, "02:02:05"},
		{360000, "100:00:00"},
		{-5, "00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSeconds(tc.in), "FormatSeconds(%d)", tc.in)
	}
}
