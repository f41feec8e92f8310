package asnutil

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	b, err := ParseHex("0x30 06 | 01:01-ff\n02 01 05")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x06, 0x01, 0x01, 0xff, 0x02, 0x01, 0x05}, b)

	_, err = ParseHex("zz")
	require.Error(t, err)
	assert.True(t, merry.Is(err, ErrInvalidHexString))
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in  string
		exp int
		err bool
	}{
		{in: "12", exp: 12},
		{in: "0x1e", exp: 30},
		{in: "0x0100", exp: 256},
		{in: "0xzz", err: true},
		{in: "0x0102030405", err: true},
		{in: "twelve", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseInt(tc.in)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, v)
		})
	}
}
