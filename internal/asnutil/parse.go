package asnutil

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
)

var ErrInvalidHexString = errors.New("invalid hex string")

// ParseHex decodes a hex string, ignoring whitespace and the formatting
// characters '|', ':' and '-' so that dumps copied from other tools can be
// pasted directly.  An optional "0x" prefix is accepted.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '|', ':', '-':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, merry.Here(ErrInvalidHexString).WithCause(err)
	}
	return b, nil
}

// Hex2bytes is ParseHex for inputs known to be valid, like test fixtures.
// It panics on malformed input.
func Hex2bytes(s string) []byte {
	b, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseInt parses an integer value from a string.  The string
// may be a decimal number, or a hex string, prefixed with "0x".
func ParseInt(s string) (int, error) {
	if strings.HasPrefix(s, "0x") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return 0, merry.Here(ErrInvalidHexString).WithCause(err)
		}
		if len(b) > 4 {
			return 0, merry.Here(ErrInvalidHexString).Append("must be max 4 bytes (8 hex characters)")
		}
		var v int
		for _, c := range b {
			v = v<<8 | int(c)
		}
		return v, nil
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return int(i), nil
}
