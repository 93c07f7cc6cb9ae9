// Package common holds small helpers shared by the command line tools.
package common

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidHex is returned for input that is not an even length hex string.
var ErrInvalidHex = errors.New("invalid hex string")

// FileExist reports whether a regular file or directory exists at path.
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AbsolutePath returns path joined onto dir unless it is already absolute.
func AbsolutePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// IsHex reports whether s is a hex string, with or without a 0x prefix.
func IsHex(s string) bool {
	s = strip0x(s)
	if len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// FromHex decodes a hex string, with or without a 0x prefix.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strip0x(s))
	if err != nil {
		return nil, ErrInvalidHex
	}
	return b, nil
}

// ToHex returns the uppercase hex form used by the ledger.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func strip0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
