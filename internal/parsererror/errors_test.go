package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNotFoundError(t *testing.T) {
	err := &FileNotFoundError{Path: "/home/user/Documents/deposits.csv"}

	assert.Contains(t, err.Error(), "file not found")
	assert.Contains(t, err.Error(), "/home/user/Documents/deposits.csv")
}

func TestUndecodableError(t *testing.T) {
	err := &UndecodableError{
		Path:  "deposits.csv",
		Tried: []string{"utf-8-sig", "utf-8", "latin-1", "windows-1252"},
	}

	assert.Contains(t, err.Error(), "deposits.csv")
	assert.Contains(t, err.Error(), "utf-8-sig, utf-8, latin-1, windows-1252")
}

func TestAmountErrorUnwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &AmountError{Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "'abc'")
	assert.Contains(t, err.Error(), "not a number")
	assert.ErrorIs(t, err, cause)
}
