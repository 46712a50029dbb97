// Package encodingutils decodes the raw input bytes by trying an
// ordered list of candidate text encodings. The first encoding that
// decodes the entire source without error wins; selection happens once
// per run and is never repeated mid-file.
package encodingutils

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/yixiangWangTrv/deposit-export/internal/parsererror"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder is one candidate encoding in the fallback list.
type Decoder struct {
	Name   string
	Decode func(data []byte) (string, error)
}

// Candidates returns the ordered trial list: UTF-8 with an optional
// byte-order mark, plain UTF-8, Latin-1, Windows-1252.
func Candidates() []Decoder {
	return []Decoder{
		{Name: "utf-8-sig", Decode: decodeUTF8SIG},
		{Name: "utf-8", Decode: decodeUTF8},
		{Name: "latin-1", Decode: charmapDecoder(charmap.ISO8859_1)},
		{Name: "windows-1252", Decode: charmapDecoder(charmap.Windows1252)},
	}
}

// DecodeBytes runs the fallback list against data and returns the
// decoded text together with the name of the winning encoding. If no
// candidate succeeds it returns an UndecodableError naming every
// attempted encoding; path is only used for that error message.
func DecodeBytes(data []byte, path string) (string, string, error) {
	var tried []string
	for _, dec := range Candidates() {
		text, err := dec.Decode(data)
		if err == nil {
			return text, dec.Name, nil
		}
		tried = append(tried, dec.Name)
	}
	return "", "", &parsererror.UndecodableError{Path: path, Tried: tried}
}

// decodeUTF8SIG is strict UTF-8 with a leading BOM stripped when
// present.
func decodeUTF8SIG(data []byte) (string, error) {
	return decodeUTF8(bytes.TrimPrefix(data, utf8BOM))
}

// decodeUTF8 is strict UTF-8: any invalid byte sequence fails the
// whole candidate instead of being replaced.
func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

var errInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
}
