// Package codec encodes cluster reports.
//
// A report is the JSON object written by Result.Encode and the run command's
// --output flag:
//
//	{
//	  "k": 2, "attempts": 1, "passes": 10, "converged": true,
//	  "clusters": [{"cluster": 0, "size": 6, "documents": ["..."]}],
//	  "labels": {"java sales": "0", "scala manager": "1"}
//	}
//
// Labels keys are normalized documents and values are decimal cluster
// indices. Every codec in this package produces that object, so a report
// written with one can be read back with any other.
package codec

import (
	"fmt"
	"strings"
)

// Codec turns a report into bytes and back.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var builtin = []Codec{JSON{}, GoJSON{}}

// ByName returns the built-in codec selected by --codec.
func ByName(name string) (Codec, bool) {
	for _, c := range builtin {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names lists the built-in codec names, for flag help and error messages.
func Names() string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}

// MustMarshal encodes v or panics. Tests only.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
