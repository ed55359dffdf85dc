package model

import "fmt"

// labeled is an enumeration with a stable ASCII label.
type labeled interface {
	~int
	Label() string
}

// parseLabel returns the value among values whose Label equals text.
func parseLabel[T labeled](kind string, text []byte, values ...T) (T, error) {
	for _, v := range values {
		if v.Label() == string(text) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, text)
}
