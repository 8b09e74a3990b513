package collections

import "strings"

// StringSlice is a repeatable string flag.
type StringSlice []string

// String implements the flag.Value interface.
func (i *StringSlice) String() string {
	if i == nil {
		return ""
	}
	return strings.Join(*i, ",")
}

// Set implements the flag.Value interface.
func (i *StringSlice) Set(value string) error {
	*i = append(*i, value)
	return nil
}
