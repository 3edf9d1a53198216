package main

import (
	"fmt"
	"strings"
)

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireAtMostOne returns an error if more than one of the given flags is set.
func requireAtMostOne(flags ...flagSet) error {
	var set []string
	for _, f := range flags {
		if f.isSet {
			set = append(set, f.name)
		}
	}

	if len(set) > 1 {
		return fmt.Errorf("only one of %s can be specified", strings.Join(set, ", "))
	}
	return nil
}
