package test

import (
	"fmt"
	"strings"
)

// id formats optional tags into a prefix for failure messages. tags are useful
// when the same check is made in a loop.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = fmt.Sprintf("%v", t)
	}
	return fmt.Sprintf("%s: ", strings.Join(s, ", "))
}
