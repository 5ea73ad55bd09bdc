package guard

import (
	"fmt"
	"strings"
)

// OneOf checks that `value` is one of the `allowed` members of an
// enumeration.
func OneOf[T comparable](name string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	members := make([]string, len(allowed))
	for i, a := range allowed {
		members[i] = fmt.Sprintf("`%v`", a)
	}
	return invalid(
		name,
		"must be one of %s; found `%v`",
		strings.Join(members, ", "),
		value,
	)
}
