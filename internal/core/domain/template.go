package domain

import (
	"fmt"
	"strings"

	"github.com/lueurxax/greeter/internal/core/errors"
)

// NamePlaceholder is the verb a greeting template formats the name with.
const NamePlaceholder = "%s"

// ValidateTemplate reports whether template holds exactly one name placeholder
// and no other formatting verbs. Literal percent signs must be written as %%.
func ValidateTemplate(template string) error {
	if strings.Count(template, NamePlaceholder) != 1 {
		return fmt.Errorf("%w: %q", errors.ErrInvalidTemplate, template)
	}

	rest := strings.ReplaceAll(strings.Replace(template, NamePlaceholder, "", 1), "%%", "")
	if strings.Contains(rest, "%") {
		return fmt.Errorf("%w: %q", errors.ErrInvalidTemplate, template)
	}

	return nil
}
