package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// parseID parses an animal identifier argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// parseFloat parses a finite numeric argument named name.
func parseFloat(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || !types.IsFinite(v) {
		return 0, fmt.Errorf("%w: %s %q is not a number", types.ErrValidation, name, arg)
	}
	return v, nil
}
