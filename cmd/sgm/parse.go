// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFloats converts each argument to a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %d (%q): not a number", i+1, arg)
		}
		out[i] = v
	}

	return out, nil
}

// parseLiteral splits a shape literal "kind:p1,p2,..." into its kind and
// parameters. "kind:" and a bare "kind" both mean no parameters.
func parseLiteral(lit string) (string, []float64, error) {
	kind, list, _ := strings.Cut(lit, ":")
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return "", nil, fmt.Errorf("shape literal %q: want kind:p1,p2,...", lit)
	}
	if strings.TrimSpace(list) == "" {
		return kind, nil, nil
	}

	params, err := parseFloats(strings.Split(list, ","))
	if err != nil {
		return "", nil, fmt.Errorf("shape literal %q: %w", lit, err)
	}

	return kind, params, nil
}
