// SPDX-License-Identifier: MIT
// Package: geomlib/query
//
// info.go — Summary (structured) and ShapeInfo (text).
//
// Field order is fixed: kind, area, perimeter, then per kind
//   rectangle: width, height, diagonal, sides, square
//   circle:    radius, diameter
//   triangle:  sides, subtype

package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/geomlib/shape"
)

// Info is the structured summary of one shape. Values are display-rounded.
// Fields that do not apply to the kind are left zero and omitted from
// encoded output.
type Info struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Area      float64 `json:"area" yaml:"area"`
	Perimeter float64 `json:"perimeter" yaml:"perimeter"`

	Width    float64   `json:"width,omitempty" yaml:"width,omitempty"`
	Height   float64   `json:"height,omitempty" yaml:"height,omitempty"`
	Diagonal float64   `json:"diagonal,omitempty" yaml:"diagonal,omitempty"`
	Radius   float64   `json:"radius,omitempty" yaml:"radius,omitempty"`
	Diameter float64   `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Sides    []float64 `json:"sides,omitempty" yaml:"sides,omitempty"`
	IsSquare *bool     `json:"isSquare,omitempty" yaml:"isSquare,omitempty"`
	Subtype  string    `json:"subtype,omitempty" yaml:"subtype,omitempty"`
}

// Summary collects the uniform and kind-specific properties of s.
// Errors: shape.ErrNilShape.
func Summary(s *shape.Shape) (Info, error) {
	if s == nil {
		return Info{}, fmt.Errorf("Summary: %w", shape.ErrNilShape)
	}

	info := Info{
		Kind:      Kind(s),
		Area:      Area(s),
		Perimeter: Perimeter(s),
	}

	// The kind is known here, so the guarded accessors cannot fail.
	switch s.Kind() {
	case shape.KindRectangle:
		info.Width, _ = Width(s)
		info.Height, _ = Height(s)
		info.Diagonal, _ = Diagonal(s)
		info.Sides, _ = Sides(s)
		sq := IsSquare(s)
		info.IsSquare = &sq
	case shape.KindCircle:
		info.Radius, _ = Radius(s)
		info.Diameter, _ = Diameter(s)
	case shape.KindTriangle:
		info.Sides, _ = Sides(s)
		info.Subtype, _ = Subtype(s)
	}

	return info, nil
}

// ShapeInfo renders Summary as "name: value" lines in the fixed field order.
// Errors: shape.ErrNilShape.
func ShapeInfo(s *shape.Shape) (string, error) {
	info, err := Summary(s)
	if err != nil {
		return "", err
	}

	return info.String(), nil
}

// String renders the multi-line text form used by ShapeInfo.
func (i Info) String() string {
	var b strings.Builder
	line := func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	line("kind", i.Kind)
	line("area", num(i.Area))
	line("perimeter", num(i.Perimeter))

	switch shape.Kind(i.Kind) {
	case shape.KindRectangle:
		line("width", num(i.Width))
		line("height", num(i.Height))
		line("diagonal", num(i.Diagonal))
		line("sides", nums(i.Sides))
		line("square", strconv.FormatBool(i.IsSquare != nil && *i.IsSquare))
	case shape.KindCircle:
		line("radius", num(i.Radius))
		line("diameter", num(i.Diameter))
	case shape.KindTriangle:
		line("sides", nums(i.Sides))
		line("subtype", i.Subtype)
	}

	return b.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
