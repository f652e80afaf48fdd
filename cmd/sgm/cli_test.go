// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomlib/query"
	"github.com/katalvlaran/geomlib/shape"
)

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	a := newApp()
	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(io.Discard)
	a.root.SetArgs(args)
	err := a.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKindsCmd(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	assert.Equal(t, "circle\nrectangle\ntriangle\n", out)

	out, err = run(t, "kinds", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `["circle","rectangle","triangle"]`, out)
}

func TestInfoCmd(t *testing.T) {
	out, err := run(t, "info", "rectangle", "10", "5")
	require.NoError(t, err)
	assert.Equal(t, "kind: rectangle\narea: 50\nperimeter: 30\nwidth: 10\nheight: 5\n"+
		"diagonal: 11.18\nsides: [10, 5, 10, 5]\nsquare: false\n", out)

	out, err = run(t, "info", "circle", "7", "--json")
	require.NoError(t, err)
	var info query.Info
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(out), &info))
	assert.Equal(t, "circle", info.Kind)
	assert.Equal(t, 153.94, info.Area)
	assert.Equal(t, 14.0, info.Diameter)
}

func TestInfoCmd_Errors(t *testing.T) {
	_, err := run(t, "info", "hexagon", "1")
	assert.ErrorIs(t, err, shape.ErrUnknownKind)

	_, err = run(t, "info", "triangle", "1", "2", "3")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters)

	_, err = run(t, "info", "circle", "seven")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")

	_, err = run(t, "info")
	assert.Error(t, err, "kind is required")
}

func TestTolerance(t *testing.T) {
	out, err := run(t, "info", "triangle", "3", "5", "5.830952")
	require.NoError(t, err)
	assert.Contains(t, out, "subtype: versatile right\n")

	out, err = run(t, "info", "triangle", "3", "5", "5.830952", "--tolerance", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "subtype: versatile obtuse\n")

	_, err = run(t, "kinds", "--tolerance=-1")
	assert.Error(t, err)
}

func TestSortCmd(t *testing.T) {
	out, err := run(t, "sort", "--by", "area", "rectangle:10,5", "triangle:40,50,80.99", "circle:7")
	require.NoError(t, err)
	assert.Equal(t, "rectangle(10, 5)\tarea=50\n"+
		"circle(7)\tarea=153.94\n"+
		"triangle(40, 50, 80.99)\tarea=788.65\n", out)

	out, err = run(t, "sort", "--by", "perimeter", "--json", "triangle:3,4,5", "circle:1", "rectangle:1,1")
	require.NoError(t, err)
	var infos []query.Info
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, []string{"rectangle", "circle", "triangle"},
		[]string{infos[0].Kind, infos[1].Kind, infos[2].Kind})

	_, err = run(t, "sort", "--by", "volume", "circle:1")
	assert.Error(t, err)

	_, err = run(t, "sort", "circle:0")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters)
}

func TestEditCmd(t *testing.T) {
	out, err := run(t, "edit", "rectangle", "10", "5", "--to", "20,10")
	require.NoError(t, err)
	assert.Contains(t, out, "event: rectangle-edited\n  width: 10 -> 20\n  height: 5 -> 10\n")
	assert.Contains(t, out, "before:\nkind: rectangle\narea: 50\n")
	assert.Contains(t, out, "after:\nkind: rectangle\narea: 200\n")

	out, err = run(t, "edit", "circle", "7", "--to", "14", "--json")
	require.NoError(t, err)

	var res struct {
		Event struct {
			Type    string `json:"type"`
			Kind    string `json:"kind"`
			Changes []struct {
				Name string  `json:"name"`
				Old  float64 `json:"old"`
				New  float64 `json:"new"`
			} `json:"changes"`
		} `json:"event"`
		Before query.Info `json:"before"`
		After  query.Info `json:"after"`
	}
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(out), &res))
	assert.Equal(t, "circle-edited", res.Event.Type)
	assert.Equal(t, "circle", res.Event.Kind)
	require.Len(t, res.Event.Changes, 1)
	assert.Equal(t, "radius", res.Event.Changes[0].Name)
	assert.Equal(t, 7.0, res.Event.Changes[0].Old)
	assert.Equal(t, 14.0, res.Event.Changes[0].New)
	assert.Equal(t, 7.0, res.Before.Radius)
	assert.Equal(t, 14.0, res.After.Radius)
}

func TestEditCmd_Errors(t *testing.T) {
	_, err := run(t, "edit", "rectangle", "10", "5", "--to", "0,1")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters)

	_, err = run(t, "edit", "rectangle", "10", "5", "--to", "1")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters, "arity mismatch")

	_, err = run(t, "edit", "rectangle", "10", "5")
	assert.Error(t, err, "--to is required")
}

func TestBatchCmd(t *testing.T) {
	path := writeFile(t, "shapes.yaml", `
sort: perimeter
shapes:
  - kind: triangle
    params: [40, 50, 80.99]
  - kind: circle
    params: [7]
  - kind: rectangle
    params: [10, 5]
`)

	out, err := run(t, "batch", "--file", path, "--json")
	require.NoError(t, err)

	var infos []query.Info
	require.NoError(t, jsoniter.ConfigFastest.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "rectangle", infos[0].Kind)
	assert.Equal(t, 30.0, infos[0].Perimeter)
	assert.Equal(t, "circle", infos[1].Kind)
	assert.Equal(t, "triangle", infos[2].Kind)
	assert.Equal(t, "versatile obtuse", infos[2].Subtype)

	out, err = run(t, "batch", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: rectangle\n")
	assert.Contains(t, out, "\n\nkind: circle\n", "summaries are separated by a blank line")
}

func TestBatchCmd_Errors(t *testing.T) {
	bad := writeFile(t, "bad.yaml", "shapes:\n  - kind: circle\n    params: [7]\n  - kind: circle\n    params: [-1]\n")
	_, err := run(t, "batch", "--file", bad)
	require.ErrorIs(t, err, shape.ErrInvalidParameters)
	assert.Contains(t, err.Error(), "shapes[1]")

	typo := writeFile(t, "typo.yaml", "shapes:\n  - kind: circle\n    param: [7]\n")
	_, err = run(t, "batch", "--file", typo)
	assert.Error(t, err, "unknown keys are rejected")

	sorted := writeFile(t, "sort.yaml", "sort: volume\nshapes: []\n")
	_, err = run(t, "batch", "--file", sorted)
	assert.Error(t, err)

	_, err = run(t, "batch", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMetricsFlag(t *testing.T) {
	out, err := run(t, "sort", "--metrics", "circle:7", "circle:1", "rectangle:1,2")
	require.NoError(t, err)
	assert.Contains(t, out, `geomlib_shapes_created_total{kind="circle"} 2`)
	assert.Contains(t, out, `geomlib_shapes_created_total{kind="rectangle"} 1`)
}

func TestMetricsFlag_OnFailure(t *testing.T) {
	out, err := run(t, "sort", "--metrics", "circle:7", "circle:0")
	require.ErrorIs(t, err, shape.ErrInvalidParameters)
	assert.Contains(t, out, `geomlib_shapes_created_total{kind="circle"} 1`)
	assert.Contains(t, out, `geomlib_shapes_rejected_total{kind="circle",reason="invalid_parameters"} 1`)

	out, err = run(t, "info", "--metrics", "hexagon", "1")
	require.ErrorIs(t, err, shape.ErrUnknownKind)
	assert.Contains(t, out, `geomlib_shapes_rejected_total{kind="unknown",reason="unknown_kind"} 1`)
}

func TestOverflowingShape(t *testing.T) {
	_, err := run(t, "info", "circle", "1e200", "--json")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters)

	_, err = run(t, "info", "circle", "1e200")
	assert.ErrorIs(t, err, shape.ErrInvalidParameters)

	out, err := run(t, "info", "rectangle", "1e300", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "area: 1e+300\n")
	assert.Contains(t, out, "perimeter: 2e+300\n")
	assert.NotContains(t, out, "Inf")
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		lit        string
		wantKind   string
		wantParams []float64
		wantErr    bool
	}{
		{"rectangle:10,5", "rectangle", []float64{10, 5}, false},
		{"circle: 7 ", "circle", []float64{7}, false},
		{"triangle:3,4,5", "triangle", []float64{3, 4, 5}, false},
		{"circle", "circle", nil, false},
		{"circle:", "circle", nil, false},
		{":1,2", "", nil, true},
		{"rectangle:1,x", "", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.lit, func(t *testing.T) {
			kind, params, err := parseLiteral(tc.lit)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, kind)
			assert.Equal(t, tc.wantParams, params)
		})
	}
}
