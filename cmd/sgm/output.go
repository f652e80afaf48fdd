// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/geomlib/notify"
	"github.com/katalvlaran/geomlib/query"
	"github.com/katalvlaran/geomlib/shape"
)

// emit writes v as one JSON document when --json is set, otherwise the
// result of text().
func (a *app) emit(w io.Writer, v any, text func() string) error {
	if !a.jsonOut {
		_, err := io.WriteString(w, text())
		return err
	}

	data, err := jsoniter.ConfigFastest.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// summaries converts shapes to their Info records, in order.
func summaries(shapes []*shape.Shape) ([]query.Info, error) {
	out := make([]query.Info, len(shapes))
	for i, s := range shapes {
		info, err := query.Summary(s)
		if err != nil {
			return nil, err
		}
		out[i] = info
	}

	return out, nil
}

// joinInfos renders several summaries separated by blank lines.
func joinInfos(infos []query.Info) string {
	parts := make([]string, len(infos))
	for i, info := range infos {
		parts[i] = info.String()
	}

	return strings.Join(parts, "\n")
}

// formatEvent renders a change event as a header plus one "name: old -> new"
// line per parameter.
func formatEvent(e notify.ChangeEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "event: %s\n", e.Type)
	for _, c := range e.Changes {
		fmt.Fprintf(&b, "  %s: %s -> %s\n", c.Name, num(c.Old), num(c.New))
	}

	return b.String()
}

func num(v float64) string { return fmt.Sprint(shape.Round2(v)) }
