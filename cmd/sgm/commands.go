// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geomlib/notify"
	"github.com/katalvlaran/geomlib/query"
	"github.com/katalvlaran/geomlib/shape"
)

// Sort keys accepted by --by.
const (
	byArea      = "area"
	byPerimeter = "perimeter"
)

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered shape kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds := a.reg.Kinds()
			return a.emit(cmd.OutOrStdout(), kinds, func() string {
				return strings.Join(kinds, "\n") + "\n"
			})
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <kind> [params...]",
		Short: "Create one shape and print its summary",
		Example: `  sgm info rectangle 10 5
  sgm info triangle 3 4 5 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.create(args[0], args[1:])
			if err != nil {
				return err
			}
			info, err := query.Summary(s)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), info, info.String)
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:     "sort <kind:p1,p2,...>...",
		Short:   "Sort shapes ascending by area or perimeter",
		Example: `  sgm sort --by area rectangle:10,5 triangle:40,50,80.99 circle:7`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if by != byArea && by != byPerimeter {
				return fmt.Errorf("--by must be %q or %q, got %q", byArea, byPerimeter, by)
			}

			shapes := make([]*shape.Shape, 0, len(args))
			for _, lit := range args {
				kind, params, err := parseLiteral(lit)
				if err != nil {
					return err
				}
				s, err := a.reg.CreateShape(kind, params...)
				if err != nil {
					return err
				}
				shapes = append(shapes, s)
			}

			a.sortShapes(shapes, by)
			infos, err := summaries(shapes)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), infos, func() string {
				var b strings.Builder
				for _, s := range shapes {
					fmt.Fprintf(&b, "%s\t%s=%s\n", s, by, num(metric(s, by)))
				}
				return b.String()
			})
		},
	}
	cmd.Flags().StringVar(&by, "by", byArea, "sort key: area or perimeter")

	return cmd
}

// editResult is the JSON shape of the edit command output.
type editResult struct {
	Event  notify.ChangeEvent `json:"event"`
	Before query.Info         `json:"before"`
	After  query.Info         `json:"after"`
}

func (a *app) editCmd() *cobra.Command {
	var to []float64

	cmd := &cobra.Command{
		Use:     "edit <kind> [params...] --to p1,p2,...",
		Short:   "Edit a shape and print the change event with both summaries",
		Example: `  sgm edit rectangle 10 5 --to 20,10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := a.create(args[0], args[1:])
			if err != nil {
				return err
			}

			var events []notify.ChangeEvent
			cancel, err := before.OnEdited(func(e notify.ChangeEvent) {
				events = append(events, e)
			})
			if err != nil {
				return err
			}
			defer cancel()

			after, err := before.Edit(to...)
			if err != nil {
				return err
			}
			if len(events) != 1 {
				return fmt.Errorf("edit: expected one change event, got %d", len(events))
			}
			a.logger.Debug("shape edited",
				zap.Stringer("from", before),
				zap.Stringer("to", after),
				zap.Stringer("event", events[0].ID))

			res := editResult{Event: events[0]}
			if res.Before, err = query.Summary(before); err != nil {
				return err
			}
			if res.After, err = query.Summary(after); err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), res, func() string {
				return formatEvent(res.Event) +
					"\nbefore:\n" + res.Before.String() +
					"\nafter:\n" + res.After.String()
			})
		},
	}
	cmd.Flags().Float64SliceVar(&to, "to", nil, "new parameters, comma separated")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// create parses params and builds a shape through the registry.
func (a *app) create(kind string, args []string) (*shape.Shape, error) {
	params, err := parseFloats(args)
	if err != nil {
		return nil, err
	}

	return a.reg.CreateShape(kind, params...)
}

func (a *app) sortShapes(shapes []*shape.Shape, by string) {
	if by == byPerimeter {
		query.SortByPerimeter(shapes)
	} else {
		query.SortByArea(shapes)
	}
	a.logger.Debug("shapes sorted", zap.String("by", by), zap.Int("count", len(shapes)))
}

func metric(s *shape.Shape, by string) float64 {
	if by == byPerimeter {
		return s.Perimeter()
	}
	return s.Area()
}
