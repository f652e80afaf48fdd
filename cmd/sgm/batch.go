// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geomlib/shape"
)

// batchFile is the YAML document read by "sgm batch":
//
//	sort: perimeter        # optional: area | perimeter
//	shapes:
//	  - kind: rectangle
//	    params: [10, 5]
//	  - kind: circle
//	    params: [7]
type batchFile struct {
	Sort   string       `yaml:"sort"`
	Shapes []batchShape `yaml:"shapes"`
}

type batchShape struct {
	Kind   string    `yaml:"kind"`
	Params []float64 `yaml:"params"`
}

// loadBatch reads and decodes path. Unknown keys are rejected so that typos
// do not silently drop shapes.
func loadBatch(path string) (*batchFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var bf batchFile
	if err := dec.Decode(&bf); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	switch bf.Sort {
	case "", byArea, byPerimeter:
	default:
		return nil, fmt.Errorf("batch file %s: sort must be %q or %q, got %q", path, byArea, byPerimeter, bf.Sort)
	}

	return &bf, nil
}

func (a *app) batchCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "batch --file shapes.yaml",
		Short: "Create every shape listed in a YAML file and print the summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bf, err := loadBatch(path)
			if err != nil {
				return err
			}

			shapes := make([]*shape.Shape, 0, len(bf.Shapes))
			for i, entry := range bf.Shapes {
				s, err := a.reg.CreateShape(entry.Kind, entry.Params...)
				if err != nil {
					return fmt.Errorf("shapes[%d]: %w", i, err)
				}
				shapes = append(shapes, s)
			}
			a.logger.Debug("batch loaded", zap.String("file", path), zap.Int("shapes", len(shapes)))

			if bf.Sort != "" {
				a.sortShapes(shapes, bf.Sort)
			}
			infos, err := summaries(shapes)
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), infos, func() string { return joinInfos(infos) })
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "YAML file listing the shapes")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
