package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/venn/internal/fixture"
	"github.com/gogpu/venn/plot"
	"github.com/gogpu/venn/venntest"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify FIXTURE...",
		Short: "Verify diagram fixtures against their expected points",
		Long: `Verify YAML diagram fixtures.

Every sample point must lie in its own region and no other, every expected
region must exist with its label inside it, and absent regions must not be
drawn. With --plot a PNG of each diagram and its sample points is written;
with several fixtures the fixture name is appended to the file name.

Examples:
  venncheck verify testdata/disjoint.yaml
  venncheck verify --plot out.png testdata/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotPath, _ := cmd.Flags().GetString("plot")
			size, _ := cmd.Flags().GetInt("size")

			var failed int
			for _, file := range args {
				f, err := fixture.Load(file)
				if err != nil {
					return err
				}

				layout := f.Layout()
				canvas := plot.New(layout, layout.Regions(), plot.WithSize(size, size))
				verr := f.Verify(venntest.WithPlotter(canvas))

				if plotPath != "" {
					out := plotFile(plotPath, file, len(args))
					if err := canvas.SavePNG(out); err != nil {
						return err
					}
				}

				if verr != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", f.Name, verr)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", f.Name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fixtures failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().String("plot", "", "Write a PNG of each diagram to this path")
	cmd.Flags().Int("size", 400, "Plot size in pixels")
	return cmd
}

// plotFile returns the PNG path for fixture when n fixtures share one
// --plot value.
func plotFile(plotPath, fixturePath string, n int) string {
	if n <= 1 {
		return plotPath
	}
	ext := filepath.Ext(plotPath)
	base := strings.TrimSuffix(plotPath, ext)
	name := strings.TrimSuffix(filepath.Base(fixturePath), filepath.Ext(fixturePath))
	return base + "-" + name + ext
}
