package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/TGALLOWAY1/Refract/internal/config"
	"github.com/TGALLOWAY1/Refract/internal/kaleido"
	"github.com/TGALLOWAY1/Refract/internal/source"
)

// NewExportCmd creates the export cobra command
func NewExportCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render one mirror pattern at native resolution and save it",
		Long:  "Renders the selected quadrant's mirror pattern at the source image's native resolution and writes it as a lossless PNG. Without --out the file lands in the configured export directory under a generated name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sourcePath(cmd, args)
			if err != nil {
				return err
			}

			label, _ := cmd.Flags().GetString("quadrant")
			quadrant, err := kaleido.ParseQuadrant(label)
			if err != nil {
				return err
			}

			img, err := source.NewCache().Load(path)
			if err != nil {
				return err
			}

			mid, tr := viewParams(cmd)
			result, err := kaleido.Export(img, mid, tr, quadrant)
			if err != nil {
				return err
			}

			outPath, _ := cmd.Flags().GetString("out")
			if outPath == "" {
				cfg, err := config.Load(os.Getenv("REFRACT_CONFIG"))
				if err != nil {
					return err
				}
				outPath = filepath.Join(cfg.Export.Dir, result.Filename)
			}
			if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			slog.InfoContext(ctx, "wrote export",
				"quadrant", quadrant.String(),
				"path", outPath,
				"width", result.Width,
				"height", result.Height)
			fmt.Println(outPath)
			return nil
		},
	}
	viewFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.StringP("quadrant", "q", "top-left", "quadrant to export (top-left|top-right|bottom-left|bottom-right)")
	pf.StringP("out", "o", "", "output file path (default: export dir + generated name)")
	return cmd
}
