package cmd

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/TGALLOWAY1/Refract/internal/kaleido"
	"github.com/TGALLOWAY1/Refract/internal/source"
)

// NewPreviewCmd creates the preview cobra command
func NewPreviewCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render all four mirror patterns at preview resolution",
		Long:  "Renders the four quadrant mirror patterns at preview resolution (longer side capped at 1024) and writes them as PNG files to the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sourcePath(cmd, args)
			if err != nil {
				return err
			}
			outDir, _ := cmd.Flags().GetString("out")

			img, err := source.NewCache().Load(path)
			if err != nil {
				return err
			}

			mid, tr := viewParams(cmd)
			patterns := kaleido.Preview(img, mid, tr)

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			for _, q := range kaleido.Quadrants {
				outPath := filepath.Join(outDir, fmt.Sprintf("preview-%s.png", q))
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				if err := png.Encode(f, patterns[q]); err != nil {
					f.Close()
					return fmt.Errorf("failed to encode %s: %w", outPath, err)
				}
				if err := f.Close(); err != nil {
					return err
				}
				slog.InfoContext(ctx, "wrote preview pattern", "quadrant", q.String(), "path", outPath)
			}
			return nil
		},
	}
	viewFlags(cmd)
	cmd.PersistentFlags().StringP("out", "o", ".", "output directory for preview PNGs")
	return cmd
}
