package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TGALLOWAY1/Refract/internal/kaleido"
	"github.com/TGALLOWAY1/Refract/internal/logging"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refractctl",
		Short: "a CLI for rendering four-fold mirror patterns from an image",
		Long:  "refractctl renders kaleidoscope mirror patterns from a source image: inspect a file, preview all four quadrant patterns, or export one at native resolution.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			slog.SetDefault(logging.Logger(os.Stderr, false, logging.ParseLevel(logLevel)))
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewInfoCmd(ctx),
		NewPreviewCmd(ctx),
		NewExportCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	return cmd
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(gitsha)
		},
	}
	return cmd
}

// viewFlags registers the flags shared by every command that renders a view
// of the source image.
func viewFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "source image path")
	pf.Float64("mid-x", 0.5, "midpoint X, normalized 0-1")
	pf.Float64("mid-y", 0.5, "midpoint Y, normalized 0-1")
	pf.Float64("rotation", 0, "rotation in degrees, counter-clockwise positive")
	pf.Float64("zoom", 1.0, "zoom factor, 1.0 = none")
}

// viewParams reads the shared view flags into pipeline parameters.
func viewParams(cmd *cobra.Command) (kaleido.Midpoint, kaleido.Transform) {
	midX, _ := cmd.Flags().GetFloat64("mid-x")
	midY, _ := cmd.Flags().GetFloat64("mid-y")
	rotation, _ := cmd.Flags().GetFloat64("rotation")
	zoom, _ := cmd.Flags().GetFloat64("zoom")
	return kaleido.Midpoint{X: midX, Y: midY},
		kaleido.Transform{RotationDeg: rotation, Zoom: zoom}
}

// sourcePath resolves the source image path from the --file flag or the
// first positional argument.
func sourcePath(cmd *cobra.Command, args []string) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", fmt.Errorf("source image path is required. Use --file flag or provide as argument")
	}
	return path, nil
}
