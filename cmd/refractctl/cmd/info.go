package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TGALLOWAY1/Refract/internal/source"
)

// NewInfoCmd creates the info cobra command
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show source image metadata",
		Long:  "Loads an image file and prints its dimensions, format, alpha presence, and file size.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sourcePath(cmd, args)
			if err != nil {
				return err
			}

			info, err := source.LoadInfo(source.NewCache(), path)
			if err != nil {
				return err
			}

			switch format, _ := cmd.Flags().GetString("format"); format {
			case "text":
				fmt.Printf("Path: %s\n", path)
				fmt.Printf("Dimensions: %dx%d\n", info.Width, info.Height)
				fmt.Printf("Format: %s\n", info.Format)
				fmt.Printf("HasAlpha: %v\n", info.HasAlpha)
				fmt.Printf("FileSize: %d bytes\n", info.FileSizeBytes)
			default:
				j, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				os.Stdout.Write(j)
				fmt.Println()
			}
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("file", "f", "", "source image path")
	pf.String("format", "json", "output format (text|json)")
	return cmd
}
