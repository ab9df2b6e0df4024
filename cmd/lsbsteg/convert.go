package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/progress"
)

var convertFlags struct {
	Dir string
}

var convertCmd = &cobra.Command{
	Use:   "convert [image...]",
	Short: "Re-encode images as PNG so they can carry a payload",
	Long: `convert decodes each image and writes it as a PNG into the output directory.
JPEG and other lossy files must be converted before hiding anything in them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if convertFlags.Dir != "" {
			found, err := filehandler.FilesInDirectory(convertFlags.Dir, filehandler.ImageExtensions())
			if err != nil {
				return err
			}
			for _, f := range found {
				if strings.ToLower(filepath.Ext(f)) != ".png" {
					files = append(files, f)
				}
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("nothing to convert: pass image paths or --dir")
		}

		tracker := progress.NewTracker()
		tracker.Start("convert", "images", len(files))

		converted := 0
		for _, f := range files {
			out, err := filehandler.ConvertToPNG(f, cfg.OutputDir, cfg.Compression)
			tracker.Step("convert", filepath.Base(f))
			if err != nil {
				printError("Failed to convert %s: %v", f, err)
				continue
			}
			converted++
			printSuccess("Converted %s -> %s", f, out)
		}

		tracker.Complete("convert", fmt.Sprintf("%d of %d images converted", converted, len(files)))
		if converted < len(files) {
			return fmt.Errorf("%d images could not be converted", len(files)-converted)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.Dir, "dir", "d", "", "Convert every non-PNG image in this directory")
}
