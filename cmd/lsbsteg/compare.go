package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"LSBSteg/pkg/diff"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/models"
)

var (
	compareFlags struct {
		A         string
		B         string
		Highlight string
		JSON      bool
	}
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Report the pixels where two images differ",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := filehandler.LoadGrid(compareFlags.A)
		if err != nil {
			return err
		}
		b, err := filehandler.LoadGrid(compareFlags.B)
		if err != nil {
			return err
		}

		report := models.DiffReport{ImageA: compareFlags.A, ImageB: compareFlags.B}

		result, err := diff.Compare(a, b)
		switch {
		case errors.Is(err, diff.ErrDimensionMismatch):
			// reported, not fatal: "not comparable" is an answer
		case err != nil:
			return err
		default:
			report.Comparable = true
			report.Identical = result.Identical
			report.Differences = len(result.Points)
			if !result.Identical {
				report.Box = boxRecord(result.Box)
			}
		}

		if report.Box != nil && compareFlags.Highlight != "" {
			marked := diff.Highlight(a, result.Box, cfg.HighlightColor)
			if err := filehandler.SavePNG(marked, compareFlags.Highlight, cfg.Compression); err != nil {
				return err
			}
			report.Highlight = compareFlags.Highlight
		}

		if compareFlags.JSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printReport(report, a.Width(), a.Height(), b.Width(), b.Height())
		return nil
	},
}

func boxRecord(box diff.BoundingBox) *models.BoxRecord {
	return &models.BoxRecord{
		MinX:   box.MinCol,
		MinY:   box.MinRow,
		MaxX:   box.MaxCol,
		MaxY:   box.MaxRow,
		Width:  box.Width(),
		Height: box.Height(),
	}
}

func printReport(report models.DiffReport, aw, ah, bw, bh int) {
	fmt.Println("\n--- Comparison ---")
	fmt.Printf("A: %s (%dx%d)\n", report.ImageA, aw, ah)
	fmt.Printf("B: %s (%dx%d)\n", report.ImageB, bw, bh)

	switch {
	case !report.Comparable:
		printWarning("Images have different dimensions and cannot be compared")
	case report.Identical:
		printSuccess("Images are identical")
	default:
		printInfo("%d pixels differ", report.Differences)
		printInfo("Bounding box (x,y): (%d,%d) to (%d,%d), %dx%d",
			report.Box.MinX, report.Box.MinY, report.Box.MaxX, report.Box.MaxY, report.Box.Width, report.Box.Height)
		if report.Highlight != "" {
			printSuccess("Highlighted area written to %s", report.Highlight)
		}
	}

	fmt.Println("------------------")
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&compareFlags.A, "a", "a", "", "First image (required)")
	compareCmd.MarkFlagRequired("a")
	compareCmd.Flags().StringVarP(&compareFlags.B, "b", "b", "", "Second image (required)")
	compareCmd.MarkFlagRequired("b")
	compareCmd.Flags().StringVar(&compareFlags.Highlight, "highlight", "", "Write a copy of the first image with the differing area outlined")
	compareCmd.Flags().BoolVar(&compareFlags.JSON, "json", false, "Print the report as JSON")
}
