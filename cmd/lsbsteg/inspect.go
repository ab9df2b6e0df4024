package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/analyzer/lowbits"
	"LSBSteg/pkg/analyzer/textprobe"
	"LSBSteg/pkg/extractor"
	"LSBSteg/pkg/extractor/message"
	"LSBSteg/pkg/extractor/picture"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/models"
	"LSBSteg/pkg/progress"
)

var (
	inspectFlags struct {
		File    string
		Dir     string
		Format  string
		Extract bool
		List    bool
	}
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look for a hidden picture or message in one image or a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzers := newAnalyzerRegistry().Filter(cfg.Analyzers)
		extractors := newExtractorRegistry()

		if inspectFlags.List {
			listFormats(analyzers)
			return nil
		}

		if inspectFlags.File == "" && inspectFlags.Dir == "" {
			return fmt.Errorf("one of --file or --dir is required")
		}

		if inspectFlags.Extract {
			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		if inspectFlags.File != "" {
			printInfo("Analyzing file: %s", inspectFlags.File)
			inspectFile(inspectFlags.File, analyzers, extractors)
		}

		if inspectFlags.Dir != "" {
			printInfo("Analyzing directory: %s", inspectFlags.Dir)
			files, err := filehandler.FilesInDirectory(inspectFlags.Dir, filehandler.ImageExtensions())
			if err != nil {
				return err
			}
			printInfo("Found %d images to analyze", len(files))

			tracker := progress.NewTracker()
			tracker.Start("scan", inspectFlags.Dir, len(files))

			var results []models.AnalysisResult
			for _, file := range files {
				if result := inspectFile(file, analyzers, extractors); result != nil {
					results = append(results, *result)
				}
				tracker.Step("scan", filepath.Base(file))
			}
			tracker.Complete("scan", fmt.Sprintf("%d of %d images analyzed", len(results), len(files)))
			printSummary(results)
		}

		return nil
	},
}

func newAnalyzerRegistry() *analyzer.Registry {
	registry := analyzer.NewRegistry()
	registry.Register(lowbits.New())
	registry.Register(textprobe.New())
	return registry
}

func newExtractorRegistry() *extractor.Registry {
	registry := extractor.NewRegistry()
	registry.Register(picture.New())
	registry.Register(message.New())
	return registry
}

func listFormats(registry *analyzer.Registry) {
	fmt.Println("Supported file formats:")
	for _, format := range registry.GetSupportedFormats() {
		fmt.Printf("- %s:", format)
		for _, a := range registry.GetAnalyzersForFormat(format) {
			fmt.Printf(" %s", a.Name())
		}
		fmt.Println()
	}
}

func inspectFile(filePath string, analyzers *analyzer.Registry, extractors *extractor.Registry) *models.AnalysisResult {
	format := inspectFlags.Format
	if format == "auto" {
		detected, err := filehandler.DetectFileFormat(filePath)
		if err != nil {
			printError("Failed to detect file format: %v", err)
			return nil
		}
		format = detected
	}

	list := analyzers.GetAnalyzersForFormat(format)
	if len(list) == 0 {
		printWarning("No analyzers available for format: %s", format)
		return nil
	}

	printInfo("Analyzing %s as %s format", filePath, format)
	startTime := time.Now()

	var finalResult *models.AnalysisResult
	for _, a := range list {
		printInfo("Running %s analyzer", a.Name())

		result, err := a.Analyze(filePath, analyzer.AnalysisOptions{
			Verbose: cfg.Verbose,
			Format:  format,
		})
		if err != nil {
			printError("Analysis with %s failed: %v", a.Name(), err)
			continue
		}

		displayAnalysisResult(result, cfg.Verbose)

		// Keep the result with the highest payload score
		if finalResult == nil || result.PayloadScore > finalResult.PayloadScore {
			finalResult = result
		}
	}

	if finalResult != nil && inspectFlags.Extract && finalResult.PayloadKind != "" {
		extract(filePath, format, finalResult.PayloadKind, extractors)
	}

	printInfo("Analysis completed in %v", time.Since(startTime))
	return finalResult
}

func extract(filePath, format, kind string, extractors *extractor.Registry) {
	e := extractors.GetExtractorForKind(kind, format)
	if e == nil {
		printWarning("No %s extractor for format %s", kind, format)
		return
	}

	result, err := e.Extract(filePath, extractor.ExtractionOptions{
		OutputDir:   cfg.OutputDir,
		BaseName:    filepath.Base(filePath),
		Compression: cfg.Compression,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		printError("Extraction with %s failed: %v", e.Name(), err)
		return
	}

	if result.Text != "" {
		printSuccess("Recovered message: %s", result.Text)
	}
	for _, out := range result.OutputFiles {
		printSuccess("Payload written to %s", out)
	}
}

func displayAnalysisResult(result *models.AnalysisResult, verbose bool) {
	fmt.Println("\n--- Analysis Results ---")
	fmt.Printf("File: %s\n", result.Filename)
	fmt.Printf("Analyzer: %s\n", result.Analyzer)

	if result.PayloadScore > 0.8 {
		printAlert("HIGH probability of a hidden %s (%.2f)", kindOrPayload(result.PayloadKind), result.PayloadScore)
	} else if result.PayloadScore > 0.5 {
		printWarning("MEDIUM probability of a hidden %s (%.2f)", kindOrPayload(result.PayloadKind), result.PayloadScore)
	} else if result.PayloadScore > 0.2 {
		printInfo("LOW probability of a hidden payload (%.2f)", result.PayloadScore)
	} else {
		printSuccess("No payload detected (%.2f)", result.PayloadScore)
	}

	fmt.Printf("Confidence: %.2f\n", result.Confidence)
	if best, ok := result.Strongest(); ok {
		fmt.Printf("Strongest finding: %s\n", best.Description)
	}

	if len(result.Findings) > 0 {
		fmt.Println("\nFindings:")
		for i, finding := range result.Findings {
			fmt.Printf("%d. %s (Confidence: %.2f)\n", i+1, finding.Description, finding.Confidence)
			if verbose && finding.Details != "" {
				fmt.Printf("   Details: %s\n", finding.Details)
			}
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for i, rec := range result.Recommendations {
			fmt.Printf("%d. %s\n", i+1, rec)
		}
	}

	fmt.Println("-------------------------")
}

func kindOrPayload(kind string) string {
	if kind == "" {
		return "payload"
	}
	return kind
}

func printSummary(results []models.AnalysisResult) {
	var clean, suspicious, carriers int

	for _, result := range results {
		if result.PayloadScore < 0.2 {
			clean++
		} else if result.PayloadScore < 0.7 {
			suspicious++
		} else {
			carriers++
		}
	}

	fmt.Println("\n=== Analysis Summary ===")
	fmt.Printf("Total files analyzed: %d\n", len(results))
	fmt.Printf("%s Clean files: %d\n", successColor("[+]"), clean)

	if suspicious > 0 {
		fmt.Printf("%s Suspicious files: %d\n", warningColor("[!]"), suspicious)
	}

	if carriers > 0 {
		fmt.Printf("%s Carriers with a payload: %d\n", alertColor("[!!!]"), carriers)

		fmt.Println("\nFiles with a likely payload:")
		for _, result := range results {
			if result.PayloadScore >= 0.7 {
				fmt.Printf("- %s (%s, score: %.2f)\n", result.Filename, kindOrPayload(result.PayloadKind), result.PayloadScore)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.File, "file", "f", "", "Path to a single image")
	inspectCmd.Flags().StringVarP(&inspectFlags.Dir, "dir", "d", "", "Directory of images")
	inspectCmd.Flags().StringVar(&inspectFlags.Format, "format", "auto", "Force a format (png, bmp, tiff, gif)")
	inspectCmd.Flags().BoolVar(&inspectFlags.Extract, "extract", false, "Write any payload found into the output directory")
	inspectCmd.Flags().BoolVar(&inspectFlags.List, "listformats", false, "List supported formats and analyzers")
}
