package main

import (
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/stego"
	"LSBSteg/pkg/transcode"
)

var (
	hideTextFlags struct {
		Carrier string
		Message string
		Out     string
	}

	revealTextFlags struct {
		Input string
	}
)

var hideTextCmd = &cobra.Command{
	Use:   "hide-text",
	Short: "Hide an A-Z message in the low bits of a carrier",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := transcode.Validate(hideTextFlags.Message); err != nil {
			return err
		}

		carrier, err := filehandler.LoadGrid(hideTextFlags.Carrier)
		if err != nil {
			return err
		}

		chars := utf8.RuneCountInString(hideTextFlags.Message)
		if capacity := stego.TextCapacity(carrier); chars > capacity {
			printWarning("Message has %d characters but the carrier holds %d; it will be truncated",
				chars, capacity)
		}

		if err := stego.HideText(carrier, hideTextFlags.Message); err != nil {
			return err
		}
		log.Debug().Int("characters", chars).Msg("message written")

		if err := filehandler.SavePNG(carrier, hideTextFlags.Out, cfg.Compression); err != nil {
			return err
		}
		printSuccess("Message hidden in %s", hideTextFlags.Out)
		return nil
	},
}

var revealTextCmd = &cobra.Command{
	Use:   "reveal-text",
	Short: "Read a message hidden with hide-text",
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := filehandler.LoadGrid(revealTextFlags.Input)
		if err != nil {
			return err
		}

		scan := stego.ScanText(carrier)
		if !scan.Terminated {
			printWarning("No end-of-message marker found; the text below may be noise")
		}
		if scan.Skipped > 0 {
			printWarning("%d values were not letters and were skipped", scan.Skipped)
		}
		printSuccess("Hidden message: %s", scan.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hideTextCmd, revealTextCmd)

	hideTextCmd.Flags().StringVarP(&hideTextFlags.Carrier, "carrier", "c", "", "Path to the carrier image (required)")
	hideTextCmd.MarkFlagRequired("carrier")
	hideTextCmd.Flags().StringVarP(&hideTextFlags.Message, "message", "m", "", "Message to hide, letters and spaces only (required)")
	hideTextCmd.MarkFlagRequired("message")
	hideTextCmd.Flags().StringVarP(&hideTextFlags.Out, "out", "o", "", "Output PNG path (required)")
	hideTextCmd.MarkFlagRequired("out")

	revealTextCmd.Flags().StringVarP(&revealTextFlags.Input, "input", "i", "", "Path to the image holding the message (required)")
	revealTextCmd.MarkFlagRequired("input")
}
