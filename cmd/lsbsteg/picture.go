package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"LSBSteg/pkg/config"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/stego"
)

var (
	hideFlags struct {
		Carrier string
		Secret  string
		Out     string
		Row     int
		Col     int
		Fit     bool
	}

	revealFlags struct {
		Input string
		Out   string
	}

	lowFlags struct {
		Input string
		Out   string
		Color string
	}
)

var hideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Hide a picture in the low bits of a carrier",
	RunE: func(cmd *cobra.Command, args []string) error {
		carrier, err := filehandler.LoadGrid(hideFlags.Carrier)
		if err != nil {
			return err
		}
		secret, err := filehandler.LoadGrid(hideFlags.Secret)
		if err != nil {
			return err
		}

		if !stego.CanEmbed(carrier, secret) {
			if !hideFlags.Fit {
				return fmt.Errorf("secret %dx%d does not fit carrier %dx%d (use --fit to scale it down)",
					secret.Width(), secret.Height(), carrier.Width(), carrier.Height())
			}
			interp, err := filehandler.ParseInterpolation(cfg.FitFilter)
			if err != nil {
				return err
			}
			secret = filehandler.FitWithin(secret, carrier.Width(), carrier.Height(), interp)
			printWarning("Secret scaled down to %dx%d", secret.Width(), secret.Height())
		}

		if hideFlags.Row+secret.Height() > carrier.Height() || hideFlags.Col+secret.Width() > carrier.Width() {
			printWarning("Secret at (%d,%d) runs past the carrier edge and will be cropped", hideFlags.Row, hideFlags.Col)
		}

		log.Debug().Int("row", hideFlags.Row).Int("col", hideFlags.Col).Msg("embedding secret")
		combined := stego.Embed(carrier, secret, hideFlags.Row, hideFlags.Col)

		if err := filehandler.SavePNG(combined, hideFlags.Out, cfg.Compression); err != nil {
			return err
		}
		printSuccess("Hidden %s in %s -> %s", hideFlags.Secret, hideFlags.Carrier, hideFlags.Out)
		return nil
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Rebuild the picture held in the low bits of an image",
	RunE: func(cmd *cobra.Command, args []string) error {
		hidden, err := filehandler.LoadGrid(revealFlags.Input)
		if err != nil {
			return err
		}

		if err := filehandler.SavePNG(stego.Reveal(hidden), revealFlags.Out, cfg.Compression); err != nil {
			return err
		}
		printSuccess("Revealed picture written to %s", revealFlags.Out)
		return nil
	},
}

var clearLowCmd = &cobra.Command{
	Use:   "clear-low",
	Short: "Zero the two low bits of every channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := filehandler.LoadGrid(lowFlags.Input)
		if err != nil {
			return err
		}

		if err := filehandler.SavePNG(stego.ClearLow(g), lowFlags.Out, cfg.Compression); err != nil {
			return err
		}
		printSuccess("Cleared low bits -> %s", lowFlags.Out)
		return nil
	},
}

var setLowCmd = &cobra.Command{
	Use:   "set-low",
	Short: "Store a flat colour in the low bits of every pixel",
	RunE: func(cmd *cobra.Command, args []string) error {
		fill, err := config.ParseColor(lowFlags.Color)
		if err != nil {
			return err
		}
		g, err := filehandler.LoadGrid(lowFlags.Input)
		if err != nil {
			return err
		}

		if err := filehandler.SavePNG(stego.SetLow(g, fill), lowFlags.Out, cfg.Compression); err != nil {
			return err
		}
		printSuccess("Stored #%02x%02x%02x in the low bits -> %s", fill.R, fill.G, fill.B, lowFlags.Out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hideCmd, revealCmd, clearLowCmd, setLowCmd)

	hideCmd.Flags().StringVarP(&hideFlags.Carrier, "carrier", "c", "", "Path to the carrier image (required)")
	hideCmd.MarkFlagRequired("carrier")
	hideCmd.Flags().StringVarP(&hideFlags.Secret, "secret", "s", "", "Path to the image to hide (required)")
	hideCmd.MarkFlagRequired("secret")
	hideCmd.Flags().StringVarP(&hideFlags.Out, "out", "o", "", "Output PNG path (required)")
	hideCmd.MarkFlagRequired("out")
	hideCmd.Flags().IntVar(&hideFlags.Row, "row", 0, "Carrier row where the secret's top edge goes")
	hideCmd.Flags().IntVar(&hideFlags.Col, "col", 0, "Carrier column where the secret's left edge goes")
	hideCmd.Flags().BoolVar(&hideFlags.Fit, "fit", false, "Scale the secret down when it is larger than the carrier")

	revealCmd.Flags().StringVarP(&revealFlags.Input, "input", "i", "", "Path to the image to reveal (required)")
	revealCmd.MarkFlagRequired("input")
	revealCmd.Flags().StringVarP(&revealFlags.Out, "out", "o", "revealed.png", "Output PNG path")

	for _, c := range []*cobra.Command{clearLowCmd, setLowCmd} {
		c.Flags().StringVarP(&lowFlags.Input, "input", "i", "", "Path to the source image (required)")
		c.MarkFlagRequired("input")
		c.Flags().StringVarP(&lowFlags.Out, "out", "o", "", "Output PNG path (required)")
		c.MarkFlagRequired("out")
	}
	setLowCmd.Flags().StringVar(&lowFlags.Color, "color", "ffafaf", "Colour to store, as RRGGBB")
}
