package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"LSBSteg/pkg/config"
	"LSBSteg/pkg/logging"
)

var (
	// Color printers
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	alertColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

func printAlert(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", alertColor("[!!!]"), fmt.Sprintf(format, args...))
}

var (
	globalFlags struct {
		ConfigPath string
		OutputDir  string
		Verbose    bool
	}

	// cfg is resolved once per run from defaults, the config file and flags
	cfg = config.Default()

	logOutput io.Writer = os.Stderr
)

const appName = "lsbsteg"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Hide pictures and text in the low bits of an image",
	Long:          `lsbsteg stores a picture or an A-Z message in the two low-order bits of each colour channel, recovers it, and compares images pixel by pixel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// console logging has to be in place before the config file can fail
		logging.InitWriter(logOutput, appName, globalFlags.Verbose)

		if globalFlags.ConfigPath != "" {
			loaded, err := config.Load(globalFlags.ConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("outdir") {
			cfg.OutputDir = globalFlags.OutputDir
		}
		if globalFlags.Verbose {
			cfg.Verbose = true
		}

		logging.InitWriter(logOutput, appName, cfg.Verbose)
		log.Debug().Str("outdir", cfg.OutputDir).Str("config", globalFlags.ConfigPath).Msg("configuration resolved")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.ConfigPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.OutputDir, "outdir", config.Default().OutputDir, "Directory for extracted payloads")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "Enable verbose output")
}

func execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("%v", err)
		log.Debug().Err(err).Msg("command failed")
	}
	return err
}

func main() {
	logging.InitWriter(logOutput, appName, false)
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
