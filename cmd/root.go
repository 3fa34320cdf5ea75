package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	extractcmd "github.com/runehealth/rune_backend/cmd/extract"
	httpcmd "github.com/runehealth/rune_backend/cmd/http"
	systemcmd "github.com/runehealth/rune_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "rune",
	Short: "Rune voice-driven medical intake assistant backend.",
	Long: `Rune is the backend for a browser-based medical intake assistant.
It parses finalized patient utterances into structured form fields and
serves the session, chat-log, and form APIs the web client consumes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(extractcmd.NewExtractCommand())
}
