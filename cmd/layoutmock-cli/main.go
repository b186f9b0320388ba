// Command layoutmock-cli edits, renders, and lints mock record-detail
// layouts from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose      bool
	templateName string
	inputPath    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "layoutmock-cli",
	Short: "Sketch CRM record-detail layouts",
	Long: `layoutmock-cli builds mock record-detail pages from layout templates.

Start from a built-in template or an exported JSON file, rearrange sections
and fields interactively, then render the result as HTML or plain text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&templateName, "template", "t", "", "Built-in template to start from (see 'templates')")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Exported layout JSON to load instead of a template")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(scaffoldCmd)
	rootCmd.AddCommand(lintCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
