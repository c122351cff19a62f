// Contact-form is a terminal contact form that delivers messages through
// EmailJS.
//
// Running without arguments opens the interactive form. The send command
// submits a message without a terminal UI, which is handy for scripts.
//
// Usage:
//
//	contact-form [command] [flags]
//
// The EmailJS public key is read from CONTACTFORM_EMAILJS_PUBLIC_KEY.
// See 'contact-form --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/folio/contactform/internal/logging"
	"github.com/folio/contactform/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contact-form",
	Short: "Send a message through EmailJS",
	Long: `A terminal contact form backed by the EmailJS REST API.

Fill in your name, email, subject and message, then press ctrl+s to send.
Invalid fields are flagged in place and nothing is sent until they are fixed.

If no command is specified, the interactive form will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: OS config dir, or $CONTACTFORM_CONFIG)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Line("contact-form"))
	},
}
