package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/folio/contactform/internal/config"
	"github.com/folio/contactform/internal/contact"
	"github.com/folio/contactform/internal/emailjs"
	"github.com/folio/contactform/internal/tui"
	"github.com/folio/contactform/internal/ui"
)

// Send command flags
var (
	sendName    string
	sendEmail   string
	sendSubject string
	sendMessage string
)

// Config command flags
var forceInit bool

func init() {
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// formCmd opens the interactive form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive contact form",
	Long: `Open the interactive contact form in the terminal.

Keys:
  tab / shift+tab  move between fields
  enter            next field, or send when the button is focused
  ctrl+s           send from anywhere
  esc / ctrl+c     quit`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive form needs a terminal; use 'contact-form send' instead")
	}

	a, err := setup()
	if err != nil {
		return err
	}

	ctrl := a.newController(a.client, contact.WithContext(cmd.Context()))
	defer ctrl.Close()

	p := tea.NewProgram(tui.NewFormModel(ctrl), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("form error: %w", err)
	}

	return nil
}

// sendCmd submits one message without the terminal UI
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message without the interactive form",
	Long: `Validate and send a single message.

The same rules as the interactive form apply: every field is required and
the email must be a valid address. Status changes are printed as they
happen. The command exits non-zero when the message was not sent.`,
	Example: `  # Send a message
  contact-form send --name Ada --email ada@example.com \
    --subject Hello --message "Nice to meet you"

  # Read the message body from stdin
  echo "Nice to meet you" | contact-form send --name Ada \
    --email ada@example.com --subject Hello --message -`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendName, "name", "", "Your name")
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "Your email address")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Message subject")
	sendCmd.Flags().StringVar(&sendMessage, "message", "", "Message body ('-' reads stdin)")
}

func runSend(cmd *cobra.Command, args []string) error {
	message := sendMessage
	if message == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read message from stdin: %w", err)
		}
		message = strings.TrimRight(string(data), "\n")
	}

	a, err := setup()
	if err != nil {
		return err
	}

	ctrl := a.newController(a.client, contact.WithContext(cmd.Context()))
	defer ctrl.Close()

	fields := contact.Fields{
		Name:    sendName,
		Email:   sendEmail,
		Subject: sendSubject,
		Message: message,
	}
	return submitOnce(cmd.Context(), cmd.ErrOrStderr(), ctrl, fields)
}

// submitOnce drives ctrl through one submission, printing every label the
// form would show followed by a result box.
func submitOnce(ctx context.Context, out io.Writer, ctrl *contact.Controller, fields contact.Fields) error {
	fmt.Fprintln(out, ui.NewHeader("Send a Message", "contact-form send",
		ui.Detail{Key: "From", Value: fmt.Sprintf("%s <%s>", fields.Name, fields.Email)},
		ui.Detail{Key: "Subject", Value: fields.Subject},
	).Render())

	ctrl.SetFields(fields)
	printLabel(out, ctrl)

	attempt, err := ctrl.Submit()
	if err != nil {
		printLabel(out, ctrl)

		result := ui.NewFailureResult("Message not sent", err, "")
		var ve *contact.ValidationError
		switch {
		case errors.As(err, &ve):
			for _, f := range ve.Errors.Fields() {
				result.AddDetail(f.Key(), ctrl.View().Field(f).Placeholder)
			}
		case errors.Is(err, contact.ErrNotConfigured):
			result = ui.NewFailureResult("Message not sent", err, emailjs.GetTroubleshootingHint(err))
		}
		fmt.Fprintln(out, result.Render())
		return err
	}

	printLabel(out, ctrl)
	outcome := attempt.Run(ctx)
	ctrl.Complete(outcome)
	printLabel(out, ctrl)

	if !outcome.OK() {
		fmt.Fprintln(out, ui.NewFailureResult("Message not sent", outcome.Err,
			emailjs.GetTroubleshootingHint(outcome.Err)).
			AddDetail("Request", outcome.RequestID).
			Render())
		return fmt.Errorf("message not sent: %w", outcome.Err)
	}

	fmt.Fprintln(out, ui.NewSuccessResult(contact.LabelSent,
		ui.Detail{Key: "Request", Value: outcome.RequestID},
		ui.Detail{Key: "Elapsed", Value: outcome.Elapsed.Round(time.Millisecond).String()},
	).Render())
	return nil
}

func printLabel(out io.Writer, ctrl *contact.Controller) {
	fmt.Fprintf(out, "[%s]\n", ctrl.View().Label)
}

// configCmd groups settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Manage the contact form settings file.

The file holds the EmailJS endpoint, service and template ids, the dispatch
timeout and form behaviour. The public key is never stored in it.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("settings file already exists at %s (use --force to overwrite)", path)
		}
		if err := config.NewSettings().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		settings, err := config.Load(path)
		if err != nil {
			return err
		}
		env.Apply(settings)

		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		if env.PublicKey == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "# public key: not set")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "# public key: set")
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// resolveConfigPath applies --config, then $CONTACTFORM_CONFIG, then the
// OS default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	env, err := config.LoadEnv()
	if err != nil {
		return "", err
	}
	if env.ConfigPath != "" {
		return env.ConfigPath, nil
	}
	return config.GetConfigPath()
}
