package cmd

import (
	"fmt"

	"github.com/bnema/fetchpad/internal/adapters/export"
	"github.com/bnema/fetchpad/internal/adapters/render/tui"
	"github.com/spf13/cobra"
)

const (
	exportFormatFlag = "export-format"
	exportPathFlag   = "export-path"
)

func Execute() error {
	a, err := wireApp()
	if a != nil {
		defer a.close()
	}

	return newRootCmd(a, err).Execute()
}

// newRootCmd builds the command tree. When wiring failed every command
// reports wireErr instead of running.
func newRootCmd(a *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fetchpad",
		Short:         "Interactive terminal scratchpad for HTTP GET requests",
		Long:          "fetchpad lets you type URLs, send GET requests and browse the responses from the terminal. On a confirmed exit the request history is exported as JSON or TOML.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		a = &app{}
		rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
	}

	rootCmd.PersistentFlags().String(exportFormatFlag, a.cfg.Export.Format, "export format (json or toml)")
	rootCmd.PersistentFlags().String(exportPathFlag, a.cfg.Export.Path, "write the export to this file instead of stdout")

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		format, path, err := exportFlags(cmd)
		if err != nil {
			return err
		}

		session := a.newSession("tui")
		a.log.Info().Str("session", session.ID()).Msg("session started")

		result, err := tui.Run(cmd.Context(), session, tui.Options{
			Input:     cmd.InOrStdin(),
			Output:    cmd.OutOrStdout(),
			AltScreen: true,
		})
		if err != nil {
			return err
		}
		if !result.Export {
			a.log.Info().Str("session", session.ID()).Msg("quit without export")
			return nil
		}

		return a.exportHistory(cmd.OutOrStdout(), session.Entries(), format, path)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGetCmd(a),
	)

	return rootCmd
}

func exportFlags(cmd *cobra.Command) (string, string, error) {
	format, err := cmd.Flags().GetString(exportFormatFlag)
	if err != nil {
		return "", "", err
	}
	if _, err := export.EncoderFor(format); err != nil {
		return "", "", fmt.Errorf("--%s: %w", exportFormatFlag, err)
	}

	path, err := cmd.Flags().GetString(exportPathFlag)
	if err != nil {
		return "", "", err
	}
	return format, path, nil
}
