package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/fetchpad/internal/application"
	"github.com/bnema/fetchpad/internal/domain"
	"github.com/spf13/cobra"
)

func newGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get URL...",
		Short: "Fetch URLs without the TUI and export the history",
		Long:  "get sends a GET request for each URL in order, the same way the interactive editor does, then writes the export document. Failed requests are kept as error markers.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, path, err := exportFlags(cmd)
			if err != nil {
				return err
			}

			session := app.newSession("get")
			if err := runFetchProgress(cmd.Context(), cmd.ErrOrStderr(), args, sessionFetch(session)); err != nil {
				return err
			}

			return app.exportHistory(cmd.OutOrStdout(), session.Entries(), format, path)
		},
	}
}

// sessionFetch submits each URL through session and reports the stored entry.
// A cancelled context aborts the batch instead of recording more markers.
func sessionFetch(session *application.Session) fetchFunc {
	return func(ctx context.Context, url string) (domain.Entry, error) {
		if err := ctx.Err(); err != nil {
			return domain.Entry{}, err
		}

		submitURL(ctx, session, url)

		entry, ok := session.Lookup(url)
		if !ok {
			return domain.Entry{}, fmt.Errorf("no history entry for %q", url)
		}
		return entry, nil
	}
}

// submitURL replays the keystrokes of opening the editor, typing url and
// pressing Enter.
func submitURL(ctx context.Context, session *application.Session, url string) {
	session.Handle(ctx, domain.CharKey('e'))
	for _, r := range url {
		session.Handle(ctx, domain.CharKey(r))
	}
	session.Handle(ctx, domain.NamedKey(domain.KeyEnter))
}
