package cmd

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/fetchpad/internal/adapters/export"
	httpfetch "github.com/bnema/fetchpad/internal/adapters/fetch/http"
	"github.com/bnema/fetchpad/internal/application"
	"github.com/bnema/fetchpad/internal/config"
	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/logging"
	"github.com/bnema/fetchpad/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg       config.Config
	log       zerolog.Logger
	logCloser io.Closer
	fetcher   ports.Fetcher
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		cfg:       cfg,
		log:       log,
		logCloser: closer,
		fetcher:   httpfetch.NewFetcher(&http.Client{}, log),
	}, nil
}

func (a *app) newSession(component string) *application.Session {
	return application.NewSession(a.fetcher, a.log.With().Str("component", component).Logger())
}

// exportHistory writes entries in format to path, or to stdout when path is empty.
func (a *app) exportHistory(stdout io.Writer, entries []domain.Entry, format, path string) error {
	enc, err := export.EncoderFor(format)
	if err != nil {
		return err
	}

	if err := export.Write(enc, entries, path, stdout); err != nil {
		return fmt.Errorf("export history: %w", err)
	}

	a.log.Info().
		Int("requests", len(entries)).
		Str("format", format).
		Str("path", path).
		Msg("history exported")
	return nil
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
