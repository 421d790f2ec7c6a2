package export

import (
	"fmt"
	"io"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const currentSchemaVersion = 1

type documentSchema struct {
	Version  int             `toml:"version"`
	Requests []requestSchema `toml:"requests"`
}

type requestSchema struct {
	URL  string `toml:"url"`
	Body string `toml:"body"`
}

// TOMLEncoder writes history as [[requests]] tables in insertion order.
type TOMLEncoder struct{}

var _ ports.HistoryEncoder = TOMLEncoder{}

func (TOMLEncoder) Encode(w io.Writer, entries []domain.Entry) error {
	doc := documentSchema{
		Version:  currentSchemaVersion,
		Requests: make([]requestSchema, 0, len(entries)),
	}
	for _, entry := range entries {
		doc.Requests = append(doc.Requests, requestSchema{URL: entry.URL, Body: entry.Value})
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode history document: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// DecodeTOML reads a document written by TOMLEncoder back into entries.
func DecodeTOML(data []byte) ([]domain.Entry, error) {
	var doc documentSchema
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode history document: %w", err)
	}
	if doc.Version > currentSchemaVersion {
		return nil, fmt.Errorf("unsupported history schema version %d (current %d)", doc.Version, currentSchemaVersion)
	}

	entries := make([]domain.Entry, 0, len(doc.Requests))
	for _, req := range doc.Requests {
		entries = append(entries, domain.Entry{URL: req.URL, Value: req.Body})
	}

	return entries, nil
}
