package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/ports"
)

const jsonIndent = "  "

// JSONEncoder writes history as one flat object, URL to body, in insertion order.
type JSONEncoder struct{}

var _ ports.HistoryEncoder = JSONEncoder{}

func (JSONEncoder) Encode(w io.Writer, entries []domain.Entry) error {
	var buf bytes.Buffer

	if len(entries) == 0 {
		buf.WriteString("{}\n")
		_, err := w.Write(buf.Bytes())
		return err
	}

	buf.WriteString("{\n")
	for i, entry := range entries {
		key, err := marshalString(entry.URL)
		if err != nil {
			return fmt.Errorf("encode url %q: %w", entry.URL, err)
		}
		value, err := marshalString(entry.Value)
		if err != nil {
			return fmt.Errorf("encode body for %q: %w", entry.URL, err)
		}

		buf.WriteString(jsonIndent)
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
