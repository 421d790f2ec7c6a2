package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/ports"
)

const (
	FormatJSON = "json"
	FormatTOML = "toml"

	exportFileMode  = 0o600
	exportDirMode   = 0o700
	tempFilePattern = ".fetchpad-export-*.tmp"
)

var ErrUnknownFormat = errors.New("unknown export format")

func EncoderFor(format string) (ports.HistoryEncoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return JSONEncoder{}, nil
	case FormatTOML:
		return TOMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", ErrUnknownFormat, format, FormatJSON, FormatTOML)
	}
}

// Write encodes entries to stdout when path is empty, or replaces the file
// at path atomically otherwise.
func Write(enc ports.HistoryEncoder, entries []domain.Entry, path string, stdout io.Writer) error {
	if strings.TrimSpace(path) == "" {
		if err := enc.Encode(stdout, entries); err != nil {
			return fmt.Errorf("write export to stdout: %w", err)
		}
		return nil
	}

	return writeFile(enc, entries, filepath.Clean(path))
}

func writeFile(enc ports.HistoryEncoder, entries []domain.Entry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), exportDirMode); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := enc.Encode(tempFile, entries); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp export file: %w", err)
	}

	if err := tempFile.Chmod(exportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp export file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false
	return nil
}
