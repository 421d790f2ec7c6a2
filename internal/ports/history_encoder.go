package ports

import (
	"io"

	"github.com/bnema/fetchpad/internal/domain"
)

type HistoryEncoder interface {
	Encode(w io.Writer, entries []domain.Entry) error
}
