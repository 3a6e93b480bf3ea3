package output

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/whiteelite/garage/internal/domain/entities"
	"github.com/whiteelite/garage/internal/infrastructure/output/mapper"
)

type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Writer emits records to some destination.
type Writer interface {
	Write(r entities.Record) error
}

func NewWriter(format Format, w io.Writer) (Writer, error) {
	switch format {
	case FormatLines, "":
		return &LinesWriter{w: w}, nil
	case FormatJSON:
		return &JSONWriter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// LinesWriter prints every field value of a record on its own line.
type LinesWriter struct {
	w io.Writer
}

func (l *LinesWriter) Write(r entities.Record) error {
	for _, name := range entities.Fields(r) {
		value, err := entities.ReadField(r, name)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(l.w, value); err != nil {
			return errors.Wrapf(err, "writing %s %s", r.EntityKind(), name)
		}
	}

	return nil
}

// JSONWriter writes one message envelope per line.
type JSONWriter struct {
	enc *json.Encoder
}

func (j *JSONWriter) Write(r entities.Record) error {
	message, err := mapper.ToMessage(&r)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", r.EntityKind())
	}

	return j.enc.Encode(message)
}

var (
	_ Writer = (*LinesWriter)(nil)
	_ Writer = (*JSONWriter)(nil)
)
