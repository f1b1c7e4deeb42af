// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"kmercount/internal/output"
	"kmercount/internal/writers"
)

// WriterFactory starts the output goroutine for a run.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- output.Row, <-chan error)
}

// RowWriterFactory writes rows in one of the registered formats.
type RowWriterFactory struct {
	Format string
	Header bool
}

func NewRowWriterFactory(format string, header bool) RowWriterFactory {
	return RowWriterFactory{Format: format, Header: header}
}

func (w RowWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return writers.StartWriter(out, w.Format, w.Header, bufSize)
}
