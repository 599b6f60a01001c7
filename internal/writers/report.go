// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"opfind/internal/output"
	"opfind/internal/report"
)

// StartReportWriter spins up a writer goroutine for report.Report
// items. Text streams line by line; JSON buffers the run and writes
// one array at the end. The returned error channel yields exactly one
// value after the input channel is closed and drained.
func StartReportWriter(out io.Writer, format string, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []report.Report
			for r := range in {
				buf = append(buf, r)
			}
			err = output.WriteJSON(out, buf)

		case output.FormatText:
			err = output.StreamText(out, in, header)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so the producer never blocks after a write error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
