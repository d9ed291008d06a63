package slist

import (
	"fmt"
	"io"

	"github.com/wsxiaoys/terminal"
)

type printer struct {
	*Configuration
	out *errWriter
	tw  *terminal.TerminalWriter
}

func newPrinter(w io.Writer, config *Configuration) *printer {
	out := &errWriter{w: w}
	return &printer{
		Configuration: config,
		out:           out,
		tw:            &terminal.TerminalWriter{Writer: out},
	}
}

func (p *printer) line(value interface{}) error {
	if p.color == "" {
		fmt.Fprintf(p.out, "%s %v\n", p.prefix, value)
	} else {
		p.tw.Color(p.color).Print(p.prefix).Reset().Print(" ", fmt.Sprint(value)).Nl()
	}
	return p.out.err
}

// TerminalWriter treats a failed write as fatal. errWriter reports every
// write as successful, keeps the first error and discards anything written
// after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err == nil {
		_, e.err = e.w.Write(b)
	}
	return len(b), nil
}
