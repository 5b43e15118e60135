package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console is a line-oriented terminal over an input reader and output
// writer. When input is piped rather than a real terminal, consumed
// answers are echoed to the output so the transcript still reads like an
// interactive session; on a terminal the local echo already does this.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// New creates a console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	echo := false
	if f, ok := in.(*os.File); ok {
		echo = !term.IsTerminal(int(f.Fd()))
	}

	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		echo: echo,
	}
}

// ReadLine blocks until a full line arrives and returns it with
// surrounding whitespace trimmed. A final line without a trailing newline
// still counts; after that, the underlying read error is returned.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	line = strings.TrimSpace(line)
	if c.echo {
		fmt.Fprintln(c.out, line)
	}

	return line, nil
}

// Printf writes formatted text to the transcript.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
