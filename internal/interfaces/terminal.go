package interfaces

// Terminal is the line-oriented console the wizard talks to. Prompts are
// written without a trailing newline so the answer appears on the same
// line, the way a terminal shows it.
type Terminal interface {
	// ReadLine blocks until the operator submits a line and returns it
	// with surrounding whitespace trimmed. There is no timeout; a read
	// failure (such as end of a piped script) is returned to the caller.
	ReadLine() (string, error)

	// Printf writes formatted text to the transcript.
	Printf(format string, a ...any)
}
