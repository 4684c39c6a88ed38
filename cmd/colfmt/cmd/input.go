package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	stdinAttempts = 5
	stdinDelay    = 100 * time.Millisecond
)

var errBinaryInput = errors.New("binary input is not supported")

// readInput acquires the raw input text for a command. A non-empty
// argument is tried as a file path first and used as a literal string
// otherwise; an empty argument reads stdin with a bounded retry. Input
// that is not valid UTF-8 is rejected before it reaches the formatting
// core.
func readInput(arg string) (string, error) {
	if arg != "" {
		if data, err := os.ReadFile(arg); err == nil {
			return ensureText(data)
		}
		return ensureText([]byte(arg))
	}
	return readStdin(os.Stdin)
}

func readStdin(r io.Reader) (string, error) {
	for attempt := 1; ; attempt++ {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		if len(data) > 0 {
			return ensureText(data)
		}
		if attempt >= stdinAttempts {
			return "", errors.Errorf("no input on stdin after %d attempts", stdinAttempts)
		}
		slog.Debug("empty read from stdin, retrying", "attempt", attempt)
		time.Sleep(stdinDelay)
	}
}

func ensureText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errBinaryInput
	}
	return string(data), nil
}
