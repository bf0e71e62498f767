package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewLineReader returns a line editor when in is a terminal and a plain line
// scanner otherwise, so that moves can be piped in.
func NewLineReader(conf config.Terminal, in *os.File, out io.Writer) (LineReader, error) {
	if !IsInteractive(in) {
		return NewScriptReader(in), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          conf.Prompt + "> ",
		HistoryFile:     conf.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}

	return rl, nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("play"),
	readline.PcItem("jump"),
	readline.PcItem("sort"),
	readline.PcItem("board"),
	readline.PcItem("history"),
	readline.PcItem("restart"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

type scriptReader struct {
	scanner *bufio.Scanner
}

func NewScriptReader(in io.Reader) LineReader {
	return &scriptReader{scanner: bufio.NewScanner(in)}
}

func (that *scriptReader) Readline() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return "", io.EOF
}

func (that *scriptReader) Close() error {
	return nil
}
