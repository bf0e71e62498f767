package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdPlay
	CmdPlayAt
	CmdJump
	CmdSort
	CmdBoard
	CmdHistory
	CmdRestart
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType

	// Cell is 0-based, set for CmdPlay.
	Cell int
	// Row and Column are 1-based, set for CmdPlayAt.
	Row    int
	Column int
	// Move is set for CmdJump.
	Move int
}

// Parse turns one input line into a command. A bare number n plays cell n
// counted 1..9 row by row; two numbers are a row and a column.
func Parse(input string) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return Command{Type: CmdNone}, nil
	}

	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "play", "p":
		return parsePlay(args)
	case "jump", "goto", "j":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes one move number", apperror.ErrBadArgument, cmd)
		}
		move, err := parseInt(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdJump, Move: move}, nil
	case "sort":
		return Command{Type: CmdSort}, nil
	case "board", "show":
		return Command{Type: CmdBoard}, nil
	case "history", "moves":
		return Command{Type: CmdHistory}, nil
	case "restart", "new":
		return Command{Type: CmdRestart}, nil
	case "help", "?":
		return Command{Type: CmdHelp}, nil
	case "quit", "exit", "q":
		return Command{Type: CmdQuit}, nil
	}

	if _, err := strconv.Atoi(cmd); err == nil {
		return parsePlay(parts)
	}

	return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, cmd)
}

func parsePlay(args []string) (Command, error) {
	switch len(args) {
	case 1:
		n, err := parseInt(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdPlay, Cell: n - 1}, nil
	case 2:
		row, err := parseInt(args[0])
		if err != nil {
			return Command{}, err
		}
		column, err := parseInt(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: CmdPlayAt, Row: row, Column: column}, nil
	default:
		return Command{}, fmt.Errorf("%w: play takes a cell or a row and a column", apperror.ErrBadArgument)
	}
}

func parseInt(arg string) (int, error) {
	n, err := strconv.Atoi(strings.Trim(arg, ",()"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrBadArgument, arg)
	}

	return n, nil
}
