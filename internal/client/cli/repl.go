package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recordsync/internal/client/loop"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const prompt = "rs> "

const helpText = "Available commands: (l)ist, add <text>, show, help, exit. Any other line is added as a record."

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a stub.
type execIface interface {
	List(ctx context.Context)
	Add(ctx context.Context, text string)
	Show()
}

// dispatch runs one input line and reports whether the user asked to leave.
// It must be called on the loop goroutine.
//
//	help           show available commands
//	l | list       reload records from the server
//	add <text>     submit <text> as a new record
//	show           print the current display again
//	exit | quit    leave the program
//
// Any other non-blank line is submitted as is.
func dispatch(ctx context.Context, a execIface, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	cmd, rest, _ := strings.Cut(trimmed, " ")

	switch cmd {
	case "help":
		printlnFn(helpText)

	case "l", "list":
		a.List(ctx)

	case "add":
		if strings.TrimSpace(rest) == "" {
			printlnFn("Usage: add <text>")
			return false
		}
		a.Add(ctx, rest)

	case "show":
		a.Show()

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		a.Add(ctx, trimmed)
	}
	return false
}

// runREPL reads lines from scanner and posts each one to lp, so commands
// run on the loop goroutine in input order. It returns on scanner EOF, when
// ctx is done, or after a line that asked to leave; in the last two cases
// and on EOF stop is posted to the loop.
func runREPL(ctx context.Context, lp *loop.Loop, a execIface, scanner *bufio.Scanner, stop func()) {
	quit := make(chan struct{})
	left := false // touched on the loop only

	for scanner.Scan() {
		line := scanner.Text()

		lp.Post(func() {
			if left {
				return
			}
			if dispatch(ctx, a, line) {
				left = true
				close(quit)
				stop()
				return
			}
			printFn(prompt)
		})

		select {
		case <-quit:
			return
		case <-ctx.Done():
			return
		default:
		}
	}

	lp.Post(stop)
}
