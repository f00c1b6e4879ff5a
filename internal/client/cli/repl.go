package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb available after login.
type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	commands() map[string]command
}

// runREPL starts a read–eval–print loop for the duosync CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to a. The rest of the line is passed to the command as
// arguments. The loop exits on EOF or when the user types "exit" or "quit".
//
// Without a session only help, register, login and exit are accepted.
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("duo%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a)
			continue
		case "register":
			report(a.Register(ctx))
			continue
		case "login":
			report(a.Login(ctx))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if _, ok := a.commands()[cmd]; ok || cmd == "logout" {
				printlnFn("Please login first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		if cmd == "logout" {
			report(a.Logout(ctx))
			continue
		}

		c, ok := a.commands()[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := c.run(ctx, args); err != nil {
			if errors.Is(err, errUsage) {
				printlnFn("Usage:", c.usage)
			} else {
				report(err)
			}
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, exit")
		return
	}
	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	printlnFn("Available commands:")
	for _, name := range names {
		printlnFn("  " + cmds[name].usage)
	}
	printlnFn("  logout")
	printlnFn("  exit")
}
