package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	errs  map[string]error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) cmd(name string) command {
	return command{usage: name + " <x>", run: func(_ context.Context, args []string) error {
		f.calls = append(f.calls, name)
		if f.args == nil {
			f.args = map[string][]string{}
		}
		f.args[name] = args
		return f.errs[name]
	}}
}

func (f *fakeExec) commands() map[string]command {
	return map[string]command{
		"mood":  f.cmd("mood"),
		"msg":   f.cmd("msg"),
		"sync":  f.cmd("sync"),
		"link":  f.cmd("link"),
		"notes": f.cmd("notes"),
	}
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func lines(in ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(in, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(status)" }, lines(
		"help",
		"mood today great",
		"login",
		"help",
		"mood today great",
		"msg hello   there",
		"",
		"sync",
		"foobar",
		"logout",
		"exit",
		"sync",
	))

	assert.Equal(t, []string{"login", "mood", "msg", "sync", "logout"}, exec.calls)
	assert.Equal(t, []string{"today", "great"}, exec.args["mood"])
	assert.Equal(t, []string{"hello", "there"}, exec.args["msg"])

	assert.Contains(t, *out, "Please login first")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "duo(status)> ")
	assert.Contains(t, *out, "  mood <x>")
	assert.Contains(t, *out, "Available commands: register, login, exit")
}

func TestRunREPL_ErrorsAndUsage(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{loggedIn: true, errs: map[string]error{
		"link":  errors.New("partner not found"),
		"notes": errUsage,
	}}
	runREPL(context.Background(), exec, func() string { return "" }, lines("link bob@example.org", "notes x"))

	require.Equal(t, []string{"link", "notes"}, exec.calls)
	assert.Contains(t, *out, "Error: partner not found")
	assert.Contains(t, *out, "Usage: notes <x>")
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, lines("sync"))

	assert.Equal(t, []string{"sync"}, exec.calls)
}

func TestRunREPL_LogoutRequiresLogin(t *testing.T) {
	out := capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, lines("logout", "quit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Please login first")
}
