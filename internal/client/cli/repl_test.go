package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/pinvault/internal/client/client"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
	err   error
}

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.call("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.call("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.call("logout", nil)
}
func (f *fakeExec) Me(ctx context.Context) error             { return f.call("me", nil) }
func (f *fakeExec) ChangePassword(ctx context.Context) error { return f.call("passwd", nil) }
func (f *fakeExec) VerifyPin(ctx context.Context) error      { return f.call("verifypin", nil) }
func (f *fakeExec) ChangePin(ctx context.Context) error      { return f.call("changepin", nil) }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.call("list", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error { return f.call("show", args) }
func (f *fakeExec) Get(ctx context.Context, args []string) error  { return f.call("get", args) }
func (f *fakeExec) AddFile(ctx context.Context, args []string) error {
	return f.call("addfile", args)
}
func (f *fakeExec) AddNote(ctx context.Context, args []string) error {
	return f.call("addnote", args)
}
func (f *fakeExec) Update(ctx context.Context, args []string) error { return f.call("update", args) }
func (f *fakeExec) Move(ctx context.Context, args []string) error   { return f.call("move", args) }
func (f *fakeExec) Delete(ctx context.Context, args []string) error { return f.call("delete", args) }
func (f *fakeExec) Projects(ctx context.Context) error              { return f.call("projects", nil) }
func (f *fakeExec) Project(ctx context.Context, args []string) error {
	return f.call("project", args)
}
func (f *fakeExec) NewProject(ctx context.Context) error { return f.call("newproject", nil) }
func (f *fakeExec) EditProject(ctx context.Context, args []string) error {
	return f.call("editproject", args)
}
func (f *fakeExec) DeleteProject(ctx context.Context, args []string) error {
	return f.call("delproject", args)
}

func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	f := &fakeExec{}
	reader := readerFromLines(
		"",
		"list",
		"login",
		"list -s secrets -t env",
		"show abc",
		"get abc out.env",
		"addfile -p p1 ./secrets.env",
		"addnote",
		"update -n x abc",
		"move abc p1",
		"rm abc",
		"projects",
		"project p1",
		"newproject",
		"editproject p1",
		"delproject p1",
		"me",
		"passwd",
		"verifypin",
		"changepin",
		"logout",
		"exit",
		"register",
	)

	runREPL(context.Background(), f, func() string { return "" }, reader)

	assert.Equal(t, []string{
		"login", "list", "show", "get", "addfile", "addnote", "update", "move", "delete",
		"projects", "project", "newproject", "editproject", "delproject",
		"me", "passwd", "verifypin", "changepin", "logout",
	}, f.calls, "list before login is refused and nothing runs after exit")

	assert.Equal(t, []string{"-s", "secrets", "-t", "env"}, f.args[1])
	assert.Equal(t, []string{"abc", "out.env"}, f.args[3])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	printed := capturePrint(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, readerFromLines("help", "login", "help"))

	assert.Contains(t, *printed, helpLoggedOut)
	assert.Contains(t, *printed, strings.TrimSpace(helpLoggedIn))
}

func TestRunREPL_UnknownAndLoggedOut(t *testing.T) {
	printed := capturePrint(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, readerFromLines("show 1", "frobnicate"))

	assert.Empty(t, f.calls)
	assert.Contains(t, *printed, "Please login first")

	f.loggedIn = true
	runREPL(context.Background(), f, func() string { return "" }, readerFromLines("frobnicate"))
	assert.Contains(t, *printed, "Unknown command: frobnicate")
}

func TestRunREPL_PrintsErrors(t *testing.T) {
	printed := capturePrint(t)

	f := &fakeExec{loggedIn: true, err: client.ErrInvalidPin}
	runREPL(context.Background(), f, func() string { return "(alice)" }, readerFromLines("show 1"))

	assert.Contains(t, *printed, "pv (alice)>")
	assert.Contains(t, *printed, "Error: invalid PIN")

	f.err = errCancelled
	runREPL(context.Background(), f, func() string { return "" }, readerFromLines("delete 1"))
	assert.Contains(t, *printed, "Cancelled")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrint(t)

	f := &fakeExec{loggedIn: true}
	runREPL(context.Background(), f, func() string { return "" }, rdr("me"))

	assert.Equal(t, []string{"me"}, f.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{client.ErrInvalidPin, "invalid PIN"},
		{client.ErrNotFound, "not found"},
		{client.ErrUnavailable, "server unavailable, try again"},
		{fmt.Errorf("%w: %s", client.ErrUnauthorized, "refresh token expired"), "session expired, please login again"},
		{fmt.Errorf("%w: %s", client.ErrUnauthorized, "invalid session"), "unauthorized"},
		{fmt.Errorf("%w: %s", client.ErrInvalidInput, "pin must be 4 digits"), "pin must be 4 digits"},
		{fmt.Errorf("%w: %s", client.ErrAlreadyExists, "email already registered"), "email already registered"},
		{errPinMismatch, "PINs do not match"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
