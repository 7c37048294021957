package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	VerifyPin(ctx context.Context) error
	ChangePin(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Get(ctx context.Context, args []string) error
	AddFile(ctx context.Context, args []string) error
	AddNote(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Projects(ctx context.Context) error
	Project(ctx context.Context, args []string) error
	NewProject(ctx context.Context) error
	EditProject(ctx context.Context, args []string) error
	DeleteProject(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = `Available commands:
  list [-s text] [-p project | -u] [-t type]   list items
  show <id>                                    print item content
  get <id> [path]                              save item content to a file
  addfile [-n name] [-t type] [-p project] <path>
  addnote [-p project]                         type in a note
  update [-n name] [-t type] [-f path] [-p project | -u] <id>
  move <id> [project]                          move or unassign an item
  delete <id>
  projects | project <id> | newproject | editproject <id> | delproject <id>
  me, passwd, verifypin, changepin, logout, exit`
)

// loggedOutCommands may run without a session.
var loggedOutCommands = map[string]bool{
	"help": true, "register": true, "login": true, "exit": true, "quit": true,
}

// runREPL starts a simple read–eval–print loop for the PinVault CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Errors returned by handlers are printed and the loop continues. The loop
// exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pv %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !loggedOutCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please login first")
			continue
		}

		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "me":
			cmdErr = a.Me(ctx)
		case "passwd":
			cmdErr = a.ChangePassword(ctx)
		case "verifypin":
			cmdErr = a.VerifyPin(ctx)
		case "changepin":
			cmdErr = a.ChangePin(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "get":
			cmdErr = a.Get(ctx, args)
		case "addfile":
			cmdErr = a.AddFile(ctx, args)
		case "addnote":
			cmdErr = a.AddNote(ctx, args)
		case "update":
			cmdErr = a.Update(ctx, args)
		case "move":
			cmdErr = a.Move(ctx, args)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)

		case "projects":
			cmdErr = a.Projects(ctx)
		case "project":
			cmdErr = a.Project(ctx, args)
		case "newproject":
			cmdErr = a.NewProject(ctx)
		case "editproject":
			cmdErr = a.EditProject(ctx, args)
		case "delproject":
			cmdErr = a.DeleteProject(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, errCancelled) {
				printlnFn("Cancelled")
				continue
			}
			printlnFn(errorColor.Sprint("Error: " + describeError(cmdErr)))
		}
	}
}
