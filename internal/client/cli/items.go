package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/filex"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
)

// idArg returns the first positional argument or asks for it.
func (a *App) idArg(args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := a.prompt(label)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errMissingInput
	}
	return id, nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return errCancelled
	}
	return err
}

// projectNames maps project IDs to names for display. A failed lookup only
// degrades the output to raw IDs.
func (a *App) projectNames(ctx context.Context) map[string]string {
	projects, err := a.client.ListProjects(ctx)
	if err != nil {
		return nil
	}
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.GetId()] = p.GetName()
	}
	return names
}

// List prints the items matching the given filters. Positional words are
// used as the search text when -s is not given.
func (a *App) List(ctx context.Context, args []string) error {
	req := &pb.ListItemsRequest{}

	fs := a.newFlagSet("list")
	fs.StringVar(&req.Search, "s", "", "search in file names")
	fs.StringVar(&req.ProjectId, "p", "", "only items of this project")
	fs.BoolVar(&req.Unassigned, "u", false, "only items without a project")
	fs.StringVar(&req.FileType, "t", "", "only items of this type (env, txt, json, other)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if req.Search == "" && fs.NArg() > 0 {
		req.Search = strings.Join(fs.Args(), " ")
	}

	items, err := a.client.ListItems(ctx, req)
	if err != nil {
		return err
	}

	printItems(a.out, items, a.projectNames(ctx))
	return nil
}

// Show prints the decrypted content of an item. The plaintext is wiped
// after printing.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item ID")
	if err != nil {
		return err
	}

	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	item, content, err := a.client.GetItem(ctx, id, string(pin))
	if err != nil {
		return err
	}
	defer common.WipeByteArray(content)

	printItemHeader(a.out, item)
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	fmt.Fprintln(a.out, string(content))
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	return nil
}

// Get saves the decrypted content of an item to path, or to the item's
// filename in the current directory. Existing files are not overwritten.
func (a *App) Get(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item ID")
	if err != nil {
		return err
	}

	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	item, content, err := a.client.GetItem(ctx, id, string(pin))
	if err != nil {
		return err
	}
	defer common.WipeByteArray(content)

	path := filepath.Base(item.Filename)
	if len(args) > 1 {
		path = args[1]
	}

	if err := filex.WriteFile(path, content); err != nil {
		return err
	}

	a.success("Saved %s (%d bytes)", path, len(content))
	return nil
}

// AddFile uploads a local file as a new item.
func (a *App) AddFile(ctx context.Context, args []string) error {
	req := &pb.CreateItemRequest{}

	fs := a.newFlagSet("addfile")
	fs.StringVar(&req.Filename, "n", "", "item name (default: file name)")
	fs.StringVar(&req.FileType, "t", "", "file type (default: from extension)")
	fs.StringVar(&req.ProjectId, "p", "", "project ID")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		var err error
		if path, err = a.prompt("Enter file path"); err != nil {
			return err
		}
		if path == "" {
			return errMissingInput
		}
	}

	content, err := filex.ReadFile(path, common.MaxItemSize)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(content)

	if req.Filename == "" {
		req.Filename = filepath.Base(path)
	}
	req.Content = content

	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)
	req.Pin = string(pin)

	item, err := a.client.CreateItem(ctx, req)
	if err != nil {
		return err
	}

	a.success("Stored %s as %s", item.GetFilename(), item.GetId())
	return nil
}

// AddNote stores typed-in text as a new item.
func (a *App) AddNote(ctx context.Context, args []string) error {
	req := &pb.CreateNoteRequest{}

	fs := a.newFlagSet("addnote")
	fs.StringVar(&req.FileType, "t", "", "note type (default: txt)")
	fs.StringVar(&req.ProjectId, "p", "", "project ID")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	title, err := a.prompt("Enter title")
	if err != nil {
		return err
	}
	req.Title = title

	text, err := GetMultiline(a.reader, "Enter note text:", a.out)
	if err != nil {
		return err
	}
	req.Content = []byte(text)
	defer common.WipeByteArray(req.Content)

	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)
	req.Pin = string(pin)

	item, err := a.client.CreateNote(ctx, req)
	if err != nil {
		return err
	}

	a.success("Stored %s as %s", item.GetFilename(), item.GetId())
	return nil
}

// Update changes the name, type, content or project of an item. Only the
// given flags are applied; the item is left as it was when anything fails.
func (a *App) Update(ctx context.Context, args []string) error {
	var (
		name, fileType, path, project string
		unassign                      bool
	)

	fs := a.newFlagSet("update")
	fs.StringVar(&name, "n", "", "new item name")
	fs.StringVar(&fileType, "t", "", "new file type")
	fs.StringVar(&path, "f", "", "replace content with this file")
	fs.StringVar(&project, "p", "", "move to this project")
	fs.BoolVar(&unassign, "u", false, "remove from its project")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	id, err := a.idArg(fs.Args(), "Enter item ID")
	if err != nil {
		return err
	}

	req := &pb.UpdateItemRequest{Id: id}
	if name != "" {
		req.Filename = &name
	}
	if fileType != "" {
		req.FileType = &fileType
	}
	switch {
	case project != "" && unassign:
		return errConflictingFlags
	case project != "":
		req.Project = &pb.ProjectChange{ProjectId: project}
	case unassign:
		req.Project = &pb.ProjectChange{}
	}
	if path != "" {
		content, err := filex.ReadFile(path, common.MaxItemSize)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(content)
		req.ReplaceContent = true
		req.Content = content
	}

	if req.Filename == nil && req.FileType == nil && req.Project == nil && !req.ReplaceContent {
		return errNothingToDo
	}

	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)
	req.Pin = string(pin)

	item, err := a.client.UpdateItem(ctx, req)
	if err != nil {
		return err
	}

	a.success("Updated %s", item.Filename)
	return nil
}

// Move assigns an item to a project; without a project it unassigns it.
func (a *App) Move(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item ID")
	if err != nil {
		return err
	}

	var projectID string
	if len(args) > 1 {
		projectID = args[1]
	}

	item, err := a.client.MoveItem(ctx, id, projectID)
	if err != nil {
		return err
	}

	if projectID == "" {
		a.success("%s is now unassigned", item.Filename)
	} else {
		a.success("Moved %s", item.Filename)
	}
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item ID")
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete item %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if err := a.client.DeleteItem(ctx, id); err != nil {
		return err
	}

	a.success("Item deleted")
	return nil
}
