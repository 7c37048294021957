package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/pinvault/internal/proto"
)

func (a *App) Projects(ctx context.Context) error {
	projects, err := a.client.ListProjects(ctx)
	if err != nil {
		return err
	}
	printProjects(a.out, projects)
	return nil
}

// Project prints one project and the items assigned to it.
func (a *App) Project(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter project ID")
	if err != nil {
		return err
	}

	p, err := a.client.GetProject(ctx, id)
	if err != nil {
		return err
	}
	items, err := a.client.ListItems(ctx, &pb.ListItemsRequest{ScopeProjectId: p.GetId()})
	if err != nil {
		return err
	}

	headerColor.Fprintln(a.out, p.Name)
	fmt.Fprintf(a.out, "Color: %s\n", p.Color)
	if p.Description != "" {
		fmt.Fprintf(a.out, "%s\n", p.Description)
	}
	fmt.Fprintln(a.out)
	printItems(a.out, items, map[string]string{p.GetId(): p.GetName()})
	return nil
}

// NewProject prompts for name, description and color. An empty color
// leaves the choice to the server default.
func (a *App) NewProject(ctx context.Context) error {
	name, err := a.prompt("Enter project name")
	if err != nil {
		return err
	}
	description, err := a.prompt("Enter description (optional)")
	if err != nil {
		return err
	}
	color, err := a.prompt("Enter color as #RRGGBB (optional)")
	if err != nil {
		return err
	}

	p, err := a.client.CreateProject(ctx, &pb.CreateProjectRequest{
		Name:        name,
		Description: description,
		Color:       color,
	})
	if err != nil {
		return err
	}

	a.success("Created project %s (%s)", p.GetName(), p.GetId())
	return nil
}

// EditProject shows the current values; an empty answer keeps a value.
func (a *App) EditProject(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter project ID")
	if err != nil {
		return err
	}

	p, err := a.client.GetProject(ctx, id)
	if err != nil {
		return err
	}

	req := &pb.UpdateProjectRequest{Id: p.GetId(), Name: p.GetName(), Description: p.GetDescription(), Color: p.GetColor()}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &req.Name},
		{"Description", &req.Description},
		{"Color", &req.Color},
	}
	for _, f := range fields {
		v, err := a.prompt(fmt.Sprintf("%s [%s]", f.label, *f.dst))
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	updated, err := a.client.UpdateProject(ctx, req)
	if err != nil {
		return err
	}

	a.success("Updated project %s", updated.Name)
	return nil
}

// DeleteProject removes a project after confirmation. Its items stay in
// the vault without a project.
func (a *App) DeleteProject(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter project ID")
	if err != nil {
		return err
	}

	p, err := a.client.GetProject(ctx, id)
	if err != nil {
		return err
	}

	question := fmt.Sprintf("Delete project %s? Its items will be kept without a project.", p.Name)
	ok, err := Confirm(a.reader, question, a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	n, err := a.client.DeleteProject(ctx, p.GetId())
	if err != nil {
		return err
	}

	a.success("Project deleted, %d item(s) unassigned", n)
	return nil
}
