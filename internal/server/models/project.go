package models

import "time"

// ProjectID identifies a Project.
type ProjectID string

// DefaultProjectColor is used when a project is created without a color.
const DefaultProjectColor = "#007bff"

// Project groups items. Deleting it leaves its items unassigned.
type Project struct {
	ID          ProjectID
	OwnerID     AccountID
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectWithStats adds the number of items currently in the project.
type ProjectWithStats struct {
	Project
	ItemCount int
}
