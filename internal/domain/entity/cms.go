// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NavigationItem is one storefront menu link.
type NavigationItem struct {
	ID        uuid.UUID         `json:"id"`
	Label     string            `json:"label"`
	URL       string            `json:"url"`
	ParentID  *uuid.UUID        `json:"parent_id,omitempty"`
	Position  int               `json:"position"`
	IsActive  bool              `json:"is_active"`
	Children  []*NavigationItem `json:"children,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Page is a CMS page (about, terms, FAQ...).
type Page struct {
	ID              uuid.UUID `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
