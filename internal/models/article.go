// Package models defines the newsletter data structures.
package models

// Article represents one curated link of a weekly edition.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Date        string `json:"date"`
}

// Source is an entry of the edition's source list.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
