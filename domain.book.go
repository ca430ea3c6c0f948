package main

import (
	"context"
	"strings"
)

// Publication years accepted by the catalog, both inclusive.
const (
	MinYear = 1000
	MaxYear = 2025
)

// Book represents a book entity. The title is its only identity.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
	Genre  string `json:"genre" yaml:"genre"`
	Read   bool   `json:"read" yaml:"read"`
}

// Status returns the human readable read status.
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// GenreCount is the number of books sharing a genre.
type GenreCount struct {
	Genre string
	Count int
}

// Stats holds the aggregated figures of a catalog. Genres
// keeps the order in which each genre was first seen.
type Stats struct {
	Total  int
	Read   int
	Unread int
	Genres []GenreCount
}

// GenreCounts returns the genres figures as a map.
func (s Stats) GenreCounts() map[string]int {
	m := make(map[string]int, len(s.Genres))
	for _, g := range s.Genres {
		m[g.Genre] = g.Count
	}
	return m
}

// YearMode selects the side of a year used by year queries.
type YearMode int

const (
	// Before matches books published strictly before the year.
	Before YearMode = iota
	// OnOrAfter matches books published in the year or later.
	OnOrAfter
)

func (m YearMode) String() string {
	switch m {
	case Before:
		return "before"
	case OnOrAfter:
		return "on-or-after"
	default:
		return "unknown"
	}
}

// ParseYearMode converts `before` or `on-or-after` into a YearMode.
func ParseYearMode(s string) (YearMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return Before, nil
	case "on-or-after":
		return OnOrAfter, nil
	default:
		return Before, ErrInvalidYearMode
	}
}

// BookStorage defines possible operations on book entity.
// Titles are matched case-insensitively.
type BookStorage interface {
	Add(ctx context.Context, book Book) error
	GetOne(ctx context.Context, title string) (Book, error)
	Delete(ctx context.Context, title string) error
	Update(ctx context.Context, book Book) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}
