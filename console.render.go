package main

import (
	"errors"
	"fmt"
)

func (c *Console) renderLibrary(books []Book) {
	if len(books) == 0 {
		c.println("No books in the library.")
		return
	}
	c.println("\nBooks in Library:")
	for _, b := range books {
		c.printf("- %s by %s (%d, %s) - %s\n", b.Title, b.Author, b.Year, b.Genre, b.Status())
	}
}

func (c *Console) renderStatistics(stats Stats) {
	c.printf("Total books: %d\n", stats.Total)
	c.printf("Read books: %d\n", stats.Read)
	c.printf("Unread books: %d\n", stats.Unread)
	c.println("Books by genre:")
	for _, g := range stats.Genres {
		c.printf("  %s: %d\n", g.Genre, g.Count)
	}
}

func (c *Console) renderAuthorBooks(author string, books []Book) {
	if len(books) == 0 {
		c.printf("No books found by author '%s'.\n", author)
		return
	}
	c.printf("\nBooks by %s:\n", author)
	for _, b := range books {
		c.printf("- %s (%d, %s) - %s\n", b.Title, b.Year, b.Genre, b.Status())
	}
}

// addErrorMessage turns a rejected add into the line shown to the user.
func addErrorMessage(err error) string {
	var mfe missingFieldError
	switch {
	case errors.As(err, &mfe):
		return "Error: Title, author, and genre are required fields."
	case errors.Is(err, ErrYearOutOfRange):
		return fmt.Sprintf("Error: Year must be between %d and %d.", MinYear, MaxYear)
	case errors.Is(err, ErrDuplicateTitle):
		return "Error: Duplicate title is not allowed."
	default:
		return failureMessage(err)
	}
}

func lookupErrorMessage(title string, err error) string {
	if errors.Is(err, ErrBookNotFound) {
		return fmt.Sprintf("Error: Book '%s' not found.", title)
	}
	return failureMessage(err)
}

func failureMessage(err error) string {
	return "Error: " + err.Error()
}
