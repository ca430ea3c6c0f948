package main

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// CatalogProvider describes the operations the console relies on.
type CatalogProvider interface {
	Add(ctx context.Context, book Book) error
	Remove(ctx context.Context, title string) error
	MarkRead(ctx context.Context, title string) error
	ListAll(ctx context.Context) ([]Book, error)
	Statistics(ctx context.Context) (Stats, error)
	ByAuthor(ctx context.Context, author string) ([]Book, error)
	ByYear(ctx context.Context, year int, mode YearMode) ([]Book, error)
}

var _ CatalogProvider = (*Catalog)(nil)

// Catalog is the book collection of one session.
type Catalog struct {
	logger  *zap.Logger
	storage BookStorage
}

// NewCatalog provides a catalog backed by the given storage.
func NewCatalog(logger *zap.Logger, storage BookStorage) *Catalog {
	return &Catalog{
		logger:  logger,
		storage: storage,
	}
}

// ValidateBook checks the required fields first, then the year.
func ValidateBook(book *Book) error {
	if isBlank(book.Title) {
		return missingFieldError("title")
	}

	if isBlank(book.Author) {
		return missingFieldError("author")
	}

	if isBlank(book.Genre) {
		return missingFieldError("genre")
	}

	if book.Year < MinYear || book.Year > MaxYear {
		return ErrYearOutOfRange
	}

	return nil
}

// Add validates the book and appends it to the catalog.
func (c *Catalog) Add(ctx context.Context, book Book) error {
	if err := ValidateBook(&book); err != nil {
		c.logger.Debug("catalog: book rejected", zap.String("title", book.Title), zap.Error(err))
		return err
	}
	if err := c.storage.Add(ctx, book); err != nil {
		c.logger.Debug("catalog: failed to add book", zap.String("title", book.Title), zap.Error(err))
		return err
	}
	c.logger.Info("catalog: book added", zap.String("title", book.Title), zap.Int("year", book.Year))
	return nil
}

// Remove deletes the book matching the title.
func (c *Catalog) Remove(ctx context.Context, title string) error {
	if err := c.storage.Delete(ctx, title); err != nil {
		c.logger.Debug("catalog: failed to remove book", zap.String("title", title), zap.Error(err))
		return err
	}
	c.logger.Info("catalog: book removed", zap.String("title", title))
	return nil
}

// MarkRead flags the book matching the title as read. Marking
// an already read book succeeds.
func (c *Catalog) MarkRead(ctx context.Context, title string) error {
	book, err := c.storage.GetOne(ctx, title)
	if err != nil {
		c.logger.Debug("catalog: failed to mark book", zap.String("title", title), zap.Error(err))
		return err
	}
	if book.Read {
		return nil
	}
	book.Read = true
	if _, err = c.storage.Update(ctx, book); err != nil {
		c.logger.Error("catalog: failed to update book", zap.String("title", title), zap.Error(err))
		return err
	}
	c.logger.Info("catalog: book marked as read", zap.String("title", book.Title))
	return nil
}

// ListAll returns every book in insertion order.
func (c *Catalog) ListAll(ctx context.Context) ([]Book, error) {
	return c.storage.GetAll(ctx)
}

// Statistics aggregates the catalog in a single pass.
func (c *Catalog) Statistics(ctx context.Context) (Stats, error) {
	var stats Stats
	books, err := c.storage.GetAll(ctx)
	if err != nil {
		return stats, err
	}

	positions := make(map[string]int)
	for _, book := range books {
		stats.Total++
		if book.Read {
			stats.Read++
		}
		pos, seen := positions[book.Genre]
		if !seen {
			pos = len(stats.Genres)
			positions[book.Genre] = pos
			stats.Genres = append(stats.Genres, GenreCount{Genre: book.Genre})
		}
		stats.Genres[pos].Count++
	}
	stats.Unread = stats.Total - stats.Read
	return stats, nil
}

// ByAuthor returns the books whose author matches, ignoring case.
func (c *Catalog) ByAuthor(ctx context.Context, author string) ([]Book, error) {
	author = strings.ToLower(author)
	return c.filter(ctx, func(b Book) bool {
		return strings.ToLower(b.Author) == author
	})
}

// ByYear returns the books published before the year or
// in the year and later, depending on the mode.
func (c *Catalog) ByYear(ctx context.Context, year int, mode YearMode) ([]Book, error) {
	switch mode {
	case Before:
		return c.filter(ctx, func(b Book) bool { return b.Year < year })
	case OnOrAfter:
		return c.filter(ctx, func(b Book) bool { return b.Year >= year })
	default:
		return nil, ErrInvalidYearMode
	}
}

func (c *Catalog) filter(ctx context.Context, keep func(Book) bool) ([]Book, error) {
	books, err := c.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []Book{}
	for _, book := range books {
		if keep(book) {
			result = append(result, book)
		}
	}
	return result, nil
}
