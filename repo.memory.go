package main

import (
	"context"

	"go.uber.org/zap"
)

// Ensure memoryBookStorage implements BookStorage.
var _ BookStorage = (*memoryBookStorage)(nil)

// memoryBookStorage keeps books in insertion order. The index maps
// each normalized title to the position of its book in the slice.
type memoryBookStorage struct {
	logger *zap.Logger
	books  []Book
	index  map[string]int
}

// NewMemoryBookStorage provides an instance of memory-based book storage.
func NewMemoryBookStorage(logger *zap.Logger) BookStorage {
	return &memoryBookStorage{
		logger: logger,
		books:  []Book{},
		index:  make(map[string]int),
	}
}

// Add appends a new book record. It fails if a book with
// the same title (ignoring case) is already stored.
func (ms *memoryBookStorage) Add(_ context.Context, book Book) error {
	key := NormalizeTitle(book.Title)
	if _, exists := ms.index[key]; exists {
		return ErrDuplicateTitle
	}
	ms.index[key] = len(ms.books)
	ms.books = append(ms.books, book)
	return nil
}

// GetOne retrieves a book record based on its title.
func (ms *memoryBookStorage) GetOne(_ context.Context, title string) (Book, error) {
	pos, ok := ms.index[NormalizeTitle(title)]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return ms.books[pos], nil
}

// Delete removes a book record based on its title.
func (ms *memoryBookStorage) Delete(_ context.Context, title string) error {
	key := NormalizeTitle(title)
	pos, ok := ms.index[key]
	if !ok {
		return ErrBookNotFound
	}
	ms.books = append(ms.books[:pos], ms.books[pos+1:]...)
	delete(ms.index, key)
	for i := pos; i < len(ms.books); i++ {
		ms.index[NormalizeTitle(ms.books[i].Title)] = i
	}
	ms.logger.Debug("storage: book deleted", zap.String("title", title), zap.Int("position", pos))
	return nil
}

// Update replaces the stored book sharing the title of the given one.
// It does not insert missing books.
func (ms *memoryBookStorage) Update(_ context.Context, book Book) (Book, error) {
	pos, ok := ms.index[NormalizeTitle(book.Title)]
	if !ok {
		return book, ErrBookNotFound
	}
	ms.books[pos] = book
	return book, nil
}

// GetAll retrieves a copy of all books in insertion order.
func (ms *memoryBookStorage) GetAll(_ context.Context) ([]Book, error) {
	books := make([]Book, len(ms.books))
	copy(books, ms.books)
	return books, nil
}
