package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalog() *Catalog {
	return NewCatalog(zap.NewNop(), NewMemoryBookStorage(zap.NewNop()))
}

// TestCatalog_AddValidation ensures invalid books are rejected without mutation.
func TestCatalog_AddValidation(t *testing.T) {
	testCases := []struct {
		name    string
		book    Book
		wantErr error
	}{
		{"missing title", Book{Author: "X", Year: 2000, Genre: "G"}, missingFieldError("title")},
		{"blank title", Book{Title: "  ", Author: "X", Year: 2000, Genre: "G"}, missingFieldError("title")},
		{"missing author", Book{Title: "T", Year: 2000, Genre: "G"}, missingFieldError("author")},
		{"missing genre", Book{Title: "T", Author: "X", Year: 2000}, missingFieldError("genre")},
		{"missing field before year", Book{Title: "T", Author: "X", Year: 10}, missingFieldError("genre")},
		{"year below range", Book{Title: "T", Author: "X", Year: 999, Genre: "G"}, ErrYearOutOfRange},
		{"year above range", Book{Title: "T", Author: "X", Year: 2026, Genre: "G"}, ErrYearOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCatalog()
			err := c.Add(context.Background(), tc.book)
			assert.ErrorIs(t, err, tc.wantErr)
			books, err := c.ListAll(context.Background())
			require.NoError(t, err)
			assert.Empty(t, books)
		})
	}
}

// TestCatalog_AddYearBoundaries ensures the year range is inclusive.
func TestCatalog_AddYearBoundaries(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()
	assert.NoError(t, c.Add(ctx, Book{Title: "Old", Author: "X", Year: 1000, Genre: "G"}))
	assert.NoError(t, c.Add(ctx, Book{Title: "New", Author: "X", Year: 2025, Genre: "G"}))
	books, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Old", "New"}, titlesOf(books))
}

func TestCatalog_AddDuplicate(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi"}))
	err := c.Add(ctx, Book{Title: "Dune", Author: "Other", Year: 1970, Genre: "SciFi"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	err = c.Add(ctx, Book{Title: "DUNE", Author: "Other", Year: 1970, Genre: "SciFi"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	books, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Herbert", books[0].Author)
}

func TestCatalog_Remove(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, Book{Title: "A", Author: "X", Year: 2000, Genre: "Drama"}))
	require.NoError(t, c.Add(ctx, Book{Title: "B", Author: "Y", Year: 1990, Genre: "Comedy"}))
	before, err := c.ListAll(ctx)
	require.NoError(t, err)

	t.Run("should fail: absent title", func(t *testing.T) {
		err := c.Remove(ctx, "X")
		assert.ErrorIs(t, err, ErrBookNotFound)
		after, err := c.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("should pass: case variant title", func(t *testing.T) {
		err := c.Remove(ctx, "a")
		assert.NoError(t, err)
		after, err := c.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, titlesOf(after))
	})
}

func TestCatalog_MarkRead(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, Book{Title: "Emma", Author: "Austen", Year: 1815, Genre: "Novel"}))

	// marking twice is not an error.
	for i := 0; i < 2; i++ {
		require.NoError(t, c.MarkRead(ctx, "emma"))
		books, err := c.ListAll(ctx)
		require.NoError(t, err)
		assert.True(t, books[0].Read)
	}

	err := c.MarkRead(ctx, "Persuasion")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCatalog_Statistics(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		stats, err := newTestCatalog().Statistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0, stats.Read)
		assert.Equal(t, 0, stats.Unread)
		assert.Empty(t, stats.GenreCounts())
	})

	t.Run("mixed catalog", func(t *testing.T) {
		c := newTestCatalog()
		require.NoError(t, c.Add(ctx, Book{Title: "A", Author: "X", Year: 2000, Genre: "Drama", Read: true}))
		require.NoError(t, c.Add(ctx, Book{Title: "B", Author: "Y", Year: 1990, Genre: "Comedy"}))
		require.NoError(t, c.Add(ctx, Book{Title: "C", Author: "Z", Year: 1980, Genre: "Drama"}))

		stats, err := c.Statistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 1, stats.Read)
		assert.Equal(t, 2, stats.Unread)
		assert.Equal(t, map[string]int{"Drama": 2, "Comedy": 1}, stats.GenreCounts())
		assert.Equal(t, []GenreCount{{"Drama", 2}, {"Comedy", 1}}, stats.Genres)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetAllFunc: func(ctx context.Context) ([]Book, error) {
				return nil, errors.New("storage failure")
			},
		}
		_, err := NewCatalog(zap.NewNop(), mockRepo).Statistics(ctx)
		assert.EqualError(t, err, "storage failure")
	})
}

func TestCatalog_ByAuthor(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, Book{Title: "Emma", Author: "Jane Austen", Year: 1815, Genre: "Novel"}))
	require.NoError(t, c.Add(ctx, Book{Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "SciFi"}))
	require.NoError(t, c.Add(ctx, Book{Title: "Persuasion", Author: "jane austen", Year: 1817, Genre: "Novel"}))

	books, err := c.ByAuthor(ctx, "JANE AUSTEN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma", "Persuasion"}, titlesOf(books))

	books, err = c.ByAuthor(ctx, "Austen")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestCatalog_ByYear(t *testing.T) {
	c := newTestCatalog()
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, Book{Title: "A", Author: "X", Year: 2000, Genre: "Drama", Read: true}))
	require.NoError(t, c.Add(ctx, Book{Title: "B", Author: "Y", Year: 1990, Genre: "Comedy"}))
	require.NoError(t, c.Add(ctx, Book{Title: "C", Author: "Z", Year: 1995, Genre: "Comedy"}))

	testCases := []struct {
		name   string
		year   int
		mode   YearMode
		titles []string
	}{
		{"before excludes the year", 1995, Before, []string{"B"}},
		{"on-or-after includes the year", 1995, OnOrAfter, []string{"A", "C"}},
		{"before earliest", 1000, Before, []string{}},
		{"on-or-after earliest", 1000, OnOrAfter, []string{"A", "B", "C"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			books, err := c.ByYear(ctx, tc.year, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.titles, titlesOf(books))
		})
	}

	_, err := c.ByYear(ctx, 1995, YearMode(42))
	assert.ErrorIs(t, err, ErrInvalidYearMode)
}

func TestParseYearMode(t *testing.T) {
	mode, err := ParseYearMode("before")
	assert.NoError(t, err)
	assert.Equal(t, Before, mode)

	mode, err = ParseYearMode(" On-Or-After ")
	assert.NoError(t, err)
	assert.Equal(t, OnOrAfter, mode)
	assert.Equal(t, "on-or-after", mode.String())

	_, err = ParseYearMode("after")
	assert.ErrorIs(t, err, ErrInvalidYearMode)
}
