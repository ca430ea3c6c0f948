package main

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// AddBook prompts for a book and adds it to the catalog. A year that is
// not a number abandons the whole attempt. Only errors from the input
// are returned; catalog rejections are printed.
func (c *Console) AddBook(ctx context.Context) error {
	var book Book
	var err error

	if book.Title, err = c.readLine("Enter title: "); err != nil {
		return err
	}
	if book.Author, err = c.readLine("Enter author: "); err != nil {
		return err
	}

	yearText, err := c.readLine("Enter publication year: ")
	if err != nil {
		return err
	}
	if book.Year, err = strconv.Atoi(yearText); err != nil {
		c.logger.Debug("console: invalid year", zap.String("input", yearText), zap.Error(err))
		c.println("Error: Year must be a valid number.")
		return nil
	}

	if book.Genre, err = c.readLine("Enter genre: "); err != nil {
		return err
	}
	answer, err := c.readLine("Have you read this book? (yes/no): ")
	if err != nil {
		return err
	}
	book.Read = strings.ToLower(answer) == "yes"

	if err = c.catalog.Add(ctx, book); err != nil {
		c.println(addErrorMessage(err))
		return nil
	}
	c.printf("Book '%s' added successfully.\n", book.Title)
	return nil
}

// RemoveBook prompts for a title and removes the matching book.
func (c *Console) RemoveBook(ctx context.Context) error {
	title, err := c.readLine("Enter the title of the book to remove: ")
	if err != nil {
		return err
	}
	if err = c.catalog.Remove(ctx, title); err != nil {
		c.println(lookupErrorMessage(title, err))
		return nil
	}
	c.printf("Book '%s' removed successfully.\n", title)
	return nil
}

// MarkBookRead prompts for a title and marks the matching book as read.
func (c *Console) MarkBookRead(ctx context.Context) error {
	title, err := c.readLine("Enter the title of the book to mark as read: ")
	if err != nil {
		return err
	}
	if err = c.catalog.MarkRead(ctx, title); err != nil {
		c.println(lookupErrorMessage(title, err))
		return nil
	}
	c.printf("Book '%s' marked as read.\n", title)
	return nil
}

// ListBooks prints every book of the catalog.
func (c *Console) ListBooks(ctx context.Context) error {
	books, err := c.catalog.ListAll(ctx)
	if err != nil {
		c.logger.Error("console: failed to list books", zap.Error(err))
		c.println(failureMessage(err))
		return nil
	}
	c.renderLibrary(books)
	return nil
}

// ShowStatistics prints the catalog figures.
func (c *Console) ShowStatistics(ctx context.Context) error {
	stats, err := c.catalog.Statistics(ctx)
	if err != nil {
		c.logger.Error("console: failed to compute statistics", zap.Error(err))
		c.println(failureMessage(err))
		return nil
	}
	c.renderStatistics(stats)
	return nil
}

// SearchByAuthor prompts for an author and prints the books written by them.
func (c *Console) SearchByAuthor(ctx context.Context) error {
	author, err := c.readLine("Enter the author's name to search for: ")
	if err != nil {
		return err
	}
	books, err := c.catalog.ByAuthor(ctx, author)
	if err != nil {
		c.logger.Error("console: failed to search by author", zap.String("author", author), zap.Error(err))
		c.println(failureMessage(err))
		return nil
	}
	c.renderAuthorBooks(author, books)
	return nil
}
