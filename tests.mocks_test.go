package main

import (
	"context"
	"io"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockBookStorage struct {
	AddFunc    func(ctx context.Context, book Book) error
	GetOneFunc func(ctx context.Context, title string) (Book, error)
	DeleteFunc func(ctx context.Context, title string) error
	UpdateFunc func(ctx context.Context, book Book) (Book, error)
	GetAllFunc func(ctx context.Context) ([]Book, error)
}

// Add mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Add(ctx context.Context, book Book) error {
	return m.AddFunc(ctx, book)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, title string) (Book, error) {
	return m.GetOneFunc(ctx, title)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, title string) error {
	return m.DeleteFunc(ctx, title)
}

// Update mocks the behavior of updating a book by the repository.
func (m *MockBookStorage) Update(ctx context.Context, book Book) (Book, error) {
	return m.UpdateFunc(ctx, book)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockPrompter replays scripted lines and echoes each prompt to out,
// the way liner does when the input is not a terminal. It returns
// io.EOF once the script is exhausted unless Err is set.
type MockPrompter struct {
	Lines   []string
	Prompts []string
	History []string
	Err     error
	Closed  bool
	out     io.Writer
}

// NewMockPrompter returns a prompter replaying lines.
func NewMockPrompter(out io.Writer, lines ...string) *MockPrompter {
	return &MockPrompter{Lines: lines, out: out}
}

// Prompt returns the next scripted line.
func (mp *MockPrompter) Prompt(prompt string) (string, error) {
	mp.Prompts = append(mp.Prompts, prompt)
	if mp.out != nil {
		_, _ = io.WriteString(mp.out, prompt)
	}
	if len(mp.Lines) == 0 {
		if mp.Err != nil {
			return "", mp.Err
		}
		return "", io.EOF
	}
	line := mp.Lines[0]
	mp.Lines = mp.Lines[1:]
	return line, nil
}

// AppendHistory records the item.
func (mp *MockPrompter) AppendHistory(item string) {
	mp.History = append(mp.History, item)
}

// Close marks the prompter as closed.
func (mp *MockPrompter) Close() error {
	mp.Closed = true
	return nil
}
