package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Menu choices.
const (
	ChoiceAdd      = "1"
	ChoiceRemove   = "2"
	ChoiceMarkRead = "3"
	ChoiceList     = "4"
	ChoiceStats    = "5"
	ChoiceByAuthor = "6"
	ChoiceExit     = "7"
)

const menuPrompt = "Choose an option (1-7): "

var menuLines = []string{
	"1. Add a new book",
	"2. Remove a book",
	"3. Mark a book as read",
	"4. View all books",
	"5. View statistics",
	"6. Search for books by author",
	"7. Exit",
}

// Console drives a catalog from an interactive menu.
type Console struct {
	logger  *zap.Logger
	catalog CatalogProvider
	in      Prompter
	out     io.Writer
	history bool
}

// NewConsole provides a console reading from in and printing to out.
func NewConsole(logger *zap.Logger, config *ConsoleConfig, catalog CatalogProvider, in Prompter, out io.Writer) *Console {
	return &Console{
		logger:  logger,
		catalog: catalog,
		in:      in,
		out:     out,
		history: config.History,
	}
}

// Run shows the menu and dispatches choices until the user exits or the
// input ends. A closed input is a normal end of session.
func (c *Console) Run(ctx context.Context) error {
	c.logger.Info("console: session started")
	for {
		if ctx.Err() != nil {
			c.logger.Info("console: session stopped", zap.String("reason", ctx.Err().Error()))
			return nil
		}

		c.printMenu()
		choice, err := c.readLine(menuPrompt)
		if err != nil {
			return c.inputClosed(err)
		}

		exit, err := c.dispatch(ctx, choice)
		if err != nil {
			return c.inputClosed(err)
		}
		if exit {
			c.logger.Info("console: session ended by user")
			return nil
		}
	}
}

// dispatch runs the handler bound to choice. It returns true once the
// user asked to leave.
func (c *Console) dispatch(ctx context.Context, choice string) (bool, error) {
	switch choice {
	case ChoiceAdd:
		return false, c.AddBook(ctx)
	case ChoiceRemove:
		return false, c.RemoveBook(ctx)
	case ChoiceMarkRead:
		return false, c.MarkBookRead(ctx)
	case ChoiceList:
		return false, c.ListBooks(ctx)
	case ChoiceStats:
		return false, c.ShowStatistics(ctx)
	case ChoiceByAuthor:
		return false, c.SearchByAuthor(ctx)
	case ChoiceExit:
		c.println("Exiting Library Manager. SEEYA!")
		return true, nil
	default:
		c.logger.Debug("console: invalid menu choice", zap.String("choice", choice))
		c.println("Invalid option. Please choose a number between 1 and 7.")
		return false, nil
	}
}

func (c *Console) printMenu() {
	c.println("\nLibrary Manager Options:")
	for _, line := range menuLines {
		c.println(line)
	}
}

// readLine prompts for one line and returns it trimmed.
func (c *Console) readLine(prompt string) (string, error) {
	line, err := c.in.Prompt(prompt)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if c.history && line != "" {
		c.in.AppendHistory(line)
	}
	return line, nil
}

func (c *Console) inputClosed(err error) error {
	if IsEndOfInput(err) {
		c.logger.Info("console: input closed", zap.Error(err))
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
