// Package console runs the interactive shelf menu: it prints the numbered
// options, reads a choice, performs the matching library operation and
// reports the outcome, until the user quits or input ends.
package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/shelf/internal/library"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Menu options.
const (
	optionList   = 1
	optionAdd    = 2
	optionSearch = 3
	optionBorrow = 4
	optionReturn = 5
	optionDelete = 6
	optionQuit   = 7
)

const menu = `
Welcome to Library App!
1. Print all books
2. Add new book
3. Search books by title
4. Borrow a book
5. Return a book
6. Delete a book by id
7. Quit
Choose an option: `

// Messages written to the user.
const (
	msgNoBooks         = "No books in the library"
	msgAdded           = "Book added successfully"
	msgNoMatches       = "No matching books found"
	msgNotFound        = "Book not found"
	msgBorrowed        = "Book borrowed"
	msgAlreadyBorrowed = "Book is already borrowed"
	msgReturned        = "Book returned"
	msgNotBorrowed     = "Book was not borrowed"
	msgDeleted         = "Book deleted"
	msgGoodbye         = "Goodbye!"
	msgInvalidOption   = "Invalid option"
	msgEnterNumber     = "Please enter a number: "
)

// App is the menu loop over a library.
type App struct {
	lib      *library.Library
	in       LineReader
	out      io.Writer
	jsonMode bool
	log      *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithJSON prints books as one JSON object per line instead of text.
func WithJSON(enabled bool) Option {
	return func(a *App) { a.jsonMode = enabled }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.log = logger
		}
	}
}

// New returns an App reading from in and writing to out.
func New(lib *library.Library, in LineReader, out io.Writer, opts ...Option) *App {
	a := &App{
		lib: lib,
		in:  in,
		out: out,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the menu and handles choices until the user quits or input is
// exhausted; both end the loop with a nil error. Only a failure to read
// input is returned.
func (a *App) Run() error {
	for {
		a.print(menu)
		choice, err := a.readInt()
		if err != nil {
			return a.stop(err)
		}

		quit, err := a.dispatch(choice)
		if err != nil {
			return a.stop(err)
		}
		if quit {
			return nil
		}
	}
}

func (a *App) dispatch(choice int) (quit bool, err error) {
	a.log.Debug("menu choice", "choice", choice)

	switch choice {
	case optionList:
		a.listBooks()
	case optionAdd:
		err = a.addBook()
	case optionSearch:
		err = a.searchByTitle()
	case optionBorrow:
		err = a.borrowBook()
	case optionReturn:
		err = a.returnBook()
	case optionDelete:
		err = a.deleteBook()
	case optionQuit:
		a.println(msgGoodbye)
		return true, nil
	default:
		a.println(msgInvalidOption)
	}
	return false, err
}

func (a *App) listBooks() {
	books, err := a.lib.Books()
	if err != nil {
		a.fail(err)
		return
	}
	if len(books) == 0 {
		a.println(msgNoBooks)
		return
	}
	for _, b := range books {
		a.printBook(b)
	}
}

func (a *App) addBook() error {
	a.print("Title: ")
	title, err := a.in.ReadLine()
	if err != nil {
		return err
	}

	a.print("Author: ")
	author, err := a.in.ReadLine()
	if err != nil {
		return err
	}

	a.print("Year: ")
	year, err := a.readInt()
	if err != nil {
		return err
	}

	if _, err := a.lib.Add(title, author, year); err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			a.println("Error: " + verr.Message)
			return nil
		}
		a.fail(err)
		return nil
	}
	a.println(msgAdded)
	return nil
}

func (a *App) searchByTitle() error {
	a.print("Enter part of title: ")
	query, err := a.in.ReadLine()
	if err != nil {
		return err
	}

	matches, err := a.lib.SearchByTitle(query)
	if err != nil {
		a.fail(err)
		return nil
	}
	if len(matches) == 0 {
		a.println(msgNoMatches)
		return nil
	}
	for _, b := range matches {
		a.printBook(b)
	}
	return nil
}

func (a *App) borrowBook() error {
	id, err := a.promptID()
	if err != nil {
		return err
	}

	_, err = a.lib.Borrow(id)
	switch {
	case err == nil:
		a.println(msgBorrowed)
	case errors.Is(err, types.ErrNotFound):
		a.println(msgNotFound)
	case errors.Is(err, types.ErrAlreadyBorrowed):
		a.println(msgAlreadyBorrowed)
	default:
		a.fail(err)
	}
	return nil
}

func (a *App) returnBook() error {
	id, err := a.promptID()
	if err != nil {
		return err
	}

	_, err = a.lib.Return(id)
	switch {
	case err == nil:
		a.println(msgReturned)
	case errors.Is(err, types.ErrNotFound):
		a.println(msgNotFound)
	case errors.Is(err, types.ErrNotBorrowed):
		a.println(msgNotBorrowed)
	default:
		a.fail(err)
	}
	return nil
}

func (a *App) deleteBook() error {
	id, err := a.promptID()
	if err != nil {
		return err
	}

	_, err = a.lib.Delete(id)
	switch {
	case err == nil:
		a.println(msgDeleted)
	case errors.Is(err, types.ErrNotFound):
		a.println(msgNotFound)
	default:
		a.fail(err)
	}
	return nil
}

func (a *App) promptID() (int, error) {
	a.print("Enter book id: ")
	return a.readInt()
}

// readInt reads lines until one starts with an integer. Blank lines are
// skipped; any other line is discarded with a request for a number. Text
// after the integer is ignored.
func (a *App) readInt() (int, error) {
	for {
		line, err := a.in.ReadLine()
		if err != nil {
			return 0, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return n, nil
		}
		a.print(msgEnterNumber)
	}
}

// stop ends the loop. Exhausted input is a normal exit.
func (a *App) stop(err error) error {
	if errors.Is(err, io.EOF) {
		a.log.Debug("input closed")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

// fail reports an unexpected library error and keeps the loop going.
func (a *App) fail(err error) {
	a.log.Error("operation failed", "error", err)
	a.println("Error: " + err.Error())
}

func (a *App) printBook(b *types.Book) {
	if !a.jsonMode {
		a.println(b.String())
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		a.fail(fmt.Errorf("encoding book %d: %w", b.ID, err))
		return
	}
	a.println(string(data))
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}
