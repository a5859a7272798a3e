package bot

import (
	"address-book/domain"
	"address-book/services"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Result is what the shell prints after one command.
type Result struct {
	Output string
	Failed bool
	Exit   bool
}

type Dispatcher struct {
	book     services.IAddressBook
	log      *slog.Logger
	pageSize int
	now      func() time.Time
}

// NewDispatcher wires the dispatcher to an address book. now is used for birthday arithmetic.
func NewDispatcher(book services.IAddressBook, log *slog.Logger, pageSize int, now func() time.Time) *Dispatcher {
	return &Dispatcher{book: book, log: log, pageSize: max(pageSize, 1), now: now}
}

// Handle parses and dispatches one line.
// User mistakes are rendered into the Result; only storage failures come back as errors.
func (d *Dispatcher) Handle(line string) (Result, error) {
	cmd, err := Parse(line)
	if err != nil {
		return d.fail(err)
	}
	return d.Dispatch(cmd)
}

func (d *Dispatcher) Dispatch(cmd domain.Command) (Result, error) {
	d.log.Debug("Dispatching command", "kind", cmd.Kind())
	output, err := d.execute(cmd)
	if err != nil {
		return d.fail(err)
	}
	_, exit := cmd.(domain.ExitCommand)
	return Result{Output: output, Exit: exit}, nil
}

func (d *Dispatcher) fail(err error) (Result, error) {
	output, ok := renderError(err)
	if !ok {
		return Result{}, err
	}
	d.log.Debug("Command rejected", "error", err)
	return Result{Output: output, Failed: true}, nil
}

func (d *Dispatcher) execute(cmd domain.Command) (string, error) {
	switch c := cmd.(type) {
	case domain.HelloCommand:
		return "How can I help you?", nil
	case domain.HelpCommand:
		return helpText, nil
	case domain.ExitCommand:
		return "Good bye!", nil
	case domain.AddCommand:
		return d.add(c)
	case domain.ChangeCommand:
		return d.mutate(c.Name, "Contact was changed.", func(r *domain.Record) (string, error) {
			return r.EditPhone(c.OldPhone, c.NewPhone)
		})
	case domain.AddPhoneCommand:
		return d.mutate(c.Name, "Phone was added.", func(r *domain.Record) (string, error) {
			return r.AddPhone(c.Phone)
		})
	case domain.RemovePhoneCommand:
		return d.mutate(c.Name, "Phone was removed.", func(r *domain.Record) (string, error) {
			return r.RemovePhone(c.Phone)
		})
	case domain.AddBirthdayCommand:
		return d.mutate(c.Name, "Birthday was set.", func(r *domain.Record) (string, error) {
			return r.AddBirthday(c.Birthday)
		})
	case domain.PhoneCommand:
		record, err := d.book.Find(c.Name)
		if err != nil {
			return "", err
		}
		return renderTable([]*domain.Record{record}), nil
	case domain.DaysToBirthdayCommand:
		record, err := d.book.Find(c.Name)
		if err != nil {
			return "", err
		}
		days, err := record.DaysToNextBirthday(d.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Days to the next birthday for '%s': %d.", c.Name, days), nil
	case domain.DeleteCommand:
		if err := d.book.Delete(c.Name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact was deleted: '%s'.", c.Name), nil
	case domain.SearchCommand:
		return d.search(c)
	case domain.ShowAllCommand:
		return d.showAll(c)
	default:
		return "", fmt.Errorf("no handler for command %q", cmd.Kind())
	}
}

func (d *Dispatcher) add(c domain.AddCommand) (string, error) {
	record, err := domain.NewRecord(c.Name, c.Birthday)
	if err != nil {
		return "", err
	}
	if _, err = record.AddPhone(c.Phone); err != nil {
		return "", err
	}
	if err = d.book.Add(record); err != nil {
		return "", err
	}
	return "Contact was added.\n" + renderTable([]*domain.Record{record}), nil
}

// mutate loads a contact, applies a record operation and stores the result.
func (d *Dispatcher) mutate(name, title string, apply func(*domain.Record) (string, error)) (string, error) {
	record, err := d.book.Find(name)
	if err != nil {
		return "", err
	}
	detail, err := apply(record)
	if err != nil {
		return "", err
	}
	if err = d.book.Update(record); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s\n%s", title, detail, renderTable([]*domain.Record{record})), nil
}

func (d *Dispatcher) search(c domain.SearchCommand) (string, error) {
	matches, err := d.book.Search(c.Phrase)
	if err != nil {
		return "", err
	}
	var found []*domain.Record
	for m := range matches {
		found = append(found, m.Record)
	}
	if len(found) == 0 {
		return fmt.Sprintf("No contacts match '%s'.", c.Phrase), nil
	}
	return fmt.Sprintf("Found %d contact(s) for '%s':\n%s", len(found), c.Phrase, renderTable(found)), nil
}

func (d *Dispatcher) showAll(c domain.ShowAllCommand) (string, error) {
	size := d.pageSize
	if c.PageSize > 0 {
		size = c.PageSize
	}
	pages, err := d.book.Pages(size)
	if err != nil {
		return "", err
	}
	var sections []string
	for page := range pages {
		sections = append(sections, fmt.Sprintf("Page %d\n%s", len(sections)+1, renderTable(page)))
	}
	if len(sections) == 0 {
		return "The address book is empty.", nil
	}
	return strings.Join(sections, "\n"), nil
}
