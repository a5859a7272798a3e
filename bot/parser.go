package bot

import (
	"address-book/domain"
	"address-book/errors"
	"fmt"
	"strconv"
	"strings"
)

// grammar describes one command: its leading tokens, how many arguments it takes and how to build it.
type grammar struct {
	prefix  []string
	minArgs int
	maxArgs int
	build   func(args []string) (domain.Command, error)
}

func fixed(cmd domain.Command) func([]string) (domain.Command, error) {
	return func([]string) (domain.Command, error) { return cmd, nil }
}

// grammars is ordered so that multi-word prefixes are tried before single tokens.
// Commands without arguments ignore trailing tokens.
var grammars = []grammar{
	{
		prefix: []string{"show", "days", "to", "birthday"}, minArgs: 1, maxArgs: 1,
		build: func(a []string) (domain.Command, error) {
			return domain.DaysToBirthdayCommand{Name: a[0]}, nil
		},
	},
	{
		prefix: []string{"show", "all"}, minArgs: 0, maxArgs: 1,
		build: func(a []string) (domain.Command, error) {
			if len(a) == 0 {
				return domain.ShowAllCommand{}, nil
			}
			size, err := strconv.Atoi(a[0])
			if err != nil || size < 1 {
				return nil, fmt.Errorf("%w, got '%s'", errors.ErrInvalidPageSize, a[0])
			}
			return domain.ShowAllCommand{PageSize: size}, nil
		},
	},
	{prefix: []string{"good", "bye"}, maxArgs: -1, build: fixed(domain.ExitCommand{Alias: "good bye"})},
	{prefix: []string{"hello"}, maxArgs: -1, build: fixed(domain.HelloCommand{})},
	{prefix: []string{"help"}, maxArgs: -1, build: fixed(domain.HelpCommand{})},
	{prefix: []string{"close"}, maxArgs: -1, build: fixed(domain.ExitCommand{Alias: "close"})},
	{prefix: []string{"exit"}, maxArgs: -1, build: fixed(domain.ExitCommand{Alias: "exit"})},
	{
		prefix: []string{"add"}, minArgs: 2, maxArgs: 3,
		build: func(a []string) (domain.Command, error) {
			cmd := domain.AddCommand{Name: a[0], Phone: a[1]}
			if len(a) == 3 {
				cmd.Birthday = a[2]
			}
			return cmd, nil
		},
	},
	{
		prefix: []string{"change"}, minArgs: 3, maxArgs: 3,
		build: func(a []string) (domain.Command, error) {
			return domain.ChangeCommand{Name: a[0], OldPhone: a[1], NewPhone: a[2]}, nil
		},
	},
	{
		prefix: []string{"phone"}, minArgs: 1, maxArgs: 1,
		build: func(a []string) (domain.Command, error) {
			return domain.PhoneCommand{Name: a[0]}, nil
		},
	},
	{
		prefix: []string{"search"}, minArgs: 1, maxArgs: 1,
		build: func(a []string) (domain.Command, error) {
			return domain.SearchCommand{Phrase: a[0]}, nil
		},
	},
	{
		prefix: []string{"delete"}, minArgs: 1, maxArgs: 1,
		build: func(a []string) (domain.Command, error) {
			return domain.DeleteCommand{Name: a[0]}, nil
		},
	},
	{
		prefix: []string{"add-phone"}, minArgs: 2, maxArgs: 2,
		build: func(a []string) (domain.Command, error) {
			return domain.AddPhoneCommand{Name: a[0], Phone: a[1]}, nil
		},
	},
	{
		prefix: []string{"remove-phone"}, minArgs: 2, maxArgs: 2,
		build: func(a []string) (domain.Command, error) {
			return domain.RemovePhoneCommand{Name: a[0], Phone: a[1]}, nil
		},
	},
	{
		prefix: []string{"add-birthday"}, minArgs: 2, maxArgs: 2,
		build: func(a []string) (domain.Command, error) {
			return domain.AddBirthdayCommand{Name: a[0], Birthday: a[1]}, nil
		},
	},
}

// Parse turns one input line into a command.
// Command words are matched without regard to case; arguments are kept as typed.
func Parse(line string) (domain.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, errors.ErrEmptyCommand
	}
	for _, g := range grammars {
		if !hasPrefix(tokens, g.prefix) {
			continue
		}
		args := tokens[len(g.prefix):]
		if len(args) < g.minArgs || (g.maxArgs >= 0 && len(args) > g.maxArgs) {
			return nil, fmt.Errorf("%w, entered data: '%s'", errors.ErrMissingCommandPart, strings.TrimSpace(line))
		}
		return g.build(args)
	}
	return nil, fmt.Errorf("%w: '%s'", errors.ErrUnsupportedCommand, tokens[0])
}

func hasPrefix(tokens, prefix []string) bool {
	if len(tokens) < len(prefix) {
		return false
	}
	for i, word := range prefix {
		if !strings.EqualFold(tokens[i], word) {
			return false
		}
	}
	return true
}
