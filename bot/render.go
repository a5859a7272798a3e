package bot

import (
	"address-book/domain"
	"address-book/errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var contactHeader = []string{"Name", "Phone", "Birthday"}

// renderTable draws records as fixed-width columns: Name | Phone | Birthday.
func renderTable(records []*domain.Record) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(contactHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColMinWidth(0, 20)
	table.SetColMinWidth(1, 20)
	table.SetColMinWidth(2, 12)
	table.AppendBulk(lo.Map(records, func(r *domain.Record, _ int) []string {
		return []string{r.Name.String(), strings.Join(r.PhoneStrings(), "; "), r.Birthday.String()}
	}))
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}

// renderError turns a user-facing failure into its display string.
// It reports false for errors that are not the user's to fix.
func renderError(err error) (string, bool) {
	switch {
	case errors.Is(err, errors.ErrEmptyCommand):
		return "", true
	case errors.Is(err, errors.ErrUnsupportedCommand):
		return fmt.Sprintf("%s. Type 'help' to see supported commands.", capitalize(err.Error())), true
	case errors.Is(err, errors.ErrMalformedInput):
		return fmt.Sprintf("%s. Type 'help' to see supported commands or 'exit' to stop the bot.", capitalize(err.Error())), true
	case errors.Is(err, errors.ErrNotFound):
		return fmt.Sprintf("%s. Type 'help' for details.", capitalize(err.Error())), true
	case errors.Is(err, errors.ErrValidation):
		return fmt.Sprintf("Invalid input: %s.", err.Error()), true
	case errors.Is(err, errors.ErrContactAlreadyExists):
		return fmt.Sprintf("%s. Enter another name.", capitalize(err.Error())), true
	default:
		return "", false
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
