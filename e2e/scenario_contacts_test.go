package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testContactsSuite struct {
	BaseSessionSuite
}

func TestContactsSuite(t *testing.T) {
	suite.Run(t, &testContactsSuite{})
}

func (s *testContactsSuite) TestContactLifecycle() {
	s.Run("Step 1: Add a contact and look it up", func() {
		out := s.Session("Add John",
			"add John 1234567890",
			"phone John",
			"exit",
		)
		s.Contains(out, "Contact was added.")
		s.Contains(out, "1234567890")
		s.Contains(out, "Good bye!")
	})

	s.Run("Step 2: The contact survives a restart and can be changed", func() {
		out := s.Session("Change John's phone",
			"change John 1234567890 1112223333",
			"phone John",
			"good bye",
		)
		s.Contains(out, "Contact was changed.")
		s.Contains(out, "1112223333")
	})

	s.Run("Step 3: Delete the contact", func() {
		out := s.Session("Delete John",
			"delete John",
			"phone John",
			"close",
		)
		s.Contains(out, "Contact was deleted: 'John'.")
		s.Contains(out, "Contact was not found: 'John'")
	})

	s.Run("Step 4: Nothing left after another restart", func() {
		out := s.Session("Show all", "show all", "exit")
		s.Contains(out, "The address book is empty.")
	})
}

func (s *testContactsSuite) TestBirthdaysAndSearch() {
	out := s.Session("Fill the book",
		"add Alice 0501112233 01-01-1990",
		"add Alina 0672223344",
		"add Bob 0933334455",
		"add-birthday Alina 29-02-2000",
		"exit",
	)
	s.Equal(3, strings.Count(out, "Contact was added."))
	s.Contains(out, "Birthday was set.")

	out = s.Session("Search and birthdays",
		"search ALI",
		"search 3334",
		"show days to birthday Bob",
		"show days to birthday Alice",
		"exit",
	)
	s.Contains(out, "Found 2 contact(s) for 'ALI':")
	s.Contains(out, "Found 1 contact(s) for '3334':")
	s.Contains(out, "absent necessary data about birthday for 'Bob'")
	s.Contains(out, "Days to the next birthday for 'Alice':")
}

func (s *testContactsSuite) TestMistakesNeverStopTheBot() {
	out := s.Session("Typos",
		"ad John 1234567890",
		"add John",
		"add John 12345",
		"search J",
		"",
		"hello",
		"exit",
	)
	s.Contains(out, "Unsupported command: 'ad'")
	s.Contains(out, "Missing command part")
	s.Contains(out, "Invalid input: phone number can only consist of 10 digits")
	s.Contains(out, "Invalid input: search phrase must contain at least 2 characters")
	s.Contains(out, "How can I help you?")
	s.Contains(out, "Good bye!")
}
