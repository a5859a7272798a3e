package domain

// CommandKind names a command as the user types it.
type CommandKind string

const (
	KindHello          CommandKind = "hello"
	KindAdd            CommandKind = "add"
	KindChange         CommandKind = "change"
	KindPhone          CommandKind = "phone"
	KindShowAll        CommandKind = "show all"
	KindSearch         CommandKind = "search"
	KindDelete         CommandKind = "delete"
	KindHelp           CommandKind = "help"
	KindDaysToBirthday CommandKind = "show days to birthday"
	KindAddPhone       CommandKind = "add-phone"
	KindRemovePhone    CommandKind = "remove-phone"
	KindAddBirthday    CommandKind = "add-birthday"
	KindExit           CommandKind = "exit"
)

// Command is the closed set of intents the parser can produce.
type Command interface {
	Kind() CommandKind
}

type HelloCommand struct{}

type AddCommand struct {
	Name     string
	Phone    string
	Birthday string
}

type ChangeCommand struct {
	Name     string
	OldPhone string
	NewPhone string
}

type PhoneCommand struct {
	Name string
}

// ShowAllCommand lists every contact. A zero PageSize uses the configured default.
type ShowAllCommand struct {
	PageSize int
}

type SearchCommand struct {
	Phrase string
}

type DeleteCommand struct {
	Name string
}

type HelpCommand struct{}

type DaysToBirthdayCommand struct {
	Name string
}

type AddPhoneCommand struct {
	Name  string
	Phone string
}

type RemovePhoneCommand struct {
	Name  string
	Phone string
}

type AddBirthdayCommand struct {
	Name     string
	Birthday string
}

// ExitCommand keeps the synonym the user typed (exit, close, good bye).
type ExitCommand struct {
	Alias string
}

func (HelloCommand) Kind() CommandKind          { return KindHello }
func (AddCommand) Kind() CommandKind            { return KindAdd }
func (ChangeCommand) Kind() CommandKind         { return KindChange }
func (PhoneCommand) Kind() CommandKind          { return KindPhone }
func (ShowAllCommand) Kind() CommandKind        { return KindShowAll }
func (SearchCommand) Kind() CommandKind         { return KindSearch }
func (DeleteCommand) Kind() CommandKind         { return KindDelete }
func (HelpCommand) Kind() CommandKind           { return KindHelp }
func (DaysToBirthdayCommand) Kind() CommandKind { return KindDaysToBirthday }
func (AddPhoneCommand) Kind() CommandKind       { return KindAddPhone }
func (RemovePhoneCommand) Kind() CommandKind    { return KindRemovePhone }
func (AddBirthdayCommand) Kind() CommandKind    { return KindAddBirthday }
func (ExitCommand) Kind() CommandKind           { return KindExit }
