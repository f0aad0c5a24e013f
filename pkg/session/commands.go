package session

// Command is a resolved key binding the host editor asks the session to
// execute. Anything the session does not claim resolves to
// CommandNotHandled and the host applies its own default binding.
type Command string

const (
	CommandAutocomplete   Command = "autocomplete"
	CommandPrevSuggestion Command = "prev-suggestion"
	CommandNextSuggestion Command = "next-suggestion"
	CommandNotHandled     Command = "not-handled"
)

// Key identifiers the session recognizes, as reported by the host.
const (
	KeyTab   = "Tab"
	KeyEnter = "Enter"
	KeyUp    = "Up"
	KeyDown  = "Down"
)
