package domain

// CommandType classifies what the user typed at the recipe prompt.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandList
	CommandShow
	CommandAdd
	CommandTotal
	CommandHelp
	CommandQuit
	CommandDraftName       // set the name of the recipe being added
	CommandDraftIngredient // add an ingredient line to the draft
	CommandDraftSave       // commit the draft to the book
	CommandDraftCancel     // discard the draft
	CommandUnits           // list the default unit labels
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandList:
		return "list"
	case CommandShow:
		return "show"
	case CommandAdd:
		return "add"
	case CommandTotal:
		return "total"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	case CommandDraftName:
		return "draft_name"
	case CommandDraftIngredient:
		return "draft_ingredient"
	case CommandDraftSave:
		return "draft_save"
	case CommandDraftCancel:
		return "draft_cancel"
	case CommandUnits:
		return "units"
	default:
		return "unknown"
	}
}

// Command is a parsed user action.
type Command struct {
	Type CommandType
	Args []string // e.g. the recipe number for show, ingredient fields
}

// Mode tells the parser which commands are in scope.
type Mode int

const (
	// ModeBrowse is the default: list, show, add.
	ModeBrowse Mode = iota
	// ModeDraft is active while a recipe is being added.
	ModeDraft
)
