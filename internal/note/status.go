package note

import (
	"strings"
	"unicode"
)

// TaskStatus is the named state encoded by a checkbox status character.
type TaskStatus int

const (
	NotATask TaskStatus = iota
	Todo
	Done
	Cancelled
	Forwarded
	Deferred
	InProgress
	Question
	Important
	Info
	Bookmark
	Pro
	Con
	Brainstorming
	Example
	Quote
	Note
	Win
	Lose
	Add
	Reviewed
	Unknown
)

var statusNames = map[TaskStatus]string{
	NotATask:      "not-a-task",
	Todo:          "todo",
	Done:          "done",
	Cancelled:     "cancelled",
	Forwarded:     "forwarded",
	Deferred:      "deferred",
	InProgress:    "in-progress",
	Question:      "question",
	Important:     "important",
	Info:          "info",
	Bookmark:      "bookmark",
	Pro:           "pro",
	Con:           "con",
	Brainstorming: "brainstorming",
	Example:       "example",
	Quote:         "quote",
	Note:          "note",
	Win:           "win",
	Lose:          "lose",
	Add:           "add",
	Reviewed:      "reviewed",
	Unknown:       "unknown",
}

func (s TaskStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// StatusForChar maps a single checkbox character to its task status.
// Any character outside the table is Unknown, never an error.
func StatusForChar(r rune) TaskStatus {
	if unicode.IsSpace(r) {
		return Todo
	}
	switch r {
	case 'x', 'X':
		return Done
	case '-':
		return Cancelled
	case '>':
		return Forwarded
	case 'D':
		return Deferred
	case '/':
		return InProgress
	case '?':
		return Question
	case '!':
		return Important
	case 'i':
		return Info
	case 'B':
		return Bookmark
	case 'P':
		return Pro
	case 'C':
		return Con
	case 'b':
		return Brainstorming
	case 'E':
		return Example
	case 'Q':
		return Quote
	case 'N':
		return Note
	case 'W':
		return Win
	case 'L':
		return Lose
	case '+':
		return Add
	case 'R':
		return Reviewed
	default:
		return Unknown
	}
}

// Category is the closed set of event categories a caller can file an
// event under. CategoryUnspecified means no category applies.
type Category int

const (
	CategoryUnspecified Category = iota
	CategoryTodo
	CategoryDone
	CategoryCancelled
	CategoryInProgress
	CategoryImportant
	CategoryQuestion
	CategoryReview
	CategoryIdea
	CategoryPro
	CategoryCon
	CategoryBrainstorming
	CategoryExample
	CategoryQuote
	CategoryNote
	CategoryWin
	CategoryLose
)

// StatusChar returns the checkbox character that displays this category,
// and false for CategoryUnspecified or any value outside the closed set.
//
// The table is not the inverse of StatusForChar and must stay that way:
// CategoryCon renders as '-' (which parses back as Cancelled) and
// CategoryPro renders as '+' (which parses back as Add). Downstream note
// themes established these display characters long ago; changing them
// would rewrite how existing notes render.
func (c Category) StatusChar() (rune, bool) {
	switch c {
	case CategoryTodo:
		return ' ', true
	case CategoryDone:
		return 'x', true
	case CategoryCancelled:
		return '-', true
	case CategoryInProgress:
		return '/', true
	case CategoryImportant:
		return '!', true
	case CategoryQuestion:
		return '?', true
	case CategoryReview:
		return '>', true
	case CategoryIdea:
		return 'i', true
	case CategoryPro:
		return '+', true
	case CategoryCon:
		return '-', true
	case CategoryBrainstorming:
		return 'b', true
	case CategoryExample:
		return 'e', true
	case CategoryQuote:
		return 'q', true
	case CategoryNote:
		return 'n', true
	case CategoryWin:
		return 'w', true
	case CategoryLose:
		return 'l', true
	default:
		return 0, false
	}
}

// ParseCategory converts a wire-format "TASK-<KIND>" label into a Category.
// Labels without the TASK- prefix and unrecognized kinds both yield
// CategoryUnspecified. Only boundary code dealing with external labels
// should need this; internal code passes Category values directly.
func ParseCategory(label string) Category {
	kind, ok := strings.CutPrefix(strings.TrimSpace(label), "TASK-")
	if !ok {
		return CategoryUnspecified
	}
	switch strings.ToUpper(kind) {
	case "TODO":
		return CategoryTodo
	case "DONE":
		return CategoryDone
	case "CANCELLED":
		return CategoryCancelled
	case "IN_PROGRESS":
		return CategoryInProgress
	case "IMPORTANT":
		return CategoryImportant
	case "QUESTION":
		return CategoryQuestion
	case "REVIEW":
		return CategoryReview
	case "IDEA":
		return CategoryIdea
	case "PRO":
		return CategoryPro
	case "CON":
		return CategoryCon
	case "BRAINSTORMING":
		return CategoryBrainstorming
	case "EXAMPLE":
		return CategoryExample
	case "QUOTE":
		return CategoryQuote
	case "NOTE":
		return CategoryNote
	case "WIN":
		return CategoryWin
	case "LOSE":
		return CategoryLose
	default:
		return CategoryUnspecified
	}
}
