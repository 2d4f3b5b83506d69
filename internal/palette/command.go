package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/varshitha1106/SmartStudyPlanner/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeGoal   Type = "goal"
	TypeFilter Type = "filter"
	TypeSearch Type = "search"
	TypeExport Type = "export"
	TypeImport Type = "import"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries a task title plus the optional key:value modifiers
// (due:, at:, pri:, remind:, goal:, subject:) recognized by parseAdd.
type AddArgs struct {
	Title           string
	Subject         string
	DueDate         string
	DueTime         string
	Priority        model.Priority
	ReminderMinutes int
	GoalTitle       string
}

type GoalArgs struct {
	Title string
}

type FilterArgs struct {
	Name string
}

type SearchArgs struct {
	Term string
}

type FileArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Goal   *GoalArgs
	Filter *FilterArgs
	Search *SearchArgs
	Export *FileArgs
	Import *FileArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeExport:
		return parseFile(TypeExport, input, args)
	case TypeImport:
		return parseFile(TypeImport, input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	out := AddArgs{Priority: model.PriorityMedium}
	var title []string
	for _, arg := range args {
		key, value, ok := splitModifier(arg)
		if !ok {
			title = append(title, arg)
			continue
		}
		switch key {
		case "due":
			out.DueDate = value
		case "at":
			out.DueTime = value
		case "subject":
			out.Subject = value
		case "goal":
			out.GoalTitle = value
		case "pri":
			pr := model.Priority(strings.ToLower(value))
			if !pr.IsValid() {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown priority: %s", value)}
			}
			out.Priority = pr
		case "remind":
			minutes, err := strconv.Atoi(value)
			if err != nil || minutes < 0 {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid reminder minutes: %s", value)}
			}
			out.ReminderMinutes = minutes
		default:
			title = append(title, arg)
		}
	}

	out.Title = strings.TrimSpace(strings.Join(title, " "))
	if out.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseGoal(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goal requires a title"}
	}
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Title: title}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a name"}
	}
	name := strings.ToLower(args[0])
	switch name {
	case "all", "pending", "completed", "overdue", "high":
		return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Name: name}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", name)}
	}
}

func parseSearch(raw string, args []string) (Command, error) {
	// An empty term clears the active search.
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
}

func parseFile(t Type, raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a file path", t)}
	}
	cmd := Command{Type: t, Raw: raw}
	file := &FileArgs{Path: strings.Join(args, " ")}
	if t == TypeExport {
		cmd.Export = file
	} else {
		cmd.Import = file
	}
	return cmd, nil
}

func splitModifier(arg string) (key, value string, ok bool) {
	i := strings.Index(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return "", "", false
	}
	return strings.ToLower(arg[:i]), arg[i+1:], true
}
