package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/habitcal/internal/model"
)

type Type string

const (
	TypeMark   Type = "mark"
	TypeHabit  Type = "habit"
	TypeSelect Type = "select"
	TypeGoto   Type = "goto"
	TypeToday  Type = "today"
	TypeNext   Type = "next"
	TypePrev   Type = "prev"
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

type DayArgs struct {
	Day int
}

type HabitArgs struct {
	Day   int
	Habit model.Habit
}

type GotoArgs struct {
	Month model.Month
}

type Command struct {
	Type  Type
	Raw   string
	Day   *DayArgs
	Habit *HabitArgs
	Goto  *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeMark, TypeSelect:
		return parseDay(input, Type(head), args)
	case TypeHabit:
		return parseHabit(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday, TypeNext, TypePrev:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseDay(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a day number", typ)}
	}
	day, err := parseDayNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: typ, Raw: raw, Day: &DayArgs{Day: day}}, nil
}

func parseHabit(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires a day number and a habit"}
	}
	day, err := parseDayNumber(args[0])
	if err != nil {
		return Command{}, err
	}
	habit, err := model.ParseHabit(args[1])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &HabitArgs{Day: day, Habit: habit}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a month as YYYY-MM"}
	}
	m, err := model.ParseMonth(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Month: m}}, nil
}

// parseDayNumber only checks the syntax; whether the day exists in the
// displayed month is up to the handler.
func parseDayNumber(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid day: %s", s)}
	}
	return day, nil
}
