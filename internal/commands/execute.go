package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Mark   func(DayArgs) (Result, error)
	Habit  func(HabitArgs) (Result, error)
	Select func(DayArgs) (Result, error)
	Goto   func(GotoArgs) (Result, error)
	Today  func() (Result, error)
	Next   func() (Result, error)
	Prev   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeMark:
		if handlers.Mark == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Mark(*cmd.Day)
	case TypeHabit:
		if handlers.Habit == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Habit(*cmd.Habit)
	case TypeSelect:
		if handlers.Select == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Select(*cmd.Day)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Goto(*cmd.Goto)
	case TypeToday:
		if handlers.Today == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Today()
	case TypeNext:
		if handlers.Next == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Next()
	case TypePrev:
		if handlers.Prev == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Prev()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
