package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/habitcal/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/mark 5", TypeMark},
		{"habit 12 water", TypeHabit},
		{"habit 12 C", TypeHabit},
		{"select 31", TypeSelect},
		{"goto 2024-02", TypeGoto},
		{"/today", TypeToday},
		{"NEXT", TypeNext},
		{"prev", TypePrev},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("habit 7 d")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Habit.Day != 7 || cmd.Habit.Habit != model.HabitNutrition {
		t.Fatalf("unexpected habit args: %+v", cmd.Habit)
	}

	cmd, err = Parse("goto 2023-12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Goto.Month != (model.Month{Year: 2023, Index: 11}) {
		t.Fatalf("unexpected goto args: %+v", cmd.Goto)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":              ErrCodeEmptyInput,
		"/":             ErrCodeEmptyInput,
		"/unknown do x": ErrCodeUnknownCommand,
		"mark":          ErrCodeInvalidArgument,
		"mark 0":        ErrCodeInvalidArgument,
		"mark 32":       ErrCodeInvalidArgument,
		"mark five":     ErrCodeInvalidArgument,
		"habit 3":       ErrCodeInvalidArgument,
		"habit 3 sleep": ErrCodeInvalidArgument,
		"goto march":    ErrCodeInvalidArgument,
		"today please":  ErrCodeInvalidArgument,
	}
	for in, want := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != want {
			t.Fatalf("Parse(%q) err = %v, want code %s", in, err, want)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/mark 9")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Mark: func(a DayArgs) (Result, error) {
			called = true
			if a.Day != 9 {
				t.Fatalf("unexpected day: %d", a.Day)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("next")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
