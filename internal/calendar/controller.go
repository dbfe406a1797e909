// Package calendar projects the day-state store onto a month grid and
// holds the navigation and selection state of the displayed month.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/habitcal/internal/daystate"
	"github.com/sandeepkv93/habitcal/internal/model"
)

// Columns is the fixed grid width, Monday first.
const Columns = 7

// InvalidDayError is raised (by panic) when a day-level operation names a
// day that is not rendered in the displayed month.
type InvalidDayError struct {
	Month model.Month
	Day   int
}

func (e InvalidDayError) Error() string {
	return fmt.Sprintf("calendar: day %d outside %s (1..%d)", e.Day, e.Month, e.Month.Days())
}

// ViewState is the transient part of the controller. Selected is zero
// when no day is selected.
type ViewState struct {
	Month    model.Month
	Selected int
}

type Controller struct {
	store *daystate.Store
	state ViewState
	now   func() time.Time
}

// New starts on the month containing now().
func New(store *daystate.Store, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		store: store,
		state: ViewState{Month: model.MonthOf(now())},
		now:   now,
	}
}

func (c *Controller) Now() time.Time {
	return c.now()
}

func (c *Controller) State() ViewState {
	return c.state
}

func (c *Controller) Month() model.Month {
	return c.state.Month
}

// Selected returns the selected day and whether there is one.
func (c *Controller) Selected() (int, bool) {
	return c.state.Selected, c.state.Selected != 0
}

func (c *Controller) PreviousMonth() {
	c.GoTo(c.state.Month.Prev())
}

func (c *Controller) NextMonth() {
	c.GoTo(c.state.Month.Next())
}

// GoTo displays m and clears the selection.
func (c *Controller) GoTo(m model.Month) {
	c.state = ViewState{Month: m}
}

// GoToToday displays the current month and selects today.
func (c *Controller) GoToToday() {
	now := c.now()
	c.state = ViewState{Month: model.MonthOf(now), Selected: now.Day()}
}

// SelectDay selects d, or clears the selection when d is already selected.
func (c *Controller) SelectDay(d int) {
	c.mustBeValid(d)
	if c.state.Selected == d {
		c.state.Selected = 0
		return
	}
	c.state.Selected = d
}

func (c *Controller) ToggleMarked(ctx context.Context, d int) error {
	c.mustBeValid(d)
	return c.store.ToggleMarked(ctx, c.state.Month.Key(d))
}

func (c *Controller) ToggleHabit(ctx context.Context, d int, habit model.Habit) error {
	c.mustBeValid(d)
	return c.store.ToggleHabit(ctx, c.state.Month.Key(d), habit)
}

// Record returns the stored record for day d of the displayed month.
func (c *Controller) Record(d int) model.DayRecord {
	c.mustBeValid(d)
	return c.store.Get(c.state.Month.Key(d))
}

// ValidDay reports whether d is rendered in the displayed month. Callers
// holding untrusted input check this before any day-level operation.
func (c *Controller) ValidDay(d int) bool {
	return d >= 1 && d <= c.state.Month.Days()
}

func (c *Controller) mustBeValid(d int) {
	if !c.ValidDay(d) {
		panic(InvalidDayError{Month: c.state.Month, Day: d})
	}
}
