package calendar

import "github.com/sandeepkv93/habitcal/internal/model"

// Cell is one square of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank      bool
	Day        int
	Key        string
	Marked     bool
	Today      bool
	Workout    bool
	Selected   bool
	Completion int
}

type Grid struct {
	Month  model.Month
	Offset int
	Cells  []Cell
}

// Weeks splits the cells into rows of Columns; the last row may be short.
func (g Grid) Weeks() [][]Cell {
	out := make([][]Cell, 0, (len(g.Cells)+Columns-1)/Columns)
	for start := 0; start < len(g.Cells); start += Columns {
		end := min(start+Columns, len(g.Cells))
		out = append(out, g.Cells[start:end])
	}
	return out
}

// Grid derives the displayed month from the store.
func (c *Controller) Grid() Grid {
	m := c.state.Month
	offset := model.FirstWeekdayOffset(m.Year, m.Index)
	days := m.Days()
	workouts := model.WorkoutDays(m.Year, m.Index)
	now := c.now()

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		key := m.Key(d)
		rec := c.store.Get(key)
		cells = append(cells, Cell{
			Day:        d,
			Key:        key,
			Marked:     rec.Marked,
			Today:      model.IsToday(now, m.Year, m.Index, d),
			Workout:    workouts[d],
			Selected:   c.state.Selected == d,
			Completion: model.CompletionCount(rec),
		})
	}
	return Grid{Month: m, Offset: offset, Cells: cells}
}

// MarkedCount is the number of marked days in the displayed month.
func (c *Controller) MarkedCount() int {
	m := c.state.Month
	count := 0
	for d := 1; d <= m.Days(); d++ {
		if c.store.Get(m.Key(d)).Marked {
			count++
		}
	}
	return count
}
