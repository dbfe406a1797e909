// Package i18n holds the user-facing strings of the calendar in English
// and Russian and exposes them through x/text message printers.
package i18n

import (
	"fmt"
	"sync"

	"github.com/sandeepkv93/habitcal/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"month.0": "January", "month.1": "February", "month.2": "March", "month.3": "April",
		"month.4": "May", "month.5": "June", "month.6": "July", "month.7": "August",
		"month.8": "September", "month.9": "October", "month.10": "November", "month.11": "December",
		"weekday.0": "Mo", "weekday.1": "Tu", "weekday.2": "We", "weekday.3": "Th",
		"weekday.4": "Fr", "weekday.5": "Sa", "weekday.6": "Su",
		"habit.alcohol":   "No alcohol",
		"habit.water":     "Water (2l)",
		"habit.steps":     "Steps (10k)",
		"habit.nutrition": "Healthy eating",
		"legend.today":    "Today",
		"legend.workout":  "Workout",
		"legend.progress": "Progress",
		"legend.marked":   "Skipped",
		"day.done":        "Done: %d of 4",
		"day.marked":      "Skipped",
		"stats.marked":    "Marked days this month",
	},
	language.Russian: {
		"month.0": "Январь", "month.1": "Февраль", "month.2": "Март", "month.3": "Апрель",
		"month.4": "Май", "month.5": "Июнь", "month.6": "Июль", "month.7": "Август",
		"month.8": "Сентябрь", "month.9": "Октябрь", "month.10": "Ноябрь", "month.11": "Декабрь",
		"weekday.0": "Пн", "weekday.1": "Вт", "weekday.2": "Ср", "weekday.3": "Чт",
		"weekday.4": "Пт", "weekday.5": "Сб", "weekday.6": "Вс",
		"habit.alcohol":   "Без алкоголя",
		"habit.water":     "Вода (2л)",
		"habit.steps":     "Шаги (10k)",
		"habit.nutrition": "Правильное питание",
		"legend.today":    "Сегодня",
		"legend.workout":  "Тренировка",
		"legend.progress": "Прогресс",
		"legend.marked":   "Пропуск",
		"day.done":        "Выполнено: %d из 4",
		"day.marked":      "Пропуск",
		"stats.marked":    "Отмечено дней в этом месяце",
	},
}

var registerOnce sync.Once

func register() {
	for tag, messages := range catalogs {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s %q: %v", tag, key, err))
			}
		}
	}
}

// Translator renders calendar strings for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New picks the closest supported locale for raw ("ru", "ru-RU", "en-GB").
// Unknown locales fall back to English.
func New(raw string) Translator {
	registerOnce.Do(register)
	_, idx, _ := matcher.Match(language.Make(raw))
	tag := supported[idx]
	return Translator{tag: tag, printer: message.NewPrinter(tag)}
}

func (t Translator) Locale() string {
	return t.tag.String()
}

func (t Translator) MonthName(m model.Month) string {
	return t.printer.Sprintf(fmt.Sprintf("month.%d", m.Index))
}

// Title is the calendar header, e.g. "March 2024".
func (t Translator) Title(m model.Month) string {
	return fmt.Sprintf("%s %d", t.MonthName(m), m.Year)
}

// Weekdays returns the Monday-first column headers.
func (t Translator) Weekdays() []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = t.printer.Sprintf(fmt.Sprintf("weekday.%d", i))
	}
	return out
}

func (t Translator) Habit(h model.Habit) string {
	return t.printer.Sprintf("habit." + string(h))
}

// Text looks up a plain caption such as "stats.marked".
func (t Translator) Text(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
