// Package daystate owns the per-day records and their persistence.
package daystate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/sandeepkv93/habitcal/internal/storage"
)

// SlotKey is the storage slot holding the serialized mapping.
const SlotKey = "markedDates"

var ErrNotLoaded = errors.New("daystate: store was not loaded")

// Store maps date keys to day records. It is not safe for concurrent use;
// the UI drives it from a single goroutine.
//
// Fields this version does not know and entries it cannot parse are kept
// as raw JSON and written back unchanged on every save.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
	records map[string]model.DayRecord
	extras  map[string]map[string]json.RawMessage
	foreign map[string]json.RawMessage
	loaded  bool
}

var knownFields = map[string]bool{
	"marked":                     true,
	string(model.HabitAlcohol):   true,
	string(model.HabitWater):     true,
	string(model.HabitSteps):     true,
	string(model.HabitNutrition): true,
}

// Load reads the persisted mapping once. Missing or malformed data yields
// an empty store; read failures are logged and never returned.
func Load(ctx context.Context, backend storage.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		backend: backend,
		logger:  logger,
		records: make(map[string]model.DayRecord),
		extras:  make(map[string]map[string]json.RawMessage),
		foreign: make(map[string]json.RawMessage),
		loaded:  true,
	}
	if backend == nil {
		logger.Warn("no storage backend configured, starting empty")
		return s
	}

	raw, err := backend.Get(ctx, SlotKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logger.Debug("no persisted day state", "slot", SlotKey)
		return s
	case err != nil:
		logger.Warn("read day state failed, starting empty", "slot", SlotKey, "error", err)
		return s
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logger.Warn("decode day state failed, starting empty", "slot", SlotKey, "error", err)
		return s
	}
	kept := 0
	for key, entry := range decoded {
		if !s.decodeEntry(key, entry) {
			s.foreign[key] = entry
			kept++
		}
	}
	if kept > 0 {
		logger.Warn("kept unparsed day state entries as is", "count", kept)
	}
	logger.Info("day state loaded", "records", len(s.records))
	return s
}

// decodeEntry splits one persisted entry into typed flags and unknown
// fields. It reports false when the key or value is not a day record.
func (s *Store) decodeEntry(key string, entry json.RawMessage) bool {
	if _, _, _, err := model.ParseDateKey(key); err != nil {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
		return false
	}
	var rec model.DayRecord
	if err := json.Unmarshal(entry, &rec); err != nil {
		return false
	}
	for name := range knownFields {
		delete(fields, name)
	}
	if len(fields) > 0 {
		s.extras[key] = fields
	}
	if !rec.IsZero() {
		s.records[key] = rec
	}
	return true
}

// Save writes the full mapping. Records with every flag false are dropped.
func (s *Store) Save(ctx context.Context) error {
	if s == nil || !s.loaded {
		return ErrNotLoaded
	}
	if s.backend == nil {
		return nil
	}
	payload, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode day state: %w", err)
	}
	if err := s.backend.Put(ctx, SlotKey, payload); err != nil {
		return fmt.Errorf("save day state: %w", err)
	}
	s.logger.Debug("day state saved", "records", len(s.records))
	return nil
}

// MarshalJSON encodes the non-empty records as a key-sorted object, with
// unknown fields and unparsed entries merged back in.
func (s *Store) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.records)+len(s.foreign))
	for key, entry := range s.foreign {
		out[key] = entry
	}
	for key, extra := range s.extras {
		fields := make(map[string]json.RawMessage, len(extra)+len(knownFields))
		for name, v := range extra {
			fields[name] = v
		}
		if err := mergeFlags(fields, s.records[key]); err != nil {
			return nil, err
		}
		entry, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		out[key] = entry
	}
	for key, rec := range s.records {
		if rec.IsZero() || s.extras[key] != nil {
			continue
		}
		entry, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		out[key] = entry
	}
	return json.Marshal(out)
}

func mergeFlags(fields map[string]json.RawMessage, rec model.DayRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	var flags map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flags); err != nil {
		return err
	}
	for name, v := range flags {
		fields[name] = v
	}
	return nil
}

func (s *Store) Get(key string) model.DayRecord {
	return s.records[key]
}

func (s *Store) SetMarked(ctx context.Context, key string, v bool) error {
	rec := s.records[key]
	rec.Marked = v
	return s.put(ctx, key, rec)
}

func (s *Store) SetHabitFlag(ctx context.Context, key string, habit model.Habit, v bool) error {
	if !habit.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownHabit, habit)
	}
	return s.put(ctx, key, s.records[key].WithFlag(habit, v))
}

func (s *Store) ToggleMarked(ctx context.Context, key string) error {
	return s.SetMarked(ctx, key, !s.records[key].Marked)
}

func (s *Store) ToggleHabit(ctx context.Context, key string, habit model.Habit) error {
	return s.SetHabitFlag(ctx, key, habit, !s.records[key].Flag(habit))
}

// Keys returns the keys of non-empty records in calendar order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.records))
	for key, rec := range s.records {
		if !rec.IsZero() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) Snapshot() map[string]model.DayRecord {
	out := make(map[string]model.DayRecord, len(s.records))
	for key, rec := range s.records {
		out[key] = rec
	}
	return out
}

func (s *Store) put(ctx context.Context, key string, rec model.DayRecord) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if _, _, _, err := model.ParseDateKey(key); err != nil {
		return err
	}
	delete(s.foreign, key)
	if rec.IsZero() {
		delete(s.records, key)
	} else {
		s.records[key] = rec
	}
	return s.Save(ctx)
}
