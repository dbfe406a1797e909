package daystate

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/sandeepkv93/habitcal/internal/storage"
)

type fakeBackend struct {
	slots  map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{slots: make(map[string][]byte)}
}

func (f *fakeBackend) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	raw, ok := f.slots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return raw, nil
}

func (f *fakeBackend) Put(_ context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.slots[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeBackend) Close() error { return nil }

func TestLoadEmptyOrCorruptStorageYieldsEmptyStore(t *testing.T) {
	cases := map[string]*fakeBackend{
		"missing":   newFakeBackend(),
		"corrupt":   {slots: map[string][]byte{SlotKey: []byte("{not json")}},
		"wrongtype": {slots: map[string][]byte{SlotKey: []byte(`[1,2,3]`)}},
		"readerror": {slots: map[string][]byte{}, getErr: errors.New("disk gone")},
	}
	for name, backend := range cases {
		s := Load(context.Background(), backend, nil)
		if got := s.Get("2024-03-05"); !got.IsZero() {
			t.Fatalf("%s: expected empty record, got %+v", name, got)
		}
		if len(s.Keys()) != 0 {
			t.Fatalf("%s: expected no keys, got %v", name, s.Keys())
		}
		if backend.puts != 0 {
			t.Fatalf("%s: load must not write, got %d puts", name, backend.puts)
		}
	}
}

func TestLoadLogsCorruptData(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	backend := &fakeBackend{slots: map[string][]byte{SlotKey: []byte("garbage")}}
	Load(context.Background(), backend, logger)
	if !strings.Contains(buf.String(), "decode day state failed") {
		t.Fatalf("expected warning in log, got %q", buf.String())
	}
}

func TestLoadKeepsKnownFieldsAndIgnoresUnknown(t *testing.T) {
	backend := newFakeBackend()
	backend.slots[SlotKey] = []byte(`{
		"2024-03-05": {"marked": true, "water": true, "mood": "ok"},
		"2024-03-06": {},
		"not-a-date": {"marked": true}
	}`)
	s := Load(context.Background(), backend, nil)
	want := model.DayRecord{Marked: true, Water: true}
	if got := s.Get("2024-03-05"); got != want {
		t.Fatalf("unexpected record: %+v", got)
	}
	keys := s.Keys()
	if len(keys) != 1 || keys[0] != "2024-03-05" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestScenarioWaterThenMarked(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := Load(ctx, backend, nil)

	if err := s.SetHabitFlag(ctx, "2024-03-05", model.HabitWater, true); err != nil {
		t.Fatalf("set habit: %v", err)
	}
	if err := s.SetMarked(ctx, "2024-03-05", true); err != nil {
		t.Fatalf("set marked: %v", err)
	}

	got := s.Get("2024-03-05")
	want := model.DayRecord{Marked: true, Water: true}
	if got != want {
		t.Fatalf("record = %+v, want %+v", got, want)
	}
	if n := model.CompletionCount(got); n != 1 {
		t.Fatalf("completion count = %d, want 1", n)
	}
	if backend.puts != 2 {
		t.Fatalf("expected a save per mutation, got %d", backend.puts)
	}

	reloaded := Load(ctx, backend, nil)
	if reloaded.Get("2024-03-05") != want {
		t.Fatalf("reloaded record = %+v", reloaded.Get("2024-03-05"))
	}
}

func TestSetHabitFlagIsIdempotent(t *testing.T) {
	ctx := context.Background()
	once := Load(ctx, newFakeBackend(), nil)
	twice := Load(ctx, newFakeBackend(), nil)

	if err := once.SetHabitFlag(ctx, "2024-03-05", model.HabitWater, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := twice.SetHabitFlag(ctx, "2024-03-05", model.HabitWater, true); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	if once.Get("2024-03-05") != twice.Get("2024-03-05") {
		t.Fatalf("states differ: %+v vs %+v", once.Get("2024-03-05"), twice.Get("2024-03-05"))
	}
}

func TestSetMarkedToggleLaw(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, newFakeBackend(), nil)
	key := "2024-03-05"
	if err := s.SetHabitFlag(ctx, key, model.HabitSteps, true); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := s.Get(key)

	for _, v := range []bool{true, false} {
		if err := s.SetMarked(ctx, key, v); err != nil {
			t.Fatalf("set marked: %v", err)
		}
		if err := s.SetMarked(ctx, key, !v); err != nil {
			t.Fatalf("set marked: %v", err)
		}
		got := s.Get(key)
		if got.Steps != before.Steps || got.Alcohol || got.Water || got.Nutrition {
			t.Fatalf("habit fields changed: %+v", got)
		}
	}
	if err := s.SetMarked(ctx, key, false); err != nil {
		t.Fatalf("set marked: %v", err)
	}
	if s.Get(key) != before {
		t.Fatalf("marked not restored: %+v vs %+v", s.Get(key), before)
	}
}

func TestToggleRemovesEmptyRecords(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	s := Load(ctx, backend, nil)
	key := "2024-01-31"
	if err := s.ToggleHabit(ctx, key, model.HabitNutrition); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Get(key).Nutrition {
		t.Fatal("expected nutrition set")
	}
	if err := s.ToggleHabit(ctx, key, model.HabitNutrition); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.ToggleMarked(ctx, key); err != nil {
		t.Fatalf("toggle marked: %v", err)
	}
	if err := s.ToggleMarked(ctx, key); err != nil {
		t.Fatalf("toggle marked: %v", err)
	}
	if string(backend.slots[SlotKey]) != "{}" {
		t.Fatalf("expected empty mapping persisted, got %s", backend.slots[SlotKey])
	}
}

func TestMutationsRejectBadInput(t *testing.T) {
	ctx := context.Background()
	s := Load(ctx, newFakeBackend(), nil)
	if err := s.SetMarked(ctx, "2024-02-30", true); !errors.Is(err, model.ErrInvalidDateKey) {
		t.Fatalf("expected ErrInvalidDateKey, got %v", err)
	}
	if err := s.SetHabitFlag(ctx, "2024-02-10", model.Habit("sleep"), true); !errors.Is(err, model.ErrUnknownHabit) {
		t.Fatalf("expected ErrUnknownHabit, got %v", err)
	}
}

func TestSaveBeforeLoadIsRefused(t *testing.T) {
	var s Store
	if err := s.Save(context.Background()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if err := s.SetMarked(context.Background(), "2024-03-05", true); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestSaveSurfacesWriteErrors(t *testing.T) {
	backend := newFakeBackend()
	backend.putErr = errors.New("read-only")
	s := Load(context.Background(), backend, nil)
	err := s.SetMarked(context.Background(), "2024-03-05", true)
	if err == nil || !strings.Contains(err.Error(), "save day state") {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if !s.Get("2024-03-05").Marked {
		t.Fatal("in-memory state should keep the mutation")
	}
}

func TestStoreWithFileBackend(t *testing.T) {
	ctx := context.Background()
	backend, err := storage.NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	s := Load(ctx, backend, nil)
	if err := s.SetHabitFlag(ctx, "2024-03-05", model.HabitAlcohol, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err := backend.Get(ctx, SlotKey)
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if string(raw) != `{"2024-03-05":{"alcohol":true}}` {
		t.Fatalf("unexpected persisted value: %s", raw)
	}
	snap := s.Snapshot()
	snap["2024-03-06"] = model.DayRecord{Marked: true}
	if s.Get("2024-03-06").Marked {
		t.Fatal("snapshot must be a copy")
	}
}

func TestSaveKeepsUnknownFieldsAndUnparsedEntries(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.slots[SlotKey] = []byte(`{
		"2024-03-05": {"water": true, "sleep": true},
		"2024-3-6": {"marked": true},
		"2024-03-08": "legacy"
	}`)
	s := Load(ctx, backend, nil)

	if err := s.SetMarked(ctx, "2024-03-07", true); err != nil {
		t.Fatalf("set marked: %v", err)
	}
	want := `{"2024-03-05":{"sleep":true,"water":true},"2024-03-07":{"marked":true},"2024-03-08":"legacy","2024-3-6":{"marked":true}}`
	if got := string(backend.slots[SlotKey]); got != want {
		t.Fatalf("persisted slot = %s\nwant %s", got, want)
	}

	// Clearing the known flags leaves the unknown ones in place.
	if err := s.SetHabitFlag(ctx, "2024-03-05", model.HabitWater, false); err != nil {
		t.Fatalf("clear water: %v", err)
	}
	if !strings.Contains(string(backend.slots[SlotKey]), `"2024-03-05":{"sleep":true}`) {
		t.Fatalf("expected sleep to survive, got %s", backend.slots[SlotKey])
	}

	// Writing a typed record over an unparsed entry replaces it.
	if err := s.SetMarked(ctx, "2024-03-08", true); err != nil {
		t.Fatalf("set marked: %v", err)
	}
	if !strings.Contains(string(backend.slots[SlotKey]), `"2024-03-08":{"marked":true}`) {
		t.Fatalf("expected typed record for 2024-03-08, got %s", backend.slots[SlotKey])
	}
	if keys := s.Keys(); len(keys) != 2 || keys[0] != "2024-03-07" || keys[1] != "2024-03-08" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}
