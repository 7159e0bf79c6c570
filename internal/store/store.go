// Package store is the in-memory CRUD layer around the compiler core. It
// assigns identities at creation and hands out value snapshots; nothing is
// ever persisted and the core never sees live store state.
package store

import (
	"errors"
	"fmt"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/google/uuid"
)

// ErrNotFound reports an unknown record ID.
var ErrNotFound = errors.New("record not found")

// cloner is any record that can deep-copy itself.
type cloner[T any] interface {
	Clone() T
}

// collection keeps records in insertion order, which every report and
// flattener relies on.
type collection[T cloner[T]] struct {
	items []T
	id    func(T) string
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, item.Clone())
}

func (c *collection[T]) update(item T) error {
	for i, existing := range c.items {
		if c.id(existing) == c.id(item) {
			c.items[i] = item.Clone()
			return nil
		}
	}
	return fmt.Errorf("updating %q: %w", c.id(item), ErrNotFound)
}

func (c *collection[T]) remove(id string) error {
	for i, existing := range c.items {
		if c.id(existing) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("deleting %q: %w", id, ErrNotFound)
}

func (c *collection[T]) get(id string) (T, error) {
	for _, existing := range c.items {
		if c.id(existing) == id {
			return existing.Clone(), nil
		}
	}
	var zero T
	return zero, fmt.Errorf("fetching %q: %w", id, ErrNotFound)
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

// Store holds the five collections of one workspace.
type Store struct {
	meetings  collection[domain.MeetingRecord]
	schedules collection[domain.ScheduleRecord]
	cards     collection[domain.TaskCardRecord]
	budgets   collection[domain.BudgetRecord]
	risks     collection[domain.RiskRecord]
}

// New returns an empty workspace store.
func New() *Store {
	return &Store{
		meetings:  collection[domain.MeetingRecord]{id: func(m domain.MeetingRecord) string { return m.ID }},
		schedules: collection[domain.ScheduleRecord]{id: func(s domain.ScheduleRecord) string { return s.ID }},
		cards:     collection[domain.TaskCardRecord]{id: func(c domain.TaskCardRecord) string { return c.ID }},
		budgets:   collection[domain.BudgetRecord]{id: func(b domain.BudgetRecord) string { return b.ID }},
		risks:     collection[domain.RiskRecord]{id: func(r domain.RiskRecord) string { return r.ID }},
	}
}

// FromSnapshot builds a store from imported collections, assigning every
// record its identity. Authored order is preserved.
func FromSnapshot(snap domain.Snapshot) *Store {
	s := New()
	for _, m := range snap.Meetings {
		s.AddMeeting(m)
	}
	for _, r := range snap.Schedules {
		s.AddSchedule(r)
	}
	for _, c := range snap.Cards {
		s.AddCard(c)
	}
	for _, b := range snap.Budgets {
		s.AddBudget(b)
	}
	for _, r := range snap.Risks {
		s.AddRiskRegister(r)
	}
	return s
}

// Snapshot captures value copies of every collection for one compile call.
func (s *Store) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Meetings:  s.meetings.list(),
		Schedules: s.schedules.list(),
		Cards:     s.cards.list(),
		Budgets:   s.budgets.list(),
		Risks:     s.risks.list(),
	}
}

func (s *Store) AddMeeting(m domain.MeetingRecord) domain.MeetingRecord {
	m.ID = uuid.NewString()
	s.meetings.add(m)
	return m
}

func (s *Store) GetMeeting(id string) (domain.MeetingRecord, error) { return s.meetings.get(id) }
func (s *Store) UpdateMeeting(m domain.MeetingRecord) error         { return s.meetings.update(m) }
func (s *Store) DeleteMeeting(id string) error                      { return s.meetings.remove(id) }
func (s *Store) Meetings() []domain.MeetingRecord                   { return s.meetings.list() }

func (s *Store) AddSchedule(r domain.ScheduleRecord) domain.ScheduleRecord {
	r.ID = uuid.NewString()
	s.schedules.add(r)
	return r
}

func (s *Store) GetSchedule(id string) (domain.ScheduleRecord, error) { return s.schedules.get(id) }
func (s *Store) UpdateSchedule(r domain.ScheduleRecord) error         { return s.schedules.update(r) }
func (s *Store) DeleteSchedule(id string) error                       { return s.schedules.remove(id) }
func (s *Store) Schedules() []domain.ScheduleRecord                   { return s.schedules.list() }

func (s *Store) AddCard(c domain.TaskCardRecord) domain.TaskCardRecord {
	c.ID = uuid.NewString()
	s.cards.add(c)
	return c
}

func (s *Store) GetCard(id string) (domain.TaskCardRecord, error) { return s.cards.get(id) }
func (s *Store) UpdateCard(c domain.TaskCardRecord) error         { return s.cards.update(c) }
func (s *Store) DeleteCard(id string) error                       { return s.cards.remove(id) }
func (s *Store) Cards() []domain.TaskCardRecord                   { return s.cards.list() }

func (s *Store) AddBudget(b domain.BudgetRecord) domain.BudgetRecord {
	b.ID = uuid.NewString()
	s.budgets.add(b)
	return b
}

func (s *Store) GetBudget(id string) (domain.BudgetRecord, error) { return s.budgets.get(id) }
func (s *Store) UpdateBudget(b domain.BudgetRecord) error         { return s.budgets.update(b) }
func (s *Store) DeleteBudget(id string) error                     { return s.budgets.remove(id) }
func (s *Store) Budgets() []domain.BudgetRecord                   { return s.budgets.list() }

func (s *Store) AddRiskRegister(r domain.RiskRecord) domain.RiskRecord {
	r.ID = uuid.NewString()
	s.risks.add(r)
	return r
}

func (s *Store) GetRiskRegister(id string) (domain.RiskRecord, error) { return s.risks.get(id) }
func (s *Store) UpdateRiskRegister(r domain.RiskRecord) error         { return s.risks.update(r) }
func (s *Store) DeleteRiskRegister(id string) error                   { return s.risks.remove(id) }
func (s *Store) RiskRegisters() []domain.RiskRecord                   { return s.risks.list() }
