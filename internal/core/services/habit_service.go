package services

import (
	"context"
	"strings"
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// HabitService edits the habit list. Every change is a full replace of the
// stored collection.
type HabitService struct {
	store domain.Store

	// mu makes read-modify-replace sequences atomic within the process.
	mu sync.Mutex
}

func NewHabitService(store domain.Store) *HabitService {
	return &HabitService{
		store: store,
	}
}

type CreateHabitInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type UpdateHabitInput struct {
	ID    string
	Name  string
	Color string
	Icon  string
}

func (s *HabitService) List(ctx context.Context) ([]domain.Habit, error) {
	return s.store.ListHabits(ctx)
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			h := habits[i]
			return &h, nil
		}
	}
	return nil, domain.ErrHabitNotFound
}

// Create appends a habit. A blank name becomes DefaultHabitName and missing
// color or icon come from the palettes by position.
func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if strings.TrimSpace(name) == "" {
		name = domain.DefaultHabitName
	}

	habit, err := domain.NewHabit(name, input.Color, input.Icon, len(habits))
	if err != nil {
		return nil, err
	}

	if err := s.store.ReplaceHabits(ctx, append(habits, *habit)); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	idx, ok := domain.IndexHabits(habits)[input.ID]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}

	updated := habits[idx]
	if err := updated.Update(input.Name, input.Color, input.Icon); err != nil {
		return nil, err
	}
	habits[idx] = updated

	if err := s.store.ReplaceHabits(ctx, habits); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the habit from the list. Day records that mention it are
// left as they are.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return domain.ErrHabitNotFound
	}

	return s.store.ReplaceHabits(ctx, kept)
}

// Reorder stores the habits in the order given by ids, which must name
// every current habit exactly once.
func (s *HabitService) Reorder(ctx context.Context, ids []string) ([]domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) != len(habits) {
		return nil, domain.ErrInvalidOrder
	}

	idx := domain.IndexHabits(habits)
	seen := make(map[string]bool, len(ids))
	ordered := make([]domain.Habit, 0, len(ids))
	for _, id := range ids {
		i, ok := idx[id]
		if !ok || seen[id] {
			return nil, domain.ErrInvalidOrder
		}
		seen[id] = true
		ordered = append(ordered, habits[i])
	}

	if err := s.store.ReplaceHabits(ctx, ordered); err != nil {
		return nil, err
	}
	return ordered, nil
}

// Replace validates and stores a complete habit list as given.
func (s *HabitService) Replace(ctx context.Context, habits []domain.Habit) error {
	if err := validateList(habits); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ReplaceHabits(ctx, habits)
}

func validateList(habits []domain.Habit) error {
	seen := make(map[string]bool, len(habits))
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return err
		}
		if seen[h.ID] {
			return domain.ErrDuplicateHabitID
		}
		seen[h.ID] = true
	}
	return nil
}

func (s *HabitService) IsSetupComplete(ctx context.Context) (bool, error) {
	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return false, err
	}
	return len(habits) > 0, nil
}

// Setup is first-run onboarding: it replaces the list with every entry that
// has a non-blank name.
func (s *HabitService) Setup(ctx context.Context, inputs []CreateHabitInput) ([]domain.Habit, error) {
	habits := make([]domain.Habit, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			continue
		}
		h, err := domain.NewHabit(in.Name, in.Color, in.Icon, len(habits))
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	if len(habits) == 0 {
		return nil, domain.ErrNoHabits
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ReplaceHabits(ctx, habits); err != nil {
		return nil, err
	}
	return habits, nil
}
