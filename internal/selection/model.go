package selection

import (
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/util"
)

// Update collects pending field changes. Fields left unset keep the
// model's current value.
type Update struct {
	yearRange       *models.YearRange
	windowSize      *int
	polynomialOrder *int
}

func (u Update) WithYearRange(r models.YearRange) Update {
	u.yearRange = util.Ptr(r)
	return u
}

func (u Update) WithWindowSize(w int) Update {
	u.windowSize = util.Ptr(w)
	return u
}

func (u Update) WithPolynomialOrder(p int) Update {
	u.polynomialOrder = util.Ptr(p)
	return u
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.yearRange == nil && u.windowSize == nil && u.polynomialOrder == nil
}

// applyTo returns s with the pending changes applied.
func (u Update) applyTo(s models.Selection) models.Selection {
	if u.yearRange != nil {
		s.YearRange = *u.yearRange
	}
	if u.windowSize != nil {
		s.WindowSize = *u.windowSize
	}
	if u.polynomialOrder != nil {
		s.PolynomialOrder = *u.polynomialOrder
	}
	return s
}

// Model holds a selection that is valid against its bounds at all times.
// It is meant to be driven from a single event loop and is not safe for
// concurrent use.
type Model struct {
	bounds      *Bounds
	current     models.Selection
	subscribers []func(models.Selection)
}

// New validates initial against b and returns a model holding it.
func New(b *Bounds, initial models.Selection) (*Model, error) {
	if err := Validate(b, initial); err != nil {
		return nil, err
	}
	return &Model{bounds: b, current: initial}, nil
}

func (m *Model) Selection() models.Selection { return m.current }
func (m *Model) Bounds() *Bounds              { return m.bounds }

// Apply validates the selection that u would produce and commits it as a
// whole. On error the model is unchanged and the current selection is
// returned alongside the *ValidationError.
func (m *Model) Apply(u Update) (models.Selection, error) {
	candidate := u.applyTo(m.current)
	if err := Validate(m.bounds, candidate); err != nil {
		return m.current, err
	}
	if candidate == m.current {
		return m.current, nil
	}
	m.current = candidate
	for _, fn := range m.subscribers {
		fn(candidate)
	}
	return candidate, nil
}

func (m *Model) SetYearRange(r models.YearRange) error {
	_, err := m.Apply(Update{}.WithYearRange(r))
	return err
}

func (m *Model) SetWindowSize(w int) error {
	_, err := m.Apply(Update{}.WithWindowSize(w))
	return err
}

func (m *Model) SetPolynomialOrder(p int) error {
	_, err := m.Apply(Update{}.WithPolynomialOrder(p))
	return err
}

// Subscribe registers fn to be called after every committed change.
func (m *Model) Subscribe(fn func(models.Selection)) {
	if fn != nil {
		m.subscribers = append(m.subscribers, fn)
	}
}
