package selection

import "fmt"

// Bounds is the inclusive year interval covered by the loaded dataset.
// It is fixed at construction.
type Bounds struct {
	minYear int
	maxYear int
}

// NewBounds builds the year bounds derived from a dataset.
func NewBounds(minYear, maxYear int) (*Bounds, error) {
	if minYear > maxYear {
		return nil, fmt.Errorf("selection: min year %d after max year %d", minYear, maxYear)
	}
	return &Bounds{minYear: minYear, maxYear: maxYear}, nil
}

func (b *Bounds) MinYear() int { return b.minYear }
func (b *Bounds) MaxYear() int { return b.maxYear }

// Contains reports whether year lies within the bounds.
func (b *Bounds) Contains(year int) bool {
	return year >= b.minYear && year <= b.maxYear
}

func (b *Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.minYear, b.maxYear)
}
