package tui

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
)

// ControlID identifies one control of the control panel.
type ControlID int

const (
	ControlYearFrom ControlID = iota
	ControlYearTo
	ControlWindowSize
	ControlPolynomialOrder
	controlCount
)

// Field is the selection field the control is bound to.
func (c ControlID) Field() selection.Field {
	switch c {
	case ControlYearFrom, ControlYearTo:
		return selection.FieldYearRange
	case ControlWindowSize:
		return selection.FieldWindowSize
	default:
		return selection.FieldPolynomialOrder
	}
}

func (c ControlID) Label() string {
	switch c {
	case ControlYearFrom:
		return "Year from"
	case ControlYearTo:
		return "Year to"
	case ControlWindowSize:
		return "Window size"
	default:
		return "Polynomial order"
	}
}

// controlValue reads the value a control displays from s.
func controlValue(s models.Selection, c ControlID) int {
	switch c {
	case ControlYearFrom:
		return s.YearRange.Low
	case ControlYearTo:
		return s.YearRange.High
	case ControlWindowSize:
		return s.WindowSize
	default:
		return s.PolynomialOrder
	}
}

// Link pushes control values into the bound selection model. The model
// stays the single source of truth: controls always redraw from it.
type Link struct {
	target *selection.Model
}

func NewLink(target *selection.Model) Link {
	return Link{target: target}
}

// Push parses raw and applies it to the field behind c. Text that is not an
// integer is rejected the same way as an out of range value.
func (l Link) Push(c ControlID, raw string) (models.Selection, error) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return l.target.Selection(), &selection.ValidationError{Violations: []selection.Violation{{
			Field:      c.Field(),
			Constraint: "must be an integer",
			Value:      strconv.Quote(raw),
		}}}
	}
	return l.Set(c, v)
}

// Set applies v to the field behind c.
func (l Link) Set(c ControlID, v int) (models.Selection, error) {
	cur := l.target.Selection()
	var u selection.Update
	switch c {
	case ControlYearFrom:
		u = u.WithYearRange(models.YearRange{Low: v, High: cur.YearRange.High})
	case ControlYearTo:
		u = u.WithYearRange(models.YearRange{Low: cur.YearRange.Low, High: v})
	case ControlWindowSize:
		u = u.WithWindowSize(v)
	default:
		u = u.WithPolynomialOrder(v)
	}
	return l.target.Apply(u)
}

// Step moves the control's value by delta.
func (l Link) Step(c ControlID, delta int) (models.Selection, error) {
	return l.Set(c, controlValue(l.target.Selection(), c)+delta)
}
