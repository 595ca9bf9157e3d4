package report

import "github.com/agbru/matchtime/internal/estimate"

//go:generate mockgen -destination=mocks/mock_observer.go -package=mocks github.com/agbru/matchtime/internal/report Observer

// Observer is notified of every computed cell, in row-major order, once the
// whole grid has been computed successfully.
type Observer interface {
	ObserveCell(cell estimate.Cell)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(cell estimate.Cell)

// ObserveCell calls f(cell).
func (f ObserverFunc) ObserveCell(cell estimate.Cell) { f(cell) }
