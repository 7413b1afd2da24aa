package quantity

import "fmt"

// Editor owns the quantity widget state for one product instance.
//
// It keeps two deliberately separate fields: the raw text currently shown
// in the input (which may be empty, negative or garbage mid-edit) and the
// last committed quantity, which is always a valid positive integer.
// Stepping and pricing read only the committed value, so an in-progress
// edit can never leak text into arithmetic.
type Editor struct {
	committed int
	display   string
}

// New creates an editor seeded with starterCount. Shop widgets seed 1,
// cart widgets seed the existing line quantity.
func New(starterCount int) *Editor {
	if starterCount < 1 {
		starterCount = 1
	}
	e := &Editor{committed: starterCount}
	e.syncDisplay()
	return e
}

// Committed returns the last validated quantity.
func (e *Editor) Committed() int { return e.committed }

// Display returns the raw text to render in the input.
func (e *Editor) Display() string { return e.display }

// OnType stores the typed text verbatim. The committed quantity is left
// untouched until blur or submit.
func (e *Editor) OnType(raw string) {
	e.display = raw
}

// OnBlur normalizes whatever was typed and resyncs the input to the
// resulting value, so the field visibly reflects what will be used.
func (e *Editor) OnBlur() {
	e.committed = Normalize(e.display)
	e.syncDisplay()
}

// Increment steps the committed quantity up by one. The display is
// overwritten with the result even if the user had typed something else.
func (e *Editor) Increment() {
	e.committed++
	e.syncDisplay()
}

// Decrement steps the committed quantity down by one, never below 1.
func (e *Editor) Decrement() {
	if e.committed > 1 {
		e.committed--
	}
	e.syncDisplay()
}

// Submit normalizes the display text with the same rules as OnBlur and
// returns the resulting quantity. Submitting without blurring first must
// not behave differently, so both paths share Normalize.
func (e *Editor) Submit() int {
	e.OnBlur()
	return e.committed
}

// DisplayPrice renders unitPrice times the committed quantity with two
// decimals. It never reads the display text.
func (e *Editor) DisplayPrice(unitPrice float64) string {
	return fmt.Sprintf("%.2f", unitPrice*float64(e.committed))
}

func (e *Editor) syncDisplay() {
	e.display = fmt.Sprintf("%d", e.committed)
}
