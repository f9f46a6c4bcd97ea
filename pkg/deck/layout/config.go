package layout

import "fmt"

// Axis names the physical edge a printed sheet is flipped along when the
// back sides are printed.
type Axis string

// Supported flip axes.
const (
	// AxisLongEdge flips the sheet top-to-bottom (horizontal binding).
	AxisLongEdge Axis = "long-edge"

	// AxisShortEdge flips the sheet left-to-right (vertical binding).
	AxisShortEdge Axis = "short-edge"
)

// Config constrains all page geometry. It is always passed explicitly as a
// value — never read from ambient state — so every plan is independently
// reproducible.
type Config struct {
	Rows     int  `json:"rows" toml:"rows"`
	Cols     int  `json:"cols" toml:"cols"`
	FlipAxis Axis `json:"flip_axis" toml:"flip_axis"`
}

// Capacity returns the number of cards per page.
func (c Config) Capacity() int { return c.Rows * c.Cols }

// Validate checks the grid dimensions and flip axis.
// It returns a *InvalidConfigError describing the first violation found.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return &InvalidConfigError{Field: "rows", Value: fmt.Sprint(c.Rows)}
	}
	if c.Cols < 1 {
		return &InvalidConfigError{Field: "cols", Value: fmt.Sprint(c.Cols)}
	}
	if c.FlipAxis != AxisLongEdge && c.FlipAxis != AxisShortEdge {
		return &InvalidConfigError{Field: "flip_axis", Value: string(c.FlipAxis)}
	}
	return nil
}

// InvalidConfigError reports a layout configuration that cannot produce
// a printable deck. Field names the offending field, Value its rejected value.
type InvalidConfigError struct {
	Field string
	Value string
}

// Error returns a description naming the invalid field and its value.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid layout config: %s=%q", e.Field, e.Value)
}
