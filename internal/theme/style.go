package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Variant selects a visual state of a control.
type Variant int

const (
	// Primary is the resting state of the main call to action.
	Primary Variant = iota
	// Hover is Primary under the pointer or keyboard focus.
	Hover
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Primary:
		return "primary"
	case Hover:
		return "hover"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Style is a renderer-independent description of a control's appearance.
type Style struct {
	Background string
	Foreground string
	// PaddingY and PaddingX are CSS lengths.
	PaddingY     string
	PaddingX     string
	BorderRadius string
	Bold         bool
	Cursor       string
	Transition   string
	// HoverBackground is only set on the Primary variant, for renderers
	// that express hover as a pseudo-class rather than a separate state.
	HoverBackground string
}

// ButtonStyle maps a theme and variant to the button appearance. It is pure:
// equal inputs always produce equal styles.
func ButtonStyle(t Theme, v Variant) Style {
	s := Style{
		Background:   t.Colors.Primary,
		Foreground:   t.Colors.OnPrimary,
		PaddingY:     t.Spacing(1),
		PaddingX:     t.Spacing(2.4),
		BorderRadius: "4px",
		Bold:         true,
		Cursor:       "pointer",
		Transition:   "background 0.3s ease",
	}
	switch v {
	case Hover:
		s.Background = t.Colors.PrimaryHover
	default:
		s.HoverBackground = t.Colors.PrimaryHover
	}
	return s
}

// CSS renders the declarations for selector, plus a :hover rule when the
// style carries a hover background.
func (s Style) CSS(selector string) string {
	var b strings.Builder
	b.WriteString(selector + "{")
	decl := func(prop, value string) {
		if value != "" {
			b.WriteString(prop + ":" + value + ";")
		}
	}
	decl("background", s.Background)
	decl("color", s.Foreground)
	if s.PaddingY != "" || s.PaddingX != "" {
		decl("padding", strings.TrimSpace(s.PaddingY+" "+s.PaddingX))
	}
	decl("border", "none")
	decl("border-radius", s.BorderRadius)
	if s.Bold {
		decl("font-weight", "bold")
	}
	decl("cursor", s.Cursor)
	decl("transition", s.Transition)
	b.WriteString("}")
	if s.HoverBackground != "" {
		b.WriteString(selector + ":hover{background:" + s.HoverBackground + ";}")
	}
	return b.String()
}

// Lipgloss renders the style for a terminal. Colors map directly. CSS
// lengths have no cell equivalent, so padding is a fixed three columns.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(s.Bold).
		Padding(0, 3)
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	return st
}
