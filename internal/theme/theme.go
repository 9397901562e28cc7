// Package theme holds the read-only color and spacing configuration shared
// by the browser and terminal greeting consumers, and the pure functions that
// turn it into control styles.
//
// A Theme is a plain value. Renderers receive it as an argument; there is no
// package-level current theme.
package theme

import (
	"strconv"
	"strings"
)

// Colors are CSS hex colors.
type Colors struct {
	Primary      string `json:"primary"`
	PrimaryHover string `json:"primaryHover"`
	Background   string `json:"background"`
	Text         string `json:"text"`
	OnPrimary    string `json:"onPrimary"`
	Danger       string `json:"danger"`
}

// Theme describes the colors and spacing scale used when rendering.
type Theme struct {
	Colors Colors `json:"colors"`
	// SpacingUnit is the rem size of one spacing step.
	SpacingUnit float64 `json:"spacingUnit"`
	// FontFamily is applied to the page body.
	FontFamily string `json:"fontFamily"`
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Colors: Colors{
			Primary:      "#0070f3",
			PrimaryHover: "#0059c1",
			Background:   "#f5f5f5",
			Text:         "#222",
			OnPrimary:    "#ffffff",
			Danger:       "#d93025",
		},
		SpacingUnit: 0.5,
		FontFamily:  "'Segoe UI', sans-serif",
	}
}

// Spacing returns factor spacing steps as a CSS rem length, e.g. "1rem" for 2.
func (t Theme) Spacing(factor float64) string {
	return formatRem(t.SpacingUnit * factor)
}

func formatRem(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

// PageCSS returns the global page style: body margin, font and background.
func (t Theme) PageCSS() string {
	var b strings.Builder
	b.WriteString("body{margin:0;")
	b.WriteString("font-family:" + t.FontFamily + ";")
	b.WriteString("background-color:" + t.Colors.Background + ";")
	b.WriteString("color:" + t.Colors.Text + ";}")
	return b.String()
}
