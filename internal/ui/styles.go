// Package ui provides terminal rendering for cards and odds.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"unotrack/internal/card"
)

// Lipgloss styles, one per card color plus wild.
var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	wildStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)

	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	FaintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render
)

var colorStyles = map[card.Color]lipgloss.Style{
	card.Red:    redStyle,
	card.Yellow: yellowStyle,
	card.Green:  greenStyle,
	card.Blue:   blueStyle,
}

// RenderCard returns the card's name styled in its color.
func RenderCard(c card.Card) string {
	if col, ok := c.Color(); ok {
		return colorStyles[col].Render(c.String())
	}
	return wildStyle.Render(c.String())
}

// RenderRequirement returns the requirement styled by its color, if any.
func RenderRequirement(r card.Requirement) string {
	if r.HasColor {
		return colorStyles[r.Color].Render(r.String())
	}
	return wildStyle.Render(r.String())
}

// RenderOdds formats a probability estimate as a percentage. Estimates above
// 1 (the additive color+number upper bound) are capped for display only.
func RenderOdds(p float64) string {
	capped := p
	if capped > 1 {
		capped = 1
	}
	s := fmt.Sprintf("%5.1f%%", capped*100)
	if p == 0 {
		return FaintStyle(s)
	}
	return s
}
