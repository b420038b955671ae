// Package card models the UNO card population: card values, the
// color/number/action requirement they impose, and a counted multiset over
// the fixed 108-card composition.
package card

import "fmt"

// Color 定义牌的颜色 (card color)
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
)

// NumColors is the number of distinct colors in the deck.
const NumColors = 4

// colorNames 颜色名称映射表
var colorNames = map[Color]string{
	Red:    "Red",
	Yellow: "Yellow",
	Green:  "Green",
	Blue:   "Blue",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Action 定义功能牌类型 (action kind)
type Action int

const (
	Skip Action = iota
	DrawTwo
	DrawFour
	Reverse
)

var actionNames = map[Action]string{
	Skip:     "Skip",
	DrawTwo:  "Draw Two",
	DrawFour: "Draw Four",
	Reverse:  "Reverse",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Kind tags the card variant.
type Kind int

const (
	KindWild Kind = iota
	KindWildFour
	KindNumbered
	KindAction
)

// Card 定义一张牌. A Card is an immutable value built with one of the
// constructors below; the zero value is the plain wild card. Cards compare
// and hash by value, so they can key maps directly.
type Card struct {
	kind   Kind
	color  Color
	number int
	action Action
}

// Wild returns the plain wild card.
func Wild() Card {
	return Card{kind: KindWild}
}

// WildFour returns the wild draw-four card.
func WildFour() Card {
	return Card{kind: KindWildFour, action: DrawFour}
}

// Numbered returns the numbered card of the given color. n must be in 0..9;
// the standard composition never produces anything else.
func Numbered(c Color, n int) Card {
	return Card{kind: KindNumbered, color: c, number: n}
}

// ActionCard returns the colored action card. The standard deck only carries
// Skip, DrawTwo and Reverse in colors; DrawFour exists only as WildFour.
func ActionCard(c Color, a Action) Card {
	return Card{kind: KindAction, color: c, action: a}
}

// Kind returns the variant tag.
func (c Card) Kind() Kind {
	return c.kind
}

// IsWild reports whether the card carries neither color nor number.
// The wild draw-four still counts as wild by this rule.
func (c Card) IsWild() bool {
	return c.kind == KindWild || c.kind == KindWildFour
}

// Color returns the card's color, if it has one.
func (c Card) Color() (Color, bool) {
	if c.kind == KindNumbered || c.kind == KindAction {
		return c.color, true
	}
	return 0, false
}

// Number returns the card's number, if it has one.
func (c Card) Number() (int, bool) {
	if c.kind == KindNumbered {
		return c.number, true
	}
	return 0, false
}

// Action returns the card's action, if it has one.
func (c Card) Action() (Action, bool) {
	switch c.kind {
	case KindWildFour, KindAction:
		return c.action, true
	default:
		return 0, false
	}
}

// Requirement projects the card onto its optional attributes.
func (c Card) Requirement() Requirement {
	var r Requirement
	if col, ok := c.Color(); ok {
		r.HasColor, r.Color = true, col
	}
	if n, ok := c.Number(); ok {
		r.HasNumber, r.Number = true, n
	}
	if a, ok := c.Action(); ok {
		r.HasAction, r.Action = true, a
	}
	return r
}

// Matches reports whether either card could legally answer the other:
// either is wild, or they share a color, a number, or an action.
// Matching is symmetric and reflexive.
func (c Card) Matches(o Card) bool {
	return c.Requirement().Matches(o.Requirement())
}

func (c Card) String() string {
	switch c.kind {
	case KindWild:
		return "Wild"
	case KindWildFour:
		return "Wild Draw Four"
	case KindNumbered:
		return fmt.Sprintf("%s %d", c.color, c.number)
	case KindAction:
		return fmt.Sprintf("%s %s", c.color, c.action)
	}
	return fmt.Sprintf("Card(%d)", int(c.kind))
}
