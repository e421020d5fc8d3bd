// Package moneyinput provides a Bubble Tea input component for currency
// amounts. It wraps the Bubbles text input and keeps the text and the numeric
// value in lockstep: keystrokes are reduced to digits and at most one decimal
// point, the integer digits are regrouped with commas as they are typed, and
// the settled value is clamped to a configurable range before it is reported.
//
// The display has two sources of truth. While the user is typing, it is
// derived from the typed text itself, so out-of-range digits stay visible
// until the edit ends. On focus, on blur, and on programmatic value changes
// it is derived from the settled value through the Formatter, which by
// default renders with locale-aware digit grouping.
//
// An empty field means "no amount yet": it settles the value 0 but keeps the
// display empty so the placeholder shows, which is not the same thing as an
// explicitly typed zero.
package moneyinput

import (
	"math"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/VarunSharma3520/moneyinput/internal/money"
)

// DefaultMax is the default upper bound for reported values: the largest
// integer a float64 holds exactly.
const DefaultMax = float64(1<<53 - 1)

// DefaultPlaceholder is shown when the display is empty.
const DefaultPlaceholder = "Enter amount"

// Blink is the command that starts cursor blinking. Return it from your
// model's Init.
var Blink tea.Cmd = textinput.Blink

// FocusState tells the two presentation modes of the input apart.
type FocusState int

const (
	// Unfocused presents the settled value, or nothing at all when the
	// value is zero and nothing has been typed.
	Unfocused FocusState = iota
	// Focused presents editable text; a zero value shows just the currency
	// sign so typing continues after it.
	Focused
)

// cursorToEndMsg asks one specific input to move its cursor past the last
// character. It is emitted by the command scheduled on focus, so the move
// applies after the display rewritten during that update has been rendered.
type cursorToEndMsg struct{ id int }

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model holds the state of a money input. Create one with New, then adjust
// the exported fields directly, the same way the Bubbles inputs are
// configured.
type Model struct {
	// OnChange receives every settled value: clamped into
	// [MinValue, MaxValue], truncated to whole units unless ShowCents is
	// set, always finite. It fires only when the value actually moved.
	// Leave it nil to poll Value instead.
	OnChange func(value float64)
	// OnFocus and OnBlur run after the input has finished its own focus or
	// blur bookkeeping, on every transition.
	OnFocus func()
	OnBlur  func()

	// MinValue and MaxValue bound every reported value.
	MinValue float64
	MaxValue float64

	// Currency is the ISO 4217 code whose sign prefixes the display.
	Currency string
	// ShowCents keeps a two-digit fraction; off, amounts are whole units
	// and anything typed after a decimal point is dropped.
	ShowCents bool
	// ShowSymbol prefixes the display with the currency sign.
	ShowSymbol bool

	// Formatter renders settled values on focus, blur, and SetValue.
	// Replace it to control the authoritative rendering, or to fake it out
	// in tests.
	Formatter Formatter

	// Presentation fields, forwarded to the embedded text input.
	Placeholder      string
	Prompt           string
	CharLimit        int
	Width            int
	PromptStyle      lipgloss.Style
	TextStyle        lipgloss.Style
	PlaceholderStyle lipgloss.Style

	input textinput.Model
	value float64
	state FocusState
	id    int
}

// New creates a money input with the package defaults: range [0, DefaultMax],
// USD with the sign shown, whole units, English grouping.
func New() Model {
	ti := textinput.New()
	return Model{
		MinValue:         0,
		MaxValue:         DefaultMax,
		Currency:         "USD",
		ShowSymbol:       true,
		Formatter:        NewLocaleFormatter(language.English),
		Placeholder:      DefaultPlaceholder,
		Prompt:           ti.Prompt,
		PromptStyle:      ti.PromptStyle,
		TextStyle:        ti.TextStyle,
		PlaceholderStyle: ti.PlaceholderStyle,
		input:            ti,
		id:               nextID(),
	}
}

// Value returns the last settled value.
func (m Model) Value() float64 {
	return m.value
}

// Display returns the text currently shown in the input.
func (m Model) Display() string {
	return m.input.Value()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.state == Focused
}

// State returns the current focus state.
func (m Model) State() FocusState {
	return m.state
}

// Position returns the cursor position within the displayed text.
func (m Model) Position() int {
	return m.input.Position()
}

// SetCursor moves the cursor to pos within the displayed text.
func (m *Model) SetCursor(pos int) {
	m.input.SetCursor(pos)
}

// CursorEnd moves the cursor past the last character.
func (m *Model) CursorEnd() {
	m.input.CursorEnd()
}

// SetValue replaces the settled value from the outside. The value is
// normalized first (clamped into range, truncated to the fraction width,
// non-finite input collapsed to the nearest bound) and the display is
// rewritten from it, discarding any partially typed text. OnChange does not
// fire: the caller is the one changing the value.
func (m *Model) SetValue(v float64) {
	m.value = m.normalize(v)
	m.syncInput()
	m.input.SetValue(displayFor(m.value, "", m.state, m.Formatter, m.opts()))
	m.input.CursorEnd()
}

// Focus puts the input into the focused state and rewrites the display for
// editing: a zero value presents as just the currency sign (or nothing when
// the sign is off), anything else as the full rendering of the settled
// value. The returned command starts cursor blinking and schedules the
// cursor move to the end of the text; the move is delivered as a message of
// its own so it lands after this update's render. OnFocus runs last, on
// every call.
func (m *Model) Focus() tea.Cmd {
	m.state = Focused
	m.syncInput()
	m.input.SetValue(displayFor(m.value, m.input.Value(), Focused, m.Formatter, m.opts()))
	cmd := m.input.Focus()

	id := m.id
	toEnd := func() tea.Msg { return cursorToEndMsg{id: id} }

	if m.OnFocus != nil {
		m.OnFocus()
	}
	return tea.Batch(cmd, toEnd)
}

// Blur takes focus away and settles the display: a zero value with no digits
// on screen collapses back to the empty string so the placeholder shows,
// anything else is re-rendered from the settled value, replacing whatever
// was typed. Digitless text (a bare sign, a lone decimal point) counts as
// nothing typed and collapses rather than rendering a zero. OnBlur runs
// last, on every call.
func (m *Model) Blur() {
	m.state = Unfocused
	m.syncInput()
	m.input.SetValue(displayFor(m.value, m.input.Value(), Unfocused, m.Formatter, m.opts()))
	m.input.Blur()

	if m.OnBlur != nil {
		m.OnBlur()
	}
}

// Update handles Bubble Tea messages. Input flows through the embedded text
// input first; whenever that changes the text, the text is sanitized and
// regrouped in place and the numeric value is settled from it: an empty
// field settles 0, an unparsable fragment (a lone decimal point) keeps the
// previous value, anything else is clamped into range and truncated to the
// fraction width.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if toEnd, ok := msg.(cursorToEndMsg); ok {
		if toEnd.id == m.id {
			m.input.CursorEnd()
		}
		return m, nil
	}

	m.syncInput()
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.retext(after)
	}
	return m, cmd
}

// View renders the input.
func (m Model) View() string {
	m.syncInput()
	return m.input.View()
}

// retext runs the typing path: canonicalize the text, rewrite the display
// from it, and settle the value.
func (m *Model) retext(raw string) {
	canonical := money.Sanitize(raw, m.ShowCents)
	m.input.SetValue(m.typedDisplay(canonical))
	m.input.CursorEnd()

	if canonical == "" {
		m.settle(0)
		return
	}
	d, err := money.Parse(canonical)
	if err != nil {
		// Nothing numeric yet; keep the previous settled value.
		return
	}
	d = money.Clamp(d, decimal.NewFromFloat(m.MinValue), decimal.NewFromFloat(m.MaxValue))
	d = money.Truncate(d, m.ShowCents)
	m.settle(d.InexactFloat64())
}

// typedDisplay formats canonical text the way it reads mid-edit: integer
// digits grouped in threes, the fraction exactly as typed, the sign in
// front. The settled value plays no part here, so text that clamping will
// pull back stays visible until the edit ends.
func (m Model) typedDisplay(canonical string) string {
	if canonical == "" {
		return ""
	}
	intPart, frac, hasDot := strings.Cut(canonical, ".")
	out := money.GroupThousands(intPart)
	if hasDot {
		out += "." + frac
	}
	if m.ShowSymbol {
		out = Symbol(m.Currency) + out
	}
	return out
}

// settle records v and reports it when it moved.
func (m *Model) settle(v float64) {
	if v == m.value {
		return
	}
	m.value = v
	if m.OnChange != nil {
		m.OnChange(v)
	}
}

// normalize forces v into the reportable set: finite, in range, and on the
// fraction grid (whole units unless ShowCents is set).
func (m Model) normalize(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return m.MinValue
	case math.IsInf(v, 1):
		return m.MaxValue
	case math.IsInf(v, -1):
		return m.MinValue
	}
	d := money.Clamp(decimal.NewFromFloat(v), decimal.NewFromFloat(m.MinValue), decimal.NewFromFloat(m.MaxValue))
	d = money.Truncate(d, m.ShowCents)
	return d.InexactFloat64()
}

// syncInput pushes the presentation fields down into the embedded text
// input. Called before the input processes a message and before it renders,
// so the exported fields can be assigned at any time.
func (m *Model) syncInput() {
	m.input.Placeholder = m.Placeholder
	m.input.Prompt = m.Prompt
	m.input.CharLimit = m.CharLimit
	m.input.Width = m.Width
	m.input.PromptStyle = m.PromptStyle
	m.input.TextStyle = m.TextStyle
	m.input.PlaceholderStyle = m.PlaceholderStyle
}

func (m Model) opts() FormatOptions {
	return FormatOptions{
		Currency:   m.Currency,
		ShowCents:  m.ShowCents,
		ShowSymbol: m.ShowSymbol,
	}
}

// displayFor is the one place the settled-value display is decided. Focused
// with a zero value presents the bare currency sign regardless of what was
// on screen; unfocused with a zero value and no typed digits presents
// nothing, so the placeholder shows; everything else is the formatter's
// rendering of the value.
func displayFor(value float64, raw string, state FocusState, f Formatter, opts FormatOptions) string {
	if value == 0 {
		if state == Focused {
			if opts.ShowSymbol {
				return Symbol(opts.Currency)
			}
			return ""
		}
		if money.Digits(raw) == "" {
			return ""
		}
	}
	return f.Format(value, opts)
}
