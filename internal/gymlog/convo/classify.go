package convo

import (
	"regexp"
	"strings"

	"github.com/2beens/gymprogress/internal/gymlog/records"
)

// Menu tokens the transport renders as keyboard buttons. The workflow
// matches on the raw text, so the transport must send them verbatim.
const (
	TokenAddRecord  = "Add record"
	TokenToday      = "Today"
	TokenCustomDate = "Enter another date"
	TokenBack       = "Back"
)

// Shape classifies an inbound message by its form alone, independently of
// any session state.
type Shape string

const (
	ShapeBegin        Shape = "begin"
	ShapeCancel       Shape = "cancel"
	ShapeTodayChoice  Shape = "today_choice"
	ShapeCustomChoice Shape = "custom_date_choice"
	ShapeDate         Shape = "date"
	ShapeExercise     Shape = "exercise"
	ShapeNumber       Shape = "number"
	ShapeUnknown      Shape = "unknown"
)

var (
	dateShapeRe   = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	numberShapeRe = regexp.MustCompile(`^\d+$`)
)

// Classify maps a message text to its shape. Shape is decided before any
// state is consulted: a handler whose shape matches claims the message even
// when the state does not fit, so ambiguous inputs resolve the same way
// every time. Order matters only among shapes that cannot overlap - the
// date pattern and the digit pattern are disjoint, and menu tokens are not
// exercise names.
func Classify(text string) Shape {
	text = strings.TrimSpace(text)
	switch text {
	case TokenAddRecord, "/add":
		return ShapeBegin
	case TokenBack, "/cancel":
		return ShapeCancel
	case TokenToday:
		return ShapeTodayChoice
	case TokenCustomDate:
		return ShapeCustomChoice
	}
	if records.Exercise(text).IsValid() {
		return ShapeExercise
	}
	if dateShapeRe.MatchString(text) {
		return ShapeDate
	}
	if numberShapeRe.MatchString(text) {
		return ShapeNumber
	}
	return ShapeUnknown
}
