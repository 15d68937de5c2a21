package convo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymprogress/internal/gymlog/records"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Workflow errors. Each is resolved into a user-facing Outcome at the point
// of detection; callers branch with errors.Is when they need the kind.
var (
	// ErrInvalidContext - the message's shape was claimed by a step the
	// user is not currently in; the session is left untouched.
	ErrInvalidContext = errors.New("invalid context for this input")
	// ErrParse - malformed date text; the user is re-prompted, same step.
	ErrParse = errors.New("malformed input")
	// ErrFutureDate - custom date later than today; re-prompt, same step.
	ErrFutureDate = errors.New("date is in the future")
	// ErrValidation - weight outside the accepted range; re-prompt, same step.
	ErrValidation = errors.New("invalid weight")
	// ErrStorage - persisting the finished draft failed; the session is
	// cleared and a generic failure is surfaced.
	ErrStorage = errors.New("storage failure")
)

// CustomDateLayout is the format users type dates in.
const CustomDateLayout = "02.01.2006"

// PromptKind tells the transport which keyboard to render next to the
// response text. The transport owns the actual menus.
type PromptKind string

const (
	PromptMainMenu   PromptKind = "main_menu"
	PromptDateChoice PromptKind = "date_choice"
	PromptCustomDate PromptKind = "custom_date"
	PromptExercise   PromptKind = "exercise"
	PromptWeight     PromptKind = "weight"
)

// Outcome is what goes back to the transport: response text, the next
// keyboard to show, and the created record when a flow just completed.
type Outcome struct {
	Text   string          `json:"text"`
	Prompt PromptKind      `json:"prompt"`
	Record *records.Record `json:"record,omitempty"`
}

type insertRepo interface {
	Insert(ctx context.Context, rec records.Record) (*records.Record, error)
}

// Workflow drives the per-user add-record conversation over an explicit
// session store. All state transitions for one user run atomically inside
// the store; repository I/O happens outside the store lock so a slow insert
// never stalls other users' conversations.
type Workflow struct {
	store *SessionStore
	repo  insertRepo
	now   func() time.Time
}

func NewWorkflow(store *SessionStore, repo insertRepo) *Workflow {
	return &Workflow{
		store: store,
		repo:  repo,
		now:   time.Now,
	}
}

// HandleMessage classifies the inbound text by shape and routes it to the
// matching step. The shape decides which handler claims the message; the
// handler then checks the session state itself and answers with an
// invalid-context guidance when it does not fit. A shape-claimed message
// never falls through to another handler.
func (w *Workflow) HandleMessage(ctx context.Context, userID int64, text string) (Outcome, error) {
	switch Classify(text) {
	case ShapeBegin:
		return w.Begin(userID), nil
	case ShapeCancel:
		return w.Cancel(userID), nil
	case ShapeTodayChoice:
		return w.ChooseToday(userID)
	case ShapeCustomChoice:
		return w.ChooseCustomDate(userID)
	case ShapeDate:
		return w.SubmitCustomDate(userID, text)
	case ShapeExercise:
		return w.ChooseExercise(userID, records.Exercise(text))
	case ShapeNumber:
		return w.SubmitWeight(ctx, userID, text)
	default:
		return Outcome{
			Text:   "I did not get that. Use the menu below or /add to log a record.",
			Prompt: PromptMainMenu,
		}, nil
	}
}

// Begin starts (or restarts) the add-record conversation. Unconditional:
// a session already in progress is overwritten and its draft discarded.
func (w *Workflow) Begin(userID int64) Outcome {
	w.store.Create(userID)
	return Outcome{
		Text:   "Pick the training date:",
		Prompt: PromptDateChoice,
	}
}

// Cancel drops the user's session and any partial draft. A no-op when the
// user is already idle, so it is safe from every state.
func (w *Workflow) Cancel(userID int64) Outcome {
	w.store.Remove(userID)
	return Outcome{
		Text:   "Cancelled. Back to the main menu.",
		Prompt: PromptMainMenu,
	}
}

// ChooseToday fills the draft date with the current day.
func (w *Workflow) ChooseToday(userID int64) (Outcome, error) {
	today := dateOnly(w.now())
	applied := w.store.update(userID, func(s *Session) bool {
		if s.Step != StepAwaitingDateChoice {
			return false
		}
		s.Draft.Date = today
		s.Draft.HasDate = true
		s.Step = StepAwaitingExercise
		return true
	})
	if !applied {
		return invalidContextOutcome(), ErrInvalidContext
	}
	return Outcome{
		Text:   fmt.Sprintf("Date %s saved. Now choose the exercise:", today.Format(CustomDateLayout)),
		Prompt: PromptExercise,
	}, nil
}

// ChooseCustomDate switches the conversation to free-text date entry.
func (w *Workflow) ChooseCustomDate(userID int64) (Outcome, error) {
	applied := w.store.update(userID, func(s *Session) bool {
		if s.Step != StepAwaitingDateChoice {
			return false
		}
		s.Step = StepAwaitingCustomDate
		return true
	})
	if !applied {
		return invalidContextOutcome(), ErrInvalidContext
	}
	return Outcome{
		Text:   "Enter the date as DD.MM.YYYY (e.g. 15.05.2023):",
		Prompt: PromptCustomDate,
	}, nil
}

// SubmitCustomDate parses a typed date. Malformed text and future dates
// keep the session in the custom-date step so the user can retry.
func (w *Workflow) SubmitCustomDate(userID int64, text string) (Outcome, error) {
	sess, ok := w.store.Get(userID)
	if !ok || sess.Step != StepAwaitingCustomDate {
		return invalidContextOutcome(), ErrInvalidContext
	}

	date, err := time.ParseInLocation(CustomDateLayout, text, time.UTC)
	if err != nil {
		return Outcome{
			Text:   "That is not a valid date. Enter it as DD.MM.YYYY:",
			Prompt: PromptCustomDate,
		}, ErrParse
	}
	if date.After(dateOnly(w.now())) {
		return Outcome{
			Text:   "The date cannot be in the future. Enter a valid date:",
			Prompt: PromptCustomDate,
		}, ErrFutureDate
	}

	applied := w.store.update(userID, func(s *Session) bool {
		if s.Step != StepAwaitingCustomDate {
			return false
		}
		s.Draft.Date = date
		s.Draft.HasDate = true
		s.Step = StepAwaitingExercise
		return true
	})
	if !applied {
		return invalidContextOutcome(), ErrInvalidContext
	}
	return Outcome{
		Text:   fmt.Sprintf("Date %s saved. Now choose the exercise:", text),
		Prompt: PromptExercise,
	}, nil
}

// ChooseExercise fills the draft exercise from the closed set.
func (w *Workflow) ChooseExercise(userID int64, exercise records.Exercise) (Outcome, error) {
	if !exercise.IsValid() {
		return invalidContextOutcome(), ErrInvalidContext
	}
	applied := w.store.update(userID, func(s *Session) bool {
		if s.Step != StepAwaitingExercise {
			return false
		}
		s.Draft.Exercise = exercise
		s.Step = StepAwaitingWeight
		return true
	})
	if !applied {
		return invalidContextOutcome(), ErrInvalidContext
	}
	return Outcome{
		Text:   fmt.Sprintf("%s it is. Now enter the weight in kg:", exercise),
		Prompt: PromptWeight,
	}, nil
}

// SubmitWeight completes the flow: validates the weight, persists the
// record and destroys the session. Validation failures keep the session in
// the weight step with unlimited retries; a storage failure clears the
// session and surfaces a generic error.
func (w *Workflow) SubmitWeight(ctx context.Context, userID int64, text string) (_ Outcome, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workflow.gymlog.submitweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	sess, ok := w.store.Get(userID)
	if !ok || sess.Step != StepAwaitingWeight {
		return invalidContextOutcome(), ErrInvalidContext
	}

	weight, parseErr := strconv.Atoi(text)
	if parseErr != nil || !records.WeightValid(weight) {
		return Outcome{
			Text:   fmt.Sprintf("Enter a valid weight (%d-%d kg)", records.MinWeight, records.MaxWeight),
			Prompt: PromptWeight,
		}, ErrValidation
	}

	rec, insertErr := w.repo.Insert(ctx, records.Record{
		UserID:   userID,
		Exercise: sess.Draft.Exercise,
		Weight:   weight,
		Date:     sess.Draft.Date,
	})
	if insertErr != nil {
		log.Errorf("failed to insert record for user %d: %s", userID, insertErr)
		w.store.Remove(userID)
		return Outcome{
			Text:   "Something went wrong while saving, please try again with /add.",
			Prompt: PromptMainMenu,
		}, ErrStorage
	}

	w.store.Remove(userID)
	span.SetAttributes(attribute.Int("record.id", rec.ID))
	return Outcome{
		Text: fmt.Sprintf(
			"%s: %d kg on %s saved!",
			rec.Exercise, rec.Weight, rec.Date.Format(CustomDateLayout),
		),
		Prompt: PromptMainMenu,
		Record: rec,
	}, nil
}

func invalidContextOutcome() Outcome {
	return Outcome{
		Text:   "Please start with /add first.",
		Prompt: PromptMainMenu,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
