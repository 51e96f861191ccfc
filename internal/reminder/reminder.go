// Package reminder decides which users get notified about due tasks.
//
// There are two evaluation modes sharing the same due-task computation:
//
//   - Interactive (login, list-tasks, send-reminders): dispatch is
//     attempted every time. No dedup gate is consulted and no timestamp
//     is written, so repeated triggers may re-send.
//
//   - Scheduled (the taskpro-reminders batch job): each user is skipped
//     when a reminder was already dispatched today, and a successful
//     dispatch stamps last_reminder_date so the next run skips them.
//
// Only the scheduled path reads or writes last_reminder_date.
package reminder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jyang234/taskpro/internal/email"
	"github.com/jyang234/taskpro/internal/model"
)

// ErrDeliveryFailed wraps dispatcher errors. It is reported as a warning
// and never aborts the operation that triggered the evaluation.
var ErrDeliveryFailed = errors.New("reminder delivery failed")

const (
	interactiveSubject = "Task Due Reminder"
	scheduledSubject   = "Daily Task Reminder"
)

// Result describes the outcome of one user's evaluation.
type Result struct {
	Username   string
	DueTasks   []model.Task
	Dispatched bool
	// Warning carries a delivery failure, downgraded so the calling
	// operation still succeeds.
	Warning error
	// SkipReason is set in scheduled mode when the user was not
	// considered for dispatch (no email, reminders disabled, or
	// already reminded today).
	SkipReason string
}

// Evaluator computes due-task reminders against a document.
type Evaluator struct {
	dispatcher email.Dispatcher
	now        func() time.Time
}

// New creates an evaluator using the given dispatcher for delivery.
func New(dispatcher email.Dispatcher) *Evaluator {
	return &Evaluator{
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// WithClock overrides the time source. Tests pin "today" with it.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Today returns the evaluator's current calendar date.
func (e *Evaluator) Today() model.Date {
	return model.DateOf(e.now())
}

// DueTasks returns the user's tasks that are due or overdue: not
// completed and due on or before today. Future-dated tasks never appear.
func DueTasks(doc *model.Document, username string, today model.Date) []model.Task {
	var due []model.Task
	for _, t := range doc.Tasks {
		if t.Owner == username && t.DueBy(today) {
			due = append(due, t)
		}
	}
	return due
}

// RunInteractive evaluates reminders for one user on login or listing.
// Dispatch is attempted whenever the user has an email on file and has
// reminders enabled; last_reminder_date is neither checked nor written.
func (e *Evaluator) RunInteractive(doc *model.Document, user *model.User) Result {
	res := Result{Username: user.Username}
	res.DueTasks = DueTasks(doc, user.Username, e.Today())
	if len(res.DueTasks) == 0 {
		return res
	}

	if user.Email == "" || !user.EmailRemindersEnabled {
		return res
	}

	if err := e.dispatcher.Send(user.Email, interactiveSubject, renderBody(res.DueTasks)); err != nil {
		res.Warning = fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		return res
	}
	res.Dispatched = true
	return res
}

// RunScheduled sweeps every user in the document, dispatching at most one
// reminder per user per day. A successful dispatch stamps the user's
// last_reminder_date in place; the caller persists the document when the
// returned changed flag is true. A failed dispatch leaves the stamp
// untouched so the next run retries.
func (e *Evaluator) RunScheduled(doc *model.Document) (changed bool, results []Result) {
	today := e.Today()

	for i := range doc.Users {
		user := &doc.Users[i]
		res := Result{Username: user.Username}

		switch {
		case user.Email == "":
			res.SkipReason = "no email on file"
		case !user.EmailRemindersEnabled:
			res.SkipReason = "email reminders disabled"
		case user.LastReminderDate.Equal(today):
			res.SkipReason = "reminder already sent today"
		}
		if res.SkipReason != "" {
			results = append(results, res)
			continue
		}

		res.DueTasks = DueTasks(doc, user.Username, today)
		if len(res.DueTasks) == 0 {
			results = append(results, res)
			continue
		}

		if err := e.dispatcher.Send(user.Email, scheduledSubject, renderBody(res.DueTasks)); err != nil {
			res.Warning = fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
			results = append(results, res)
			continue
		}

		res.Dispatched = true
		user.LastReminderDate = today
		changed = true
		results = append(results, res)
	}

	return changed, results
}

// renderBody formats the notification body: one line per due task.
func renderBody(due []model.Task) string {
	lines := make([]string, len(due))
	for i, t := range due {
		lines[i] = fmt.Sprintf("%s — Due: %s", t.Title, t.DueDate)
	}
	return strings.Join(lines, "\n")
}
