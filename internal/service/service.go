// Package service implements the task service, the core controller that
// owns the in-memory document for one invocation. It performs all CRUD
// and ownership checks, restores the session at construction, and
// persists the full document after every state-changing operation.
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jyang234/taskpro/internal/model"
	"github.com/jyang234/taskpro/internal/reminder"
	"github.com/jyang234/taskpro/internal/session"
	"github.com/jyang234/taskpro/internal/store"
)

var (
	// ErrUnauthenticated means the operation needs a logged-in user.
	ErrUnauthenticated = errors.New("not logged in: run 'taskpro login' first")
	// ErrNotFound means no matching task exists. For update it also
	// covers tasks owned by someone else, so callers cannot probe for
	// other users' task ids.
	ErrNotFound = errors.New("task not found")
)

// Filter selects tasks by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// ParseFilter validates a filter string from the CLI.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterCompleted, FilterPending:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("invalid filter %q: must be all, completed, or pending", s)
	}
}

// Summary is the three-way count over a task listing.
type Summary struct {
	Total     int
	Completed int
	Pending   int
}

// Summarize counts the given tasks by completion status.
func Summarize(tasks []model.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// Service holds the document and current user for one invocation.
type Service struct {
	store     store.Store
	sessions  *session.Store
	evaluator *reminder.Evaluator
	doc       *model.Document
	current   *model.User
}

// New loads the document and restores the session. A session that names a
// username no longer present in the document leaves the service with no
// current user; that is a recoverable inconsistency, not an error.
func New(st store.Store, sessions *session.Store, evaluator *reminder.Evaluator) (*Service, error) {
	doc, err := st.Load()
	if err != nil {
		return nil, err
	}

	svc := &Service{
		store:     st,
		sessions:  sessions,
		evaluator: evaluator,
		doc:       doc,
	}

	username, err := sessions.Load()
	if err != nil {
		return nil, err
	}
	if username != "" {
		svc.current = doc.FindUser(username)
	}
	return svc, nil
}

// CurrentUser returns the logged-in user, or nil.
func (s *Service) CurrentUser() *model.User {
	return s.current
}

// UserNeedsEmail reports whether logging in as username would leave the
// account without an email on file. The CLI uses it to decide whether to
// prompt.
func (s *Service) UserNeedsEmail(username string) bool {
	u := s.doc.FindUser(username)
	return u == nil || u.Email == ""
}

// Login makes username the current user, creating the account on first
// login. A supplied email is stored only when the user has none on file;
// later logins with a different email do not overwrite it. The session is
// updated in both branches, and reminder evaluation runs as a side
// effect.
func (s *Service) Login(username, email string) (reminder.Result, error) {
	user := s.doc.FindUser(username)
	if user != nil {
		if user.Email == "" && email != "" {
			user.Email = email
			if err := s.store.Save(s.doc); err != nil {
				return reminder.Result{}, err
			}
		}
	} else {
		user = s.doc.AddUser(model.NewUser(username, email))
		if err := s.store.Save(s.doc); err != nil {
			return reminder.Result{}, err
		}
	}
	s.current = user

	if err := s.sessions.Save(username); err != nil {
		return reminder.Result{}, err
	}

	return s.evaluator.RunInteractive(s.doc, s.current), nil
}

// Logout clears the current user and the session, returning the username
// that was logged out. Logging out with no session is a no-op and returns
// "".
func (s *Service) Logout() (string, error) {
	if s.current == nil {
		return "", nil
	}
	username := s.current.Username
	s.current = nil
	if err := s.sessions.Clear(); err != nil {
		return "", err
	}
	return username, nil
}

// AddTask creates a task owned by the current user and returns its id.
func (s *Service) AddTask(title, description, due string) (string, error) {
	if s.current == nil {
		return "", ErrUnauthenticated
	}

	task, err := model.NewTask(title, description, due)
	if err != nil {
		return "", err
	}
	task.ID = uuid.New().String()
	task.Owner = s.current.Username

	s.doc.Tasks = append(s.doc.Tasks, task)
	if err := s.store.Save(s.doc); err != nil {
		return "", err
	}
	return task.ID, nil
}

// UpdateTask changes the title, description, or due date of a task owned
// by the current user. Empty fields are left unchanged. A task owned by
// another user is reported as not found.
func (s *Service) UpdateTask(id, title, description, due string) error {
	if s.current == nil {
		return ErrUnauthenticated
	}

	var task *model.Task
	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id && s.doc.Tasks[i].Owner == s.current.Username {
			task = &s.doc.Tasks[i]
			break
		}
	}
	if task == nil {
		return ErrNotFound
	}

	// Validate the new due date before touching the task.
	var dueDate model.Date
	if due != "" {
		parsed, err := model.ParseDate(due)
		if err != nil {
			return err
		}
		dueDate = parsed
	}

	if title != "" {
		task.Title = title
	}
	if description != "" {
		task.Description = description
	}
	if due != "" {
		task.DueDate = dueDate
	}

	return s.store.Save(s.doc)
}

// CompleteTask marks the task with the given id as completed, regardless
// of who owns it or whether anyone is logged in. Completing an already
// completed task leaves it completed.
func (s *Service) CompleteTask(id string) (model.Task, error) {
	task := s.doc.FindTask(id)
	if task == nil {
		return model.Task{}, ErrNotFound
	}
	task.Complete()
	if err := s.store.Save(s.doc); err != nil {
		return model.Task{}, err
	}
	return *task, nil
}

// DeleteTask removes the first task with the given id, regardless of
// ownership, and returns the removed task.
func (s *Service) DeleteTask(id string) (model.Task, error) {
	removed, ok := s.doc.RemoveTask(id)
	if !ok {
		return model.Task{}, ErrNotFound
	}
	if err := s.store.Save(s.doc); err != nil {
		return model.Task{}, err
	}
	return removed, nil
}

// ListTasks returns tasks matching the filter, scoped to the current user
// when one is logged in and to the whole document otherwise. Reminder
// evaluation runs as a side effect for the current user. The listing
// itself is a pure read; nothing is persisted.
func (s *Service) ListTasks(filter Filter) ([]model.Task, reminder.Result, error) {
	tasks := s.doc.Tasks
	if s.current != nil {
		tasks = s.doc.TasksOwnedBy(s.current.Username)
	}

	var filtered []model.Task
	for _, t := range tasks {
		switch filter {
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterPending:
			if t.Completed {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	var res reminder.Result
	if s.current != nil {
		res = s.evaluator.RunInteractive(s.doc, s.current)
	}
	return filtered, res, nil
}

// ToggleEmailReminders flips the current user's email reminder
// preference, persists it, and returns the new value.
func (s *Service) ToggleEmailReminders() (bool, error) {
	if s.current == nil {
		return false, ErrUnauthenticated
	}
	enabled := s.current.ToggleEmailReminders()
	if err := s.store.Save(s.doc); err != nil {
		return false, err
	}
	return enabled, nil
}

// SendDueReminders runs interactive reminder evaluation for the current
// user on demand.
func (s *Service) SendDueReminders() (reminder.Result, error) {
	if s.current == nil {
		return reminder.Result{}, ErrUnauthenticated
	}
	return s.evaluator.RunInteractive(s.doc, s.current), nil
}

// Document exposes the in-memory document for inspection in tests.
func (s *Service) Document() *model.Document {
	return s.doc
}
