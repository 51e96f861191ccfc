package model

import (
	"encoding/json"
	"time"
)

// createdAtLayout matches the timestamp format in the persisted document.
const createdAtLayout = "2006-01-02 15:04:05"

// Task represents a single tracked task owned by one user.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     Date
	Completed   bool
	CreatedAt   time.Time
	Owner       string
}

// NewTask builds an unsaved task, validating the due date string.
// The ID and Owner are assigned by the service at creation time.
func NewTask(title, description, due string) (Task, error) {
	dueDate, err := ParseDate(due)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}, nil
}

// Complete marks the task as done. Completion is one-way: there is no
// operation that resets a completed task to pending.
func (t *Task) Complete() {
	t.Completed = true
}

// DueBy reports whether the task is due or overdue relative to today.
// Completed tasks are never due.
func (t Task) DueBy(today Date) bool {
	return !t.Completed && !t.DueDate.After(today)
}

type taskJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     Date   `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	Owner       string `json:"user"`
}

// MarshalJSON encodes the task in the document wire format, with
// created_at rendered as "YYYY-MM-DD HH:MM:SS".
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(createdAtLayout),
		Owner:       t.Owner,
	})
}

func (t *Task) UnmarshalJSON(bs []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}
	createdAt, err := time.Parse(createdAtLayout, raw.CreatedAt)
	if err != nil {
		// Older documents may omit created_at; treat as unset rather
		// than rejecting the whole store.
		createdAt = time.Time{}
	}
	*t = Task{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		DueDate:     raw.DueDate,
		Completed:   raw.Completed,
		CreatedAt:   createdAt,
		Owner:       raw.Owner,
	}
	return nil
}
