package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("Pay rent", "first of the month", "2025-01-01")
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}
	if task.Title != "Pay rent" {
		t.Errorf("Expected title 'Pay rent', got %q", task.Title)
	}
	if task.Completed {
		t.Error("New task must not be completed")
	}
	if task.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped at construction")
	}
	if task.DueDate.String() != "2025-01-01" {
		t.Errorf("Expected due 2025-01-01, got %s", task.DueDate)
	}
}

func TestNewTaskInvalidDate(t *testing.T) {
	if _, err := NewTask("x", "", "soon"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
}

func TestTaskDueBy(t *testing.T) {
	today, _ := ParseDate("2025-01-05")

	tests := []struct {
		name      string
		due       string
		completed bool
		want      bool
	}{
		{name: "overdue", due: "2025-01-01", want: true},
		{name: "due today", due: "2025-01-05", want: true},
		{name: "due tomorrow", due: "2025-01-06", want: false},
		{name: "overdue but completed", due: "2025-01-01", completed: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, _ := ParseDate(tt.due)
			task := Task{DueDate: due, Completed: tt.completed}
			if got := task.DueBy(today); got != tt.want {
				t.Errorf("DueBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskJSONRoundTrip(t *testing.T) {
	due, _ := ParseDate("2025-02-01")
	task := Task{
		ID:          "abc123",
		Title:       "Pay rent",
		Description: "first of the month",
		DueDate:     due,
		Completed:   true,
		CreatedAt:   time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC),
		Owner:       "alice",
	}

	bs, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(bs), `"created_at":"2025-01-05 09:30:00"`) {
		t.Errorf("created_at not in wire format: %s", bs)
	}
	if !strings.Contains(string(bs), `"user":"alice"`) {
		t.Errorf("owner must serialize under the user key: %s", bs)
	}

	var back Task
	if err := json.Unmarshal(bs, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != task {
		t.Errorf("Round trip changed task:\n got %+v\nwant %+v", back, task)
	}
}

func TestTaskCompleteOneWay(t *testing.T) {
	task := Task{Title: "x"}
	task.Complete()
	task.Complete()
	if !task.Completed {
		t.Error("Task must stay completed")
	}
}
