package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jyang234/taskpro/internal/model"
)

func TestJSONLoadAbsent(t *testing.T) {
	s := NewJSON(filepath.Join(t.TempDir(), "tasks.json"))

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load of absent store failed: %v", err)
	}
	if len(doc.Users) != 0 || len(doc.Tasks) != 0 {
		t.Errorf("Absent store must load as empty document: %+v", doc)
	}

	// An absent store must not break subsequent saves.
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save after absent load failed: %v", err)
	}
}

func TestJSONSaveLoadRoundTrip(t *testing.T) {
	s := NewJSON(filepath.Join(t.TempDir(), "tasks.json"))

	doc := model.NewDocument()
	doc.AddUser(model.NewUser("alice", "alice@example.com"))
	due, _ := model.ParseDate("2025-01-01")
	doc.Tasks = append(doc.Tasks, model.Task{
		ID: "t1", Title: "Pay rent", DueDate: due, Owner: "alice",
	})

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(back.Users) != 1 || back.Users[0].Username != "alice" {
		t.Errorf("Users did not round trip: %+v", back.Users)
	}
	if len(back.Tasks) != 1 || back.Tasks[0].Title != "Pay rent" {
		t.Errorf("Tasks did not round trip: %+v", back.Tasks)
	}
	if back.Tasks[0].DueDate.String() != "2025-01-01" {
		t.Errorf("Due date did not round trip: %s", back.Tasks[0].DueDate)
	}
}

func TestJSONSaveReplaces(t *testing.T) {
	s := NewJSON(filepath.Join(t.TempDir(), "tasks.json"))

	doc := model.NewDocument()
	doc.Tasks = append(doc.Tasks, model.Task{ID: "t1", Title: "old"})
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Save(model.NewDocument()); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(back.Tasks) != 0 {
		t.Errorf("Save must replace prior content, got %+v", back.Tasks)
	}
}

func TestJSONSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := NewJSON(filepath.Join(dir, "tasks.json"))

	if err := s.Save(model.NewDocument()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "tasks.json" {
		t.Errorf("Expected only tasks.json, got %v", entries)
	}
}

func TestJSONLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewJSON(path).Load(); err == nil {
		t.Error("Corrupt store must fail to load")
	}
}
