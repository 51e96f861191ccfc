package model

// Document is the full persisted state: all users plus all tasks. It is
// the unit of atomicity for persistence; every mutation loads the whole
// document, changes it in memory, and writes the whole document back.
type Document struct {
	Users []User `json:"users"`
	Tasks []Task `json:"tasks"`
}

// NewDocument returns an empty document, the valid initial state of a
// store that has never been saved.
func NewDocument() *Document {
	return &Document{
		Users: []User{},
		Tasks: []Task{},
	}
}

// FindUser returns a pointer to the user with the given username, or nil.
func (d *Document) FindUser(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// AddUser appends a user and returns a pointer to the stored copy.
func (d *Document) AddUser(u User) *User {
	d.Users = append(d.Users, u)
	return &d.Users[len(d.Users)-1]
}

// FindTask returns a pointer to the task with the given id, or nil.
func (d *Document) FindTask(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// RemoveTask removes the first task with the given id, returning the
// removed task and whether one was found. Insertion order of the rest is
// preserved.
func (d *Document) RemoveTask(id string) (Task, bool) {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			removed := d.Tasks[i]
			d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
			return removed, true
		}
	}
	return Task{}, false
}

// TasksOwnedBy returns the tasks owned by the given user, in insertion order.
func (d *Document) TasksOwnedBy(username string) []Task {
	var out []Task
	for _, t := range d.Tasks {
		if t.Owner == username {
			out = append(out, t)
		}
	}
	return out
}

// HasTaskID reports whether any task in the document carries the id.
func (d *Document) HasTaskID(id string) bool {
	return d.FindTask(id) != nil
}
