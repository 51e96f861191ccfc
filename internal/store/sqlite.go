package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jyang234/taskpro/internal/model"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// userRecord is the users table row.
type userRecord struct {
	Username              string `gorm:"primaryKey;size:64"`
	Password              string `gorm:"size:100"`
	Email                 string `gorm:"size:255"`
	EmailRemindersEnabled bool   `gorm:"not null;default:true"`
	LastReminderDate      string `gorm:"size:10"`
}

func (userRecord) TableName() string { return "users" }

// taskRecord is the tasks table row. Pos preserves document insertion
// order across save/load cycles.
type taskRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Pos         int    `gorm:"not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"size:2000"`
	DueDate     string `gorm:"size:10;not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CreatedAt   string `gorm:"size:19"`
	Owner       string `gorm:"column:user;size:64;not null"`
}

func (taskRecord) TableName() string { return "tasks" }

// SQLite is a GORM-backed store holding the document in a SQLite
// database. It keeps the same whole-document contract as the JSON store:
// Load reads everything, Save replaces everything in one transaction.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) a SQLite store at the given path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&userRecord{}, &taskRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite store: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load reads the full document. An empty database yields an empty document.
func (s *SQLite) Load() (*model.Document, error) {
	var users []userRecord
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var tasks []taskRecord
	if err := s.db.Order("pos").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	doc := model.NewDocument()
	for _, r := range users {
		u, err := r.toUser()
		if err != nil {
			return nil, err
		}
		doc.Users = append(doc.Users, u)
	}
	for _, r := range tasks {
		t, err := r.toTask()
		if err != nil {
			return nil, err
		}
		doc.Tasks = append(doc.Tasks, t)
	}
	return doc, nil
}

// Save replaces the stored document in a single transaction.
func (s *SQLite) Save(doc *model.Document) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&userRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&taskRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear tasks: %w", err)
		}
		for _, u := range doc.Users {
			if err := tx.Create(newUserRecord(u)).Error; err != nil {
				return fmt.Errorf("failed to save user %q: %w", u.Username, err)
			}
		}
		for i, t := range doc.Tasks {
			if err := tx.Create(newTaskRecord(t, i)).Error; err != nil {
				return fmt.Errorf("failed to save task %q: %w", t.ID, err)
			}
		}
		return nil
	})
}

func newUserRecord(u model.User) *userRecord {
	return &userRecord{
		Username:              u.Username,
		Password:              u.Password.StoredHash(),
		Email:                 u.Email,
		EmailRemindersEnabled: u.EmailRemindersEnabled,
		LastReminderDate:      u.LastReminderDate.String(),
	}
}

func (r userRecord) toUser() (model.User, error) {
	var lastReminder model.Date
	if r.LastReminderDate != "" {
		parsed, err := model.ParseDate(r.LastReminderDate)
		if err != nil {
			return model.User{}, fmt.Errorf("user %q: %w", r.Username, err)
		}
		lastReminder = parsed
	}
	return model.User{
		Username:              r.Username,
		Password:              model.CredentialFromHash(r.Password),
		Email:                 r.Email,
		EmailRemindersEnabled: r.EmailRemindersEnabled,
		LastReminderDate:      lastReminder,
	}, nil
}

func newTaskRecord(t model.Task, pos int) *taskRecord {
	createdAt := ""
	if !t.CreatedAt.IsZero() {
		createdAt = t.CreatedAt.Format(sqliteTimeLayout)
	}
	return &taskRecord{
		ID:          t.ID,
		Pos:         pos,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.String(),
		Completed:   t.Completed,
		CreatedAt:   createdAt,
		Owner:       t.Owner,
	}
}

func (r taskRecord) toTask() (model.Task, error) {
	due, err := model.ParseDate(r.DueDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %q: %w", r.ID, err)
	}
	var createdAt time.Time
	if r.CreatedAt != "" {
		createdAt, err = time.Parse(sqliteTimeLayout, r.CreatedAt)
		if err != nil {
			return model.Task{}, fmt.Errorf("task %q: %w", r.ID, err)
		}
	}
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Completed:   r.Completed,
		CreatedAt:   createdAt,
		Owner:       r.Owner,
	}, nil
}
