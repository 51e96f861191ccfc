package model

import "encoding/json"

// User represents one account in the store. Users are created implicitly
// on first login and are never deleted.
type User struct {
	Username              string
	Password              Credential
	Email                 string
	EmailRemindersEnabled bool
	LastReminderDate      Date
}

// NewUser creates a user with email reminders enabled by default.
func NewUser(username, email string) User {
	return User{
		Username:              username,
		Email:                 email,
		EmailRemindersEnabled: true,
	}
}

// ToggleEmailReminders flips the reminder preference and returns the new value.
func (u *User) ToggleEmailReminders() bool {
	u.EmailRemindersEnabled = !u.EmailRemindersEnabled
	return u.EmailRemindersEnabled
}

type userJSON struct {
	Username              string  `json:"username"`
	Email                 *string `json:"email"`
	EmailRemindersEnabled bool    `json:"email_reminders_enabled"`
	Password              string  `json:"password,omitempty"`
	LastReminderDate      string  `json:"last_reminder_date,omitempty"`
}

// MarshalJSON encodes the user in the document wire format. A missing
// email is rendered as null, and optional fields are omitted when unset.
func (u User) MarshalJSON() ([]byte, error) {
	raw := userJSON{
		Username:              u.Username,
		EmailRemindersEnabled: u.EmailRemindersEnabled,
		Password:              u.Password.StoredHash(),
		LastReminderDate:      u.LastReminderDate.String(),
	}
	if u.Email != "" {
		raw.Email = &u.Email
	}
	return json.Marshal(raw)
}

func (u *User) UnmarshalJSON(bs []byte) error {
	var raw userJSON
	if err := json.Unmarshal(bs, &raw); err != nil {
		return err
	}
	var lastReminder Date
	if raw.LastReminderDate != "" {
		parsed, err := ParseDate(raw.LastReminderDate)
		if err != nil {
			return err
		}
		lastReminder = parsed
	}
	email := ""
	if raw.Email != nil {
		email = *raw.Email
	}
	*u = User{
		Username:              raw.Username,
		Password:              CredentialFromHash(raw.Password),
		Email:                 email,
		EmailRemindersEnabled: raw.EmailRemindersEnabled,
		LastReminderDate:      lastReminder,
	}
	return nil
}
