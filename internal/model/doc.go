// Package model defines the persisted data types: tasks, users, the
// write-only credential, calendar dates, and the Document that bundles
// all of them into one atomic unit of persistence.
//
// # Wire format
//
// The document serializes to JSON with two top-level arrays:
//
//	{
//	  "users": [
//	    {"username": "alice", "email": null, "email_reminders_enabled": true}
//	  ],
//	  "tasks": [
//	    {"id": "...", "title": "Pay rent", "description": "",
//	     "due_date": "2025-01-01", "completed": false,
//	     "created_at": "2025-01-05 09:30:00", "user": "alice"}
//	  ]
//	}
//
// Dates carry no time-of-day; created_at is the only full timestamp.
// The password field holds a bcrypt hash and is omitted when no password
// has been set.
package model
