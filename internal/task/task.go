// Package task holds the task model and the Store that owns the collection.
package task

import "time"

// Task represents a single to-do item.
// The JSON shape is the persisted format.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
