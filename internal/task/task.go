package task

import "time"

// Task is a single to-do item. ID and CreatedAt are assigned by the store
// and never change afterwards.
type Task struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	IsComplete bool      `json:"is_complete"`
	CreatedAt  time.Time `json:"created_at"`
	Owner      string    `json:"owner"`
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Apply returns the subset of tasks matching the filter, in input order.
// An unknown filter behaves like FilterAll.
func (f Filter) Apply(tasks []Task) []Task {
	switch f {
	case FilterActive:
		out := make([]Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.IsComplete {
				out = append(out, t)
			}
		}
		return out
	case FilterCompleted:
		out := make([]Task, 0, len(tasks))
		for _, t := range tasks {
			if t.IsComplete {
				out = append(out, t)
			}
		}
		return out
	default:
		return tasks
	}
}

// Counts holds per-bucket task totals for the filter tabs.
type Counts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

func CountTasks(tasks []Task) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.IsComplete {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
