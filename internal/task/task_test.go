package task

import (
	"testing"
	"time"
)

func sample() []Task {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Task{
		{ID: "3", Title: "Walk the dog", IsComplete: false, CreatedAt: base.Add(2 * time.Second)},
		{ID: "2", Title: "Buy milk", IsComplete: true, CreatedAt: base.Add(time.Second)},
		{ID: "1", Title: "Water plants", IsComplete: false, CreatedAt: base},
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"all", FilterAll, []string{"3", "2", "1"}},
		{"active", FilterActive, []string{"3", "1"}},
		{"completed", FilterCompleted, []string{"2"}},
		{"unknown falls back to all", Filter("bogus"), []string{"3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sample())
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("len=%d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID=%q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterPartition(t *testing.T) {
	tasks := sample()
	active := FilterActive.Apply(tasks)
	completed := FilterCompleted.Apply(tasks)

	if len(active)+len(completed) != len(tasks) {
		t.Fatalf("active(%d)+completed(%d) != all(%d)", len(active), len(completed), len(tasks))
	}
	seen := map[string]bool{}
	for _, tk := range append(active, completed...) {
		if seen[tk.ID] {
			t.Errorf("task %s appears in both buckets", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestCountTasks(t *testing.T) {
	c := CountTasks(sample())
	if c.All != 3 || c.Active != 2 || c.Completed != 1 {
		t.Fatalf("counts=%+v, want all=3 active=2 completed=1", c)
	}
	if c.All != c.Active+c.Completed {
		t.Fatalf("all(%d) != active(%d)+completed(%d)", c.All, c.Active, c.Completed)
	}

	empty := CountTasks(nil)
	if empty.All != 0 || empty.Active != 0 || empty.Completed != 0 {
		t.Fatalf("counts for nil=%+v, want zeros", empty)
	}
}
