package models

type Task struct {
	ID          int64
	Owner       string
	Title       string
	Description string
	Completed   bool
}

// TaskPatch holds the fields of a partial update. Nil fields are left as is.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Apply copies the present fields onto t. ID and Owner are never touched.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
