package model

// Task priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

type Task struct {
	ID          string  `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	DueDate     *string `db:"due_date" json:"dueDate"`
	Completed   bool    `db:"completed" json:"completed"`
	Priority    string  `db:"priority" json:"priority"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
}
