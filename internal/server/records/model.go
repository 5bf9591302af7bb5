package records

// Record is a stored item. IDs are assigned by the repository.
type Record struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
