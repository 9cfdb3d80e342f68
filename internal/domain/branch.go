package domain

// Branch is an administrative location that owns zero or more yards.
type Branch struct {
	ID      int64
	Name    string
	Country string
	Street  string
}

// BranchInput carries the fields of a branch create or full-replace update.
type BranchInput struct {
	Name    string
	Country string
	Street  string
}
