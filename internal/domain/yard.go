package domain

// Yard is a capacity-bounded sub-location belonging to exactly one branch.
type Yard struct {
	ID       int64
	Capacity int
	Number   int
	BranchID int64
}

// YardInput carries the fields of a yard create or full-replace update.
type YardInput struct {
	Capacity int
	Number   int
	BranchID int64
}

// HasBranch reports whether the yard references a branch.
func (y Yard) HasBranch() bool { return y.BranchID > 0 }
