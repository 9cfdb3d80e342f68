package handlers

import (
	"yard-console/internal/domain"
	"yard-console/internal/http/view"
)

// BranchView is the branch shape exposed to templates.
type BranchView struct {
	ID      int64
	Name    string
	Country string
	Street  string
}

// YardView is the yard shape exposed to templates.
type YardView struct {
	ID         int64
	Capacity   int
	Number     int
	BranchID   int64
	BranchName string
}

// BranchListPage backs view.BranchList.
type BranchListPage struct {
	view.Page
	Branches []BranchView
	Error    string
}

// BranchFormPage backs view.BranchForm.
type BranchFormPage struct {
	view.Page
	Branch BranchView
	IsEdit bool
}

// YardListPage backs view.YardList.
type YardListPage struct {
	view.Page
	Yards []YardView
	Error string
}

// YardFormPage backs view.YardForm. BranchInfo is nil when the owning
// branch could not be resolved.
type YardFormPage struct {
	view.Page
	Yard       YardView
	IsEdit     bool
	Branches   []BranchView
	BranchInfo *BranchView
}

func branchToView(b domain.Branch) BranchView {
	return BranchView{ID: b.ID, Name: b.Name, Country: b.Country, Street: b.Street}
}

func branchesToView(list []domain.Branch) []BranchView {
	out := make([]BranchView, 0, len(list))
	for _, b := range list {
		out = append(out, branchToView(b))
	}
	return out
}

func yardToView(y domain.Yard) YardView {
	return YardView{ID: y.ID, Capacity: y.Capacity, Number: y.Number, BranchID: y.BranchID}
}

// yardsToView converts yards, filling BranchName from names when known.
func yardsToView(list []domain.Yard, names map[int64]string) []YardView {
	out := make([]YardView, 0, len(list))
	for _, y := range list {
		v := yardToView(y)
		v.BranchName = names[y.BranchID]
		out = append(out, v)
	}
	return out
}
