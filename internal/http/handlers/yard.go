package handlers

import (
	"net/http"

	"yard-console/internal/domain"
	"yard-console/internal/http/flash"
	"yard-console/internal/http/view"
	"yard-console/internal/logx"
)

const (
	yardsPath      = "/yards"
	yardNewPath    = "/yards/new"
	yardEditPrefix = "/yards/edit/"
)

// YardHandler drives the yard workflows. Branches are read for the
// selection list and for the owning-branch panel on the edit form.
type YardHandler struct {
	*Handlers
	yards    YardStore
	branches BranchReader
}

// NewYardHandler wires the yard and branch collaborators into the yard console.
func NewYardHandler(base *Handlers, yards YardStore, branches BranchReader) *YardHandler {
	return &YardHandler{Handlers: base, yards: yards, branches: branches}
}

// List handles GET /yards. Branch names are joined when the branch list loads.
func (h *YardHandler) List(w http.ResponseWriter, r *http.Request) {
	page := YardListPage{Page: h.page(w, r, "Yards")}

	list, err := h.yards.List(r.Context())
	if err != nil {
		h.serviceFailed(r, "yard", "list", 0, err)
		page.Error = "Failed to load yards: " + err.Error()
		h.render(w, r, http.StatusOK, view.YardList, page)
		return
	}
	page.Yards = yardsToView(list, h.branchNames(r))
	h.render(w, r, http.StatusOK, view.YardList, page)
}

// CreateForm handles GET /yards/new.
func (h *YardHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.List(r.Context())
	if err != nil {
		h.serviceFailed(r, "branch", "list", 0, err)
		h.redirect(w, r, yardsPath, flash.Failure("Failed to load form: "+err.Error()))
		return
	}
	h.render(w, r, http.StatusOK, view.YardForm, YardFormPage{
		Page:     h.page(w, r, "New yard"),
		Branches: branchesToView(branches),
	})
}

// Create handles POST /yards/new.
func (h *YardHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := yardInput(w, r)
	if err == nil {
		_, err = h.yards.Create(r.Context(), in)
	}
	if err != nil {
		h.serviceFailed(r, "yard", "create", 0, err)
		h.redirect(w, r, yardNewPath, flash.Failure("Failed to create yard: "+err.Error()))
		return
	}
	h.redirect(w, r, yardsPath, flash.Success("Yard created successfully!"))
}

// EditForm handles GET /yards/edit/{id}. The owning branch panel is omitted
// when that branch cannot be read.
func (h *YardHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		h.redirect(w, r, yardsPath, flash.Failure("Yard not found!"))
		return
	}
	y, err := h.yards.Get(r.Context(), id)
	if err != nil {
		h.serviceFailed(r, "yard", "get", id, err)
		h.redirect(w, r, yardsPath, flash.Failure("Yard not found!"))
		return
	}
	branches, err := h.branches.List(r.Context())
	if err != nil {
		h.serviceFailed(r, "branch", "list", 0, err)
		h.redirect(w, r, yardsPath, flash.Failure("Failed to load form: "+err.Error()))
		return
	}

	page := YardFormPage{
		Page:     h.page(w, r, "Edit yard"),
		Yard:     yardToView(*y),
		IsEdit:   true,
		Branches: branchesToView(branches),
	}
	if b, ok := h.owningBranch(r, *y); ok {
		info := branchToView(*b)
		page.BranchInfo = &info
		page.Yard.BranchName = b.Name
	}
	h.render(w, r, http.StatusOK, view.YardForm, page)
}

// Update handles POST /yards/edit/{id}.
func (h *YardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		h.redirect(w, r, yardsPath, flash.Failure("Yard not found!"))
		return
	}
	in, err := yardInput(w, r)
	if err == nil {
		_, err = h.yards.Update(r.Context(), id, in)
	}
	if err != nil {
		h.serviceFailed(r, "yard", "update", id, err)
		h.redirect(w, r, pathWithID(yardEditPrefix, id), flash.Failure("Failed to update yard: "+err.Error()))
		return
	}
	h.redirect(w, r, yardsPath, flash.Success("Yard updated successfully!"))
}

// Delete handles GET and POST /yards/delete/{id}.
func (h *YardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err == nil {
		err = h.yards.Delete(r.Context(), id)
	}
	if err != nil {
		h.serviceFailed(r, "yard", "delete", id, err)
		h.redirect(w, r, yardsPath, flash.Failure("Failed to delete yard: "+err.Error()))
		return
	}
	h.redirect(w, r, yardsPath, flash.Success("Yard deleted successfully!"))
}

// owningBranch looks up the yard's branch. Any failure is logged and
// reported as absent.
func (h *YardHandler) owningBranch(r *http.Request, y domain.Yard) (*domain.Branch, bool) {
	if !y.HasBranch() {
		return nil, false
	}
	b, err := h.branches.Get(r.Context(), y.BranchID)
	if err != nil || b == nil {
		h.log(r).Debug("owning branch lookup failed",
			logx.Int64("yard_id", y.ID),
			logx.Int64("branch_id", y.BranchID),
			logx.Any("err", err),
		)
		return nil, false
	}
	return b, true
}

func (h *YardHandler) branchNames(r *http.Request) map[int64]string {
	names := map[int64]string{}
	branches, err := h.branches.List(r.Context())
	if err != nil {
		h.log(r).Debug("branch names unavailable", logx.Err(err))
		return names
	}
	for _, b := range branches {
		names[b.ID] = b.Name
	}
	return names
}

func yardInput(w http.ResponseWriter, r *http.Request) (domain.YardInput, error) {
	if err := parseForm(w, r); err != nil {
		return domain.YardInput{}, err
	}
	capacity, err := formInt(r, "capacity", "capacity")
	if err != nil {
		return domain.YardInput{}, err
	}
	number, err := formInt(r, "yardNumber", "yard number")
	if err != nil {
		return domain.YardInput{}, err
	}
	branchID, err := formInt64(r, "branchId", "branch")
	if err != nil {
		return domain.YardInput{}, err
	}
	return domain.YardInput{Capacity: capacity, Number: number, BranchID: branchID}, nil
}
