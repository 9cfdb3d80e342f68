package handlers

import (
	"net/http"

	"yard-console/internal/domain"
	"yard-console/internal/http/flash"
	"yard-console/internal/http/view"
)

const (
	branchesPath     = "/branches"
	branchNewPath    = "/branches/new"
	branchEditPrefix = "/branches/edit/"
)

// BranchHandler drives the list/create/edit/delete workflows for branches.
type BranchHandler struct {
	*Handlers
	store BranchStore
}

// NewBranchHandler wires a BranchStore into the branch console.
func NewBranchHandler(base *Handlers, store BranchStore) *BranchHandler {
	return &BranchHandler{Handlers: base, store: store}
}

// List handles GET /branches. A service failure still renders the list view.
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	page := BranchListPage{Page: h.page(w, r, "Branches")}

	list, err := h.store.List(r.Context())
	if err != nil {
		h.serviceFailed(r, "branch", "list", 0, err)
		page.Error = "Failed to load branches: " + err.Error()
	} else {
		page.Branches = branchesToView(list)
	}
	h.render(w, r, http.StatusOK, view.BranchList, page)
}

// CreateForm handles GET /branches/new.
func (h *BranchHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.BranchForm, BranchFormPage{
		Page:   h.page(w, r, "New branch"),
		IsEdit: false,
	})
}

// Create handles POST /branches/new.
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, err := branchInput(w, r)
	if err == nil {
		_, err = h.store.Create(r.Context(), in)
	}
	if err != nil {
		h.serviceFailed(r, "branch", "create", 0, err)
		h.redirect(w, r, branchNewPath, flash.Failure("Failed to create branch: "+err.Error()))
		return
	}
	h.redirect(w, r, branchesPath, flash.Success("Branch created successfully!"))
}

// EditForm handles GET /branches/edit/{id}. Unknown ids go back to the list.
func (h *BranchHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		h.redirect(w, r, branchesPath, flash.Failure("Branch not found!"))
		return
	}
	b, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.serviceFailed(r, "branch", "get", id, err)
		h.redirect(w, r, branchesPath, flash.Failure("Branch not found!"))
		return
	}
	h.render(w, r, http.StatusOK, view.BranchForm, BranchFormPage{
		Page:   h.page(w, r, "Edit branch"),
		Branch: branchToView(*b),
		IsEdit: true,
	})
}

// Update handles POST /branches/edit/{id}. Failures return to the same edit form.
func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		h.redirect(w, r, branchesPath, flash.Failure("Branch not found!"))
		return
	}
	in, err := branchInput(w, r)
	if err == nil {
		_, err = h.store.Update(r.Context(), id, in)
	}
	if err != nil {
		h.serviceFailed(r, "branch", "update", id, err)
		h.redirect(w, r, pathWithID(branchEditPrefix, id), flash.Failure("Failed to update branch: "+err.Error()))
		return
	}
	h.redirect(w, r, branchesPath, flash.Success("Branch updated successfully!"))
}

// Delete handles GET and POST /branches/delete/{id}.
func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err == nil {
		err = h.store.Delete(r.Context(), id)
	}
	if err != nil {
		h.serviceFailed(r, "branch", "delete", id, err)
		h.redirect(w, r, branchesPath, flash.Failure("Failed to delete branch: "+err.Error()))
		return
	}
	h.redirect(w, r, branchesPath, flash.Success("Branch deleted successfully!"))
}

func branchInput(w http.ResponseWriter, r *http.Request) (domain.BranchInput, error) {
	if err := parseForm(w, r); err != nil {
		return domain.BranchInput{}, err
	}
	return domain.BranchInput{
		Name:    r.PostFormValue("name"),
		Country: r.PostFormValue("country"),
		Street:  r.PostFormValue("street"),
	}, nil
}
