package loan

import (
	"encoding/json"
	"errors"
	"net/http"

	"lendingapi/internal/book"
	"lendingapi/internal/httpx"
	"lendingapi/internal/pagination"
)

type HTTPHandler struct {
	service *Service
	books   *book.Service
}

func NewHTTPHandler(service *Service, books *book.Service) *HTTPHandler {
	return &HTTPHandler{service: service, books: books}
}

type createRequest struct {
	ISBN          string `json:"isbn" validate:"required,isbn"`
	Customer      string `json:"customer" validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
}

type returnRequest struct {
	Returned *bool `json:"returned" validate:"required"`
}

// Create handles POST /loans. The loan request names the book by ISBN; the
// handler resolves it against the catalog first.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	b, err := h.books.GetByISBN(r.Context(), req.ISBN)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Book not found for passed isbn", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	l, err := h.service.Create(r.Context(), b.ID, req.Customer, req.CustomerEmail)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_REFERENCE", "Book not found for passed isbn", nil)
		case errors.Is(err, ErrBookAlreadyLoaned):
			httpx.JSONError(w, http.StatusConflict, "BOOK_ALREADY_LOANED", "Book already loaned", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, l)
}

// Get handles GET /loans/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Loan not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, l, nil)
}

// Return handles PATCH /loans/{id}
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	if err := h.service.Return(r.Context(), id, *req.Returned); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Loan not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessNoContent(w)
}

// List handles GET /loans
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		ISBN:     query.Get("isbn"),
		Customer: query.Get("customer"),
	}
	page := pagination.FromQuery(r)

	loans, total, err := h.service.Find(r.Context(), filter, page)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, loans, page.Meta(total))
}

// ListByBook handles GET /books/{id}/loans
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")

	if _, err := h.books.Get(r.Context(), bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	page := pagination.FromQuery(r)
	loans, total, err := h.service.ListByBook(r.Context(), bookID, page)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, loans, page.Meta(total))
}
