package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guardwear/inventory/internal/core/domain"
	"github.com/guardwear/inventory/internal/core/service"
)

// HTTPHandler is the JSON front end. It only translates: form parsing,
// name-to-id resolution, sign derivation per movement kind, and error
// mapping. All invariants live behind the services.
type HTTPHandler struct {
	catalog *service.Catalog
	ledger  *service.Ledger
	query   *service.Query
}

func NewHTTPHandler(catalog *service.Catalog, ledger *service.Ledger, query *service.Query) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, ledger: ledger, query: query}
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/employees", h.UpsertEmployee).Methods(http.MethodPost)
	r.HandleFunc("/api/employees", h.ListEmployees).Methods(http.MethodGet)
	r.HandleFunc("/api/items", h.UpsertItem).Methods(http.MethodPost)
	r.HandleFunc("/api/items", h.ListItems).Methods(http.MethodGet)
	r.HandleFunc("/api/movements", h.RecordMovement).Methods(http.MethodPost)
	r.HandleFunc("/api/status", h.Status).Methods(http.MethodGet)
	r.HandleFunc("/api/history", h.History).Methods(http.MethodGet)
	return r
}

type upsertEmployeeRequest struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Badge string `json:"badge"`
}

type upsertItemRequest struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Category string `json:"category"`
	MinStock int    `json:"min_stock"`
}

// movementRequest names the item by its catalog key and the employee by
// name; quantity is the requested magnitude for stock_in/issue/return
// and a signed delta for adjust.
type movementRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Category string `json:"category"`
	Employee string `json:"employee"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) UpsertEmployee(w http.ResponseWriter, r *http.Request) {
	var req upsertEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	emp, err := h.catalog.UpsertEmployee(r.Context(), req.Name, req.Role, req.Badge)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h *HTTPHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.catalog.ListEmployees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *HTTPHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	var req upsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	item, err := h.catalog.UpsertItem(r.Context(), req.Name, req.Size, req.Category, req.MinStock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	kind := domain.Kind(req.Type)
	if !kind.Valid() {
		writeError(w, fmt.Errorf("%w: unknown movement type %q", domain.ErrInvalid, req.Type))
		return
	}
	if (kind == domain.KindIssue || kind == domain.KindReturn) && req.Employee == "" {
		writeError(w, fmt.Errorf("%w: %s requires an employee", domain.ErrInvalid, kind))
		return
	}

	item, err := h.catalog.ResolveItem(r.Context(), req.Name, req.Size, req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	var employeeID *int64
	if req.Employee != "" {
		emp, err := h.catalog.ResolveEmployee(r.Context(), req.Employee)
		if err != nil {
			writeError(w, err)
			return
		}
		employeeID = &emp.ID
	}

	movement, err := h.ledger.RecordMovement(r.Context(), item.ID, employeeID, kind,
		domain.SignedQuantity(kind, req.Quantity), req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movement)
}

func (h *HTTPHandler) Status(w http.ResponseWriter, r *http.Request) {
	report, err := h.query.StatusReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	rows, err := h.query.History(r.Context(),
		r.URL.Query().Get("name"), r.URL.Query().Get("employee"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
