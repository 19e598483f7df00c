package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"trackerd/internal/core"
	"trackerd/internal/ledger"
)

// response is the JSON envelope shared by all endpoints.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// transactionDTO is the wire form of a transaction. Amounts are JSON
// numbers rounded to two decimal places for display.
type transactionDTO struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
}

type summaryDTO struct {
	TotalIncome        float64            `json:"total_income"`
	TotalExpense       float64            `json:"total_expense"`
	Balance            float64            `json:"balance"`
	IncomeByCategory   map[string]float64 `json:"income_by_category"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	TotalRecords       int                `json:"total_records"`
}

func toTransactionDTO(tx core.Transaction) transactionDTO {
	return transactionDTO{
		Amount:   tx.Amount.InexactFloat64(),
		Category: tx.Category,
		Type:     string(tx.Type),
		Date:     tx.Date.String(),
	}
}

func toSummaryDTO(s core.Summary, records int) summaryDTO {
	dto := summaryDTO{
		TotalIncome:        s.TotalIncome.InexactFloat64(),
		TotalExpense:       s.TotalExpense.InexactFloat64(),
		Balance:            s.Balance.InexactFloat64(),
		IncomeByCategory:   make(map[string]float64, len(s.IncomeByCategory)),
		ExpensesByCategory: make(map[string]float64, len(s.ExpensesByCategory)),
		TotalRecords:       records,
	}
	for cat, amt := range s.IncomeByCategory {
		dto.IncomeByCategory[cat] = amt.InexactFloat64()
	}
	for cat, amt := range s.ExpensesByCategory {
		dto.ExpensesByCategory[cat] = amt.InexactFloat64()
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, 1<<16)
	defer io.Copy(io.Discard, body)

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "Personal expense tracker API is running.",
		Data: map[string]string{
			"POST /add":           "Add a new transaction from natural language",
			"GET /summary":        "Get financial summary",
			"GET /transactions":   "Get all transactions",
			"DELETE /transaction": "Delete a transaction by index",
			"POST /reset":         "Reset all data",
		},
	})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	tx, index, err := s.tracker.Add(r.Context(), req.Message)
	switch {
	case errors.Is(err, core.ErrAmountNotFound):
		writeError(w, http.StatusUnprocessableEntity,
			"could not understand, try: 'I spent 100 on groceries' or 'I received 500 from freelance': "+core.ErrAmountNotFound.Error())
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Add transaction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	writeJSON(w, http.StatusCreated, response{
		Success: true,
		Message: "transaction saved",
		Data: map[string]any{
			"index":       index,
			"transaction": toTransactionDTO(tx),
		},
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snapshot := s.tracker.Transactions()
	summary := ledger.Summarize(snapshot)
	writeJSON(w, http.StatusOK, response{
		Success: true,
		Data:    toSummaryDTO(summary, len(snapshot)),
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snapshot := s.tracker.Transactions()
	dtos := make([]transactionDTO, 0, len(snapshot))
	for _, tx := range snapshot {
		dtos = append(dtos, toTransactionDTO(tx))
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: dtos})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	removed, err := s.tracker.Delete(r.Context(), req.Index)
	switch {
	case errors.Is(err, core.ErrIndexOutOfRange):
		writeError(w, http.StatusNotFound, core.ErrIndexOutOfRange.Error())
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Delete transaction failed", "error", err, "index", req.Index)
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success: true,
		Message: "transaction deleted",
		Data:    toTransactionDTO(removed),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.tracker.Reset(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Reset failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset data")
		return
	}
	writeJSON(w, http.StatusOK, response{Success: true, Message: "all data has been reset"})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.tracker == nil {
		writeError(w, http.StatusServiceUnavailable, "tracker not initialized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
