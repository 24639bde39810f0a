package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"fine-reconciliation/internal/domain"
	"fine-reconciliation/internal/session"
	"fine-reconciliation/internal/usecase"
)

// handleReport serves the reconciled fine report for a bucket. Reads are
// fail-soft: a broken upstream yields an empty report, never an error page.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	bucket := domain.ParseBucket(r.URL.Query().Get("bucket"))
	fines := s.loader.LoadAll(r.Context())
	jsonResponse(w, http.StatusOK, usecase.BuildReport(fines, bucket, s.now()))
}

// handleMyFines serves the calling member's own fines.
func (s *Server) handleMyFines(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	fines := s.loader.LoadForUser(r.Context(), claims.UserID)
	jsonResponse(w, http.StatusOK, map[string]any{
		"fines":         fines,
		"total_pending": usecase.TotalPending(fines),
	})
}

// handleFinesByUser serves another member's fines to staff.
func (s *Server) handleFinesByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	fines := s.loader.LoadForUser(r.Context(), userID)
	jsonResponse(w, http.StatusOK, map[string]any{"fines": fines})
}

type waiveRequest struct {
	BookIssueID string `json:"bookIssueId"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes"`
}

func (s *Server) handleWaive(w http.ResponseWriter, r *http.Request) {
	var req waiveRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fines, err := s.lifecycle.Waive(r.Context(), req.BookIssueID, req.Reason, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"fines": fines})
}

type adjustRequest struct {
	NewAmount decimal.Decimal `json:"newAmount"`
	Reason    string          `json:"reason"`
}

func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	fineID := mux.Vars(r)["fineId"]

	var req adjustRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fines, err := s.lifecycle.Adjust(r.Context(), fineID, req.NewAmount, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"fines": fines})
}

func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	fineID := mux.Vars(r)["fineId"]

	var req domain.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payment, fines, err := s.lifecycle.Pay(r.Context(), fineID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{
		"payment": payment,
		"fines":   fines,
	})
}

func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	blob, err := s.lifecycle.Receipt(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

// role requirements per route, kept in one place so the dashboard matrix is
// easy to audit.
const (
	reportMinRole = session.RoleLibrarian
	waiveMinRole  = session.RoleAdmin
	adjustMinRole = session.RoleAdmin
	payMinRole    = session.RoleLibrarian
)
