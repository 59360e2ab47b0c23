package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, core.ErrUnknownCategory),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidTarget),
		errors.Is(err, core.ErrEmptyName),
		errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrEmptyCurrency):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseWindow reads the from/to query parameters. Defaults are the start
// of the current year through today, both against the server clock.
func (s *Server) parseWindow(r *http.Request) (services.Window, error) {
	now := s.now()
	window := services.Window{
		From: core.NewDate(now.Year(), 1, 1),
		To:   core.DateOf(now),
	}

	if v := r.URL.Query().Get("from"); v != "" {
		from, err := core.ParseDate(v)
		if err != nil {
			return services.Window{}, err
		}
		window.From = from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := core.ParseDate(v)
		if err != nil {
			return services.Window{}, err
		}
		window.To = to
	}
	return window, nil
}

func queryCurrency(r *http.Request) core.CurrencyCode {
	return core.CurrencyCode(strings.TrimSpace(r.URL.Query().Get("currency")))
}

type createTransactionRequest struct {
	Date          string      `json:"date"`
	Description   string      `json:"description"`
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	Category      string      `json:"category"`
	PaymentMethod string      `json:"paymentMethod"`
	Notes         string      `json:"notes"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		window, err := s.parseWindow(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		txs, err := s.svc.ListTransactions(r.Context(), window, queryCurrency(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if txs == nil {
			txs = []core.Transaction{}
		}
		writeJSON(w, http.StatusOK, txs)

	case http.MethodPost:
		var req createTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		date, err := core.ParseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		amount, err := core.ParseAmount(req.Amount.String())
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid amount")
			return
		}

		tx, err := s.svc.CreateTransaction(r.Context(), services.TransactionInput{
			Date:          date,
			Description:   req.Description,
			Amount:        amount,
			Currency:      core.CurrencyCode(req.Currency),
			CategoryCode:  req.Category,
			PaymentMethod: core.PaymentMethod(req.PaymentMethod),
			Notes:         req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		s.dashboards.Clear()
		writeJSON(w, http.StatusCreated, tx)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.svc.DeleteTransaction(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	s.dashboards.Clear()
	w.WriteHeader(http.StatusNoContent)
}

type saveGoalRequest struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	TargetAmount        float64 `json:"targetAmount"`
	CurrentAmount       float64 `json:"currentAmount"`
	Currency            string  `json:"currency"`
	Deadline            string  `json:"deadline"`
	MonthlyContribution float64 `json:"monthlyContribution"`
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		goals, err := s.svc.ListGoals(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if goals == nil {
			goals = []core.SavingsGoal{}
		}
		writeJSON(w, http.StatusOK, goals)

	case http.MethodPost:
		var req saveGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Absent deadline is allowed; a present one must parse.
		var deadline core.Date
		if req.Deadline != "" {
			var err error
			deadline, err = core.ParseDate(req.Deadline)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid deadline, want YYYY-MM-DD")
				return
			}
		}

		g, err := s.svc.SaveGoal(r.Context(), services.GoalInput{
			ID:                  req.ID,
			Name:                req.Name,
			TargetAmount:        req.TargetAmount,
			CurrentAmount:       req.CurrentAmount,
			Currency:            core.CurrencyCode(req.Currency),
			Deadline:            deadline,
			MonthlyContribution: req.MonthlyContribution,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		s.dashboards.Clear()
		writeJSON(w, http.StatusCreated, g)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGoalByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/goals/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.svc.DeleteGoal(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	s.dashboards.Clear()
	w.WriteHeader(http.StatusNoContent)
}

type saveInvestmentRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	AssetType       string  `json:"assetType"`
	RiskLevel       string  `json:"riskLevel"`
	PrincipalAmount float64 `json:"principalAmount"`
	CurrentValue    float64 `json:"currentValue"`
	Currency        string  `json:"currency"`
	PurchaseDate    string  `json:"purchaseDate"`
}

func (s *Server) handleInvestments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		invs, err := s.svc.ListInvestments(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if invs == nil {
			invs = []core.Investment{}
		}
		writeJSON(w, http.StatusOK, invs)

	case http.MethodPost:
		var req saveInvestmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var purchaseDate core.Date
		if req.PurchaseDate != "" {
			var err error
			purchaseDate, err = core.ParseDate(req.PurchaseDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid purchaseDate, want YYYY-MM-DD")
				return
			}
		}

		inv, err := s.svc.SaveInvestment(r.Context(), services.InvestmentInput{
			ID:              req.ID,
			Name:            req.Name,
			AssetType:       req.AssetType,
			RiskLevel:       req.RiskLevel,
			PrincipalAmount: req.PrincipalAmount,
			CurrentValue:    req.CurrentValue,
			Currency:        core.CurrencyCode(req.Currency),
			PurchaseDate:    purchaseDate,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		s.dashboards.Clear()
		writeJSON(w, http.StatusCreated, inv)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleInvestmentByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/investments/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := s.svc.DeleteInvestment(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	s.dashboards.Clear()
	w.WriteHeader(http.StatusNoContent)
}
