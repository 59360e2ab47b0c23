package http

import (
	"context"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

// getDashboard serves the dashboard view through the LRU cache. Writes
// clear the cache, so a hit is never stale.
func (s *Server) getDashboard(ctx context.Context, window services.Window, currency core.CurrencyCode) (services.Dashboard, error) {
	key := window.From.String() + "|" + window.To.String() + "|" + string(currency)
	if dash, ok := s.dashboards.Get(key); ok {
		return dash, nil
	}

	dash, err := s.svc.Dashboard(ctx, window, currency)
	if err != nil {
		return services.Dashboard{}, err
	}
	s.dashboards.Set(key, dash)
	return dash, nil
}

func (s *Server) reportDashboard(w http.ResponseWriter, r *http.Request) (services.Dashboard, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return services.Dashboard{}, false
	}
	window, err := s.parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return services.Dashboard{}, false
	}
	dash, err := s.getDashboard(r.Context(), window, queryCurrency(r))
	if err != nil {
		writeServiceError(w, err)
		return services.Dashboard{}, false
	}
	return dash, true
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if dash, ok := s.reportDashboard(w, r); ok {
		writeJSON(w, http.StatusOK, dash)
	}
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if dash, ok := s.reportDashboard(w, r); ok {
		writeJSON(w, http.StatusOK, dash.Monthly)
	}
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.reportDashboard(w, r)
	if !ok {
		return
	}
	switch r.URL.Query().Get("polarity") {
	case "income":
		writeJSON(w, http.StatusOK, dash.IncomeByCategory)
	case "", "expense":
		writeJSON(w, http.StatusOK, dash.ExpensesByCategory)
	default:
		writeError(w, http.StatusBadRequest, "polarity must be income or expense")
	}
}

func (s *Server) handleNetWorthReport(w http.ResponseWriter, r *http.Request) {
	if dash, ok := s.reportDashboard(w, r); ok {
		writeJSON(w, http.StatusOK, dash.NetWorth)
	}
}

func (s *Server) handleForecastReport(w http.ResponseWriter, r *http.Request) {
	if dash, ok := s.reportDashboard(w, r); ok {
		writeJSON(w, http.StatusOK, dash.Goals)
	}
}

// summaryReport is the windowed totals block without the per-view slices.
type summaryReport struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Currency core.CurrencyCode `json:"currency,omitempty"`

	TotalIncome        float64 `json:"totalIncome"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetCashflow        float64 `json:"netCashflow"`
	AvgMonthlyIncome   float64 `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses float64 `json:"avgMonthlyExpenses"`
	InvestmentValue    float64 `json:"investmentValue"`
	InvestmentGainLoss float64 `json:"investmentGainLoss"`
}

func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	dash, ok := s.reportDashboard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, summaryReport{
		From:               dash.From,
		To:                 dash.To,
		Currency:           dash.Currency,
		TotalIncome:        dash.TotalIncome,
		TotalExpenses:      dash.TotalExpenses,
		NetCashflow:        dash.NetCashflow,
		AvgMonthlyIncome:   dash.AvgMonthlyIn,
		AvgMonthlyExpenses: dash.AvgMonthlyOut,
		InvestmentValue:    dash.InvestmentValue,
		InvestmentGainLoss: dash.InvestmentGainLoss,
	})
}
