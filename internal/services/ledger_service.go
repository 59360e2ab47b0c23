package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	SaveTransaction(ctx context.Context, tx core.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]core.Transaction, error)

	SaveGoal(ctx context.Context, g core.SavingsGoal) error
	DeleteGoal(ctx context.Context, id string) error
	ListGoals(ctx context.Context) ([]core.SavingsGoal, error)

	SaveInvestment(ctx context.Context, inv core.Investment) error
	DeleteInvestment(ctx context.Context, id string) error
	ListInvestments(ctx context.Context) ([]core.Investment, error)

	Close() error
}

// Publisher emits record change notifications for the export worker.
type Publisher interface {
	PublishRecordChange(ctx context.Context, kind, id, month string) error
}

// Window is an inclusive [From, To] reporting range.
type Window struct {
	From core.Date
	To   core.Date
}

// LedgerService orchestrates record writes across storage and AMQP and
// computes read-side views with the ledger package. The clock is injected
// so report windows and timestamps are reproducible in tests.
type LedgerService struct {
	repo      Repository
	publisher Publisher
	now       func() time.Time
}

func NewLedgerService(repo Repository, publisher Publisher, now func() time.Time) *LedgerService {
	if now == nil {
		now = time.Now
	}
	return &LedgerService{
		repo:      repo,
		publisher: publisher,
		now:       now,
	}
}

// Now returns the service clock's current time.
func (s *LedgerService) Now() time.Time {
	return s.now()
}

type TransactionInput struct {
	Date          core.Date
	Description   string
	Amount        float64
	Currency      core.CurrencyCode
	CategoryCode  string
	PaymentMethod core.PaymentMethod
	Notes         string
}

// CreateTransaction validates and persists a new transaction, then
// publishes a change message. Publish failures are logged, not returned;
// the local write already succeeded.
func (s *LedgerService) CreateTransaction(ctx context.Context, in TransactionInput) (core.Transaction, error) {
	category, err := core.ResolveCategory(in.CategoryCode)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("resolve category: %w", err)
	}

	now := s.now()
	tx := core.Transaction{
		ID:            uuid.NewString(),
		Date:          in.Date,
		Description:   in.Description,
		Amount:        in.Amount,
		Currency:      in.Currency,
		Category:      category,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.publishChange(ctx, amqp.KindTransaction, tx.ID, tx.Date.MonthKey())
	return tx, nil
}

// DeleteTransaction removes a transaction and notifies the worker.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.publishChange(ctx, amqp.KindTransaction, id, "")
	return nil
}

type GoalInput struct {
	ID                  string // empty for a new goal
	Name                string
	TargetAmount        float64
	CurrentAmount       float64
	Currency            core.CurrencyCode
	Deadline            core.Date
	MonthlyContribution float64
}

// SaveGoal creates a goal or replaces the goal with the same ID. Updating a
// goal is a full re-save; only CreatedAt survives from the stored record.
func (s *LedgerService) SaveGoal(ctx context.Context, in GoalInput) (core.SavingsGoal, error) {
	now := s.now()
	g := core.SavingsGoal{
		ID:                  in.ID,
		Name:                in.Name,
		TargetAmount:        in.TargetAmount,
		CurrentAmount:       in.CurrentAmount,
		Currency:            in.Currency,
		Deadline:            in.Deadline,
		MonthlyContribution: in.MonthlyContribution,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	} else if created, ok, err := s.goalCreatedAt(ctx, g.ID); err != nil {
		return core.SavingsGoal{}, err
	} else if ok {
		g.CreatedAt = created
	}

	if err := g.Validate(); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("validate goal: %w", err)
	}
	if err := s.repo.SaveGoal(ctx, g); err != nil {
		return core.SavingsGoal{}, fmt.Errorf("save goal: %w", err)
	}

	s.publishChange(ctx, amqp.KindGoal, g.ID, "")
	return g, nil
}

func (s *LedgerService) goalCreatedAt(ctx context.Context, id string) (time.Time, bool, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("list goals: %w", err)
	}
	for _, g := range goals {
		if g.ID == id {
			return g.CreatedAt, true, nil
		}
	}
	return time.Time{}, false, nil
}

func (s *LedgerService) DeleteGoal(ctx context.Context, id string) error {
	if err := s.repo.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	s.publishChange(ctx, amqp.KindGoal, id, "")
	return nil
}

type InvestmentInput struct {
	ID              string // empty for a new investment
	Name            string
	AssetType       string
	RiskLevel       string
	PrincipalAmount float64
	CurrentValue    float64
	Currency        core.CurrencyCode
	PurchaseDate    core.Date
}

// SaveInvestment creates an investment or replaces the one with the same ID.
func (s *LedgerService) SaveInvestment(ctx context.Context, in InvestmentInput) (core.Investment, error) {
	now := s.now()
	inv := core.Investment{
		ID:              in.ID,
		Name:            in.Name,
		AssetType:       in.AssetType,
		RiskLevel:       in.RiskLevel,
		PrincipalAmount: in.PrincipalAmount,
		CurrentValue:    in.CurrentValue,
		Currency:        in.Currency,
		PurchaseDate:    in.PurchaseDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	if err := inv.Validate(); err != nil {
		return core.Investment{}, fmt.Errorf("validate investment: %w", err)
	}
	if err := s.repo.SaveInvestment(ctx, inv); err != nil {
		return core.Investment{}, fmt.Errorf("save investment: %w", err)
	}

	s.publishChange(ctx, amqp.KindInvestment, inv.ID, "")
	return inv, nil
}

func (s *LedgerService) DeleteInvestment(ctx context.Context, id string) error {
	if err := s.repo.DeleteInvestment(ctx, id); err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	s.publishChange(ctx, amqp.KindInvestment, id, "")
	return nil
}

func (s *LedgerService) publishChange(ctx context.Context, kind, id, month string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecordChange(ctx, kind, id, month); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record change",
			"kind", kind, "id", id, "error", err)
	}
}

// Snapshot is all stored records, loaded together.
type Snapshot struct {
	Transactions []core.Transaction
	Goals        []core.SavingsGoal
	Investments  []core.Investment
}

// Snapshot loads all three record types concurrently.
func (s *LedgerService) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		txs, err := s.repo.ListTransactions(ctx)
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		snap.Transactions = txs
		return nil
	})
	g.Go(func() error {
		goals, err := s.repo.ListGoals(ctx)
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		snap.Goals = goals
		return nil
	})
	g.Go(func() error {
		invs, err := s.repo.ListInvestments(ctx)
		if err != nil {
			return fmt.Errorf("list investments: %w", err)
		}
		snap.Investments = invs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// ListTransactions returns stored transactions for the window and optional
// currency filter.
func (s *LedgerService) ListTransactions(ctx context.Context, window Window, currency core.CurrencyCode) ([]core.Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return ledger.FilterByDate(filterByCurrency(txs, currency), window.From, window.To), nil
}

func (s *LedgerService) ListGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *LedgerService) ListInvestments(ctx context.Context) ([]core.Investment, error) {
	invs, err := s.repo.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return invs, nil
}

// ReportsByCurrency recomputes the monthly report for every currency that
// appears in the ledger. The export worker writes one sheet tab per entry.
func (s *LedgerService) ReportsByCurrency(ctx context.Context) (map[core.CurrencyCode][]ledger.MonthlyReport, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	reports := make(map[core.CurrencyCode][]ledger.MonthlyReport)
	for _, currency := range currencies(txs) {
		reports[currency] = ledger.GenerateMonthlyReport(filterByCurrency(txs, currency))
	}
	return reports, nil
}

func filterByCurrency(txs []core.Transaction, currency core.CurrencyCode) []core.Transaction {
	if currency == "" {
		return txs
	}
	var out []core.Transaction
	for _, tx := range txs {
		if tx.Currency == currency {
			out = append(out, tx)
		}
	}
	return out
}

// currencies returns the distinct currency codes in first-seen order.
func currencies(txs []core.Transaction) []core.CurrencyCode {
	seen := make(map[core.CurrencyCode]bool)
	var out []core.CurrencyCode
	for _, tx := range txs {
		if !seen[tx.Currency] {
			seen[tx.Currency] = true
			out = append(out, tx.Currency)
		}
	}
	return out
}
