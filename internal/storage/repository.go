package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists transactions, savings goals and investments.
// Dates are stored as "2006-01-02" text; a row whose date no longer parses
// is returned with a zero Date so reporting can skip it.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveTransaction inserts tx or, when the id already exists, replaces it.
func (r *SQLiteRepository) SaveTransaction(ctx context.Context, tx core.Transaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions
			(id, date, description, amount, currency, category, polarity, payment_method, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID,
		tx.Date.String(),
		tx.Description,
		tx.Amount,
		string(tx.Currency),
		tx.Category.Code,
		string(tx.Category.Polarity),
		string(tx.PaymentMethod),
		tx.Notes,
		tx.CreatedAt.UTC().Format(time.RFC3339),
		tx.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListTransactions returns every stored transaction ordered by date.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, description, amount, currency, category, polarity, payment_method, notes, created_at, updated_at
		FROM transactions
		ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx                   core.Transaction
			date, polarity       string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&tx.ID, &date, &tx.Description, &tx.Amount, &tx.Currency,
			&tx.Category.Code, &polarity, &tx.PaymentMethod, &tx.Notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Category.Polarity = core.Polarity(polarity)
		tx.Date = parseStoredDate(ctx, "transaction", tx.ID, date)
		tx.CreatedAt = parseStoredTime(createdAt)
		tx.UpdatedAt = parseStoredTime(updatedAt)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// SaveGoal inserts g or replaces the goal with the same id.
func (r *SQLiteRepository) SaveGoal(ctx context.Context, g core.SavingsGoal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO savings_goals
			(id, name, target_amount, current_amount, currency, deadline, monthly_contribution, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		string(g.Currency),
		g.Deadline.String(),
		g.MonthlyContribution,
		g.CreatedAt.UTC().Format(time.RFC3339),
		g.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, target_amount, current_amount, currency, deadline, monthly_contribution, created_at, updated_at
		FROM savings_goals
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []core.SavingsGoal
	for rows.Next() {
		var (
			g                    core.SavingsGoal
			deadline             string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Currency,
			&deadline, &g.MonthlyContribution, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		// An empty deadline means none was set.
		if deadline != "" {
			g.Deadline = parseStoredDate(ctx, "goal", g.ID, deadline)
		}
		g.CreatedAt = parseStoredTime(createdAt)
		g.UpdatedAt = parseStoredTime(updatedAt)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

// SaveInvestment inserts inv or replaces the investment with the same id.
func (r *SQLiteRepository) SaveInvestment(ctx context.Context, inv core.Investment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO investments
			(id, name, asset_type, risk_level, principal_amount, current_value, currency, purchase_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Name,
		inv.AssetType,
		inv.RiskLevel,
		inv.PrincipalAmount,
		inv.CurrentValue,
		string(inv.Currency),
		inv.PurchaseDate.String(),
		inv.CreatedAt.UTC().Format(time.RFC3339),
		inv.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save investment: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteInvestment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete investment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQLiteRepository) ListInvestments(ctx context.Context) ([]core.Investment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, asset_type, risk_level, principal_amount, current_value, currency, purchase_date, created_at, updated_at
		FROM investments
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query investments: %w", err)
	}
	defer rows.Close()

	var invs []core.Investment
	for rows.Next() {
		var (
			inv                  core.Investment
			purchaseDate         string
			createdAt, updatedAt string
		)
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.AssetType, &inv.RiskLevel, &inv.PrincipalAmount,
			&inv.CurrentValue, &inv.Currency, &purchaseDate, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		if purchaseDate != "" {
			inv.PurchaseDate = parseStoredDate(ctx, "investment", inv.ID, purchaseDate)
		}
		inv.CreatedAt = parseStoredTime(createdAt)
		inv.UpdatedAt = parseStoredTime(updatedAt)
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investments: %w", err)
	}
	return invs, nil
}

func parseStoredDate(ctx context.Context, kind, id, s string) core.Date {
	d, err := core.ParseDate(s)
	if err != nil {
		slog.WarnContext(ctx, "Stored date does not parse, record will be skipped by reports",
			"kind", kind, "id", id, "date", s)
		return core.Date{}
	}
	return d
}

func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
