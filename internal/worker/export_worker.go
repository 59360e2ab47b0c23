// Package worker keeps the Google Sheets report mirror in sync with the
// ledger.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// ReportSource recomputes the per-currency monthly reports from storage.
type ReportSource interface {
	ReportsByCurrency(ctx context.Context) (map[core.CurrencyCode][]ledger.MonthlyReport, error)
}

// Exporter writes one currency's report rows to the spreadsheet.
type Exporter interface {
	ExportMonthlyReports(ctx context.Context, currency core.CurrencyCode, reports []ledger.MonthlyReport) error
}

// Consumer delivers record change messages until the context ends.
type Consumer interface {
	ConsumeRecordChanges(ctx context.Context, handler func(*amqp.RecordChangeMessage) error) error
}

// ExportWorker re-exports every currency's monthly report whenever a
// transaction changes, with a periodic full export as catch-up for
// messages lost while the worker was down.
type ExportWorker struct {
	source   ReportSource
	exporter Exporter
	interval time.Duration
}

func NewExportWorker(source ReportSource, exporter Exporter, interval time.Duration) *ExportWorker {
	return &ExportWorker{
		source:   source,
		exporter: exporter,
		interval: interval,
	}
}

// HandleChangeMessage processes one record change. Goal and investment
// changes do not move the monthly report, so only transactions trigger an
// export.
func (w *ExportWorker) HandleChangeMessage(ctx context.Context, msg *amqp.RecordChangeMessage) error {
	if msg.Kind != amqp.KindTransaction {
		slog.DebugContext(ctx, "Change does not affect monthly reports, skipping",
			"kind", msg.Kind, "id", msg.ID)
		return nil
	}

	slog.InfoContext(ctx, "Processing transaction change",
		"id", msg.ID, "month", msg.Month)
	return w.ExportAll(ctx)
}

// ExportAll recomputes and writes the monthly report for every currency.
// Per-currency failures are collected so one bad tab does not block the rest.
func (w *ExportWorker) ExportAll(ctx context.Context) error {
	reports, err := w.source.ReportsByCurrency(ctx)
	if err != nil {
		return fmt.Errorf("compute reports: %w", err)
	}

	var errs []error
	for currency, rows := range reports {
		if err := w.exporter.ExportMonthlyReports(ctx, currency, rows); err != nil {
			slog.ErrorContext(ctx, "Failed to export currency report",
				"currency", currency, "error", err)
			errs = append(errs, fmt.Errorf("export %s: %w", currency, err))
			continue
		}
		slog.InfoContext(ctx, "Exported monthly report",
			"currency", currency, "months", len(rows))
	}
	return errors.Join(errs...)
}

// Run consumes change messages and ticks a periodic full export until the
// context is cancelled. Either loop failing stops the other.
func (w *ExportWorker) Run(ctx context.Context, consumer Consumer) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.ConsumeRecordChanges(ctx, func(msg *amqp.RecordChangeMessage) error {
			return w.HandleChangeMessage(ctx, msg)
		})
	})

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.ExportAll(ctx); err != nil {
					// Periodic exports retry on the next tick.
					slog.ErrorContext(ctx, "Periodic export failed", "error", err)
				}
			}
		}
	})

	return g.Wait()
}
