package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

type fakeSource struct {
	reports map[core.CurrencyCode][]ledger.MonthlyReport
	err     error
}

func (f *fakeSource) ReportsByCurrency(ctx context.Context) (map[core.CurrencyCode][]ledger.MonthlyReport, error) {
	return f.reports, f.err
}

type fakeExporter struct {
	mu       sync.Mutex
	exported map[core.CurrencyCode]int
	fail     map[core.CurrencyCode]error
}

func newFakeExporter() *fakeExporter {
	return &fakeExporter{
		exported: make(map[core.CurrencyCode]int),
		fail:     make(map[core.CurrencyCode]error),
	}
}

func (f *fakeExporter) ExportMonthlyReports(ctx context.Context, currency core.CurrencyCode, reports []ledger.MonthlyReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail[currency]; err != nil {
		return err
	}
	f.exported[currency]++
	return nil
}

func twoCurrencyReports() map[core.CurrencyCode][]ledger.MonthlyReport {
	return map[core.CurrencyCode][]ledger.MonthlyReport{
		core.USD: {{Month: "2026-03", Income: 2500, Expense: 400}},
		core.ZWL: {{Month: "2026-03", Expense: 90000}},
	}
}

func TestHandleChangeMessageExportsAllCurrencies(t *testing.T) {
	exporter := newFakeExporter()
	w := NewExportWorker(&fakeSource{reports: twoCurrencyReports()}, exporter, time.Minute)

	msg := amqp.NewRecordChangeMessage(amqp.KindTransaction, "tx-1", "2026-03")
	if err := w.HandleChangeMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleChangeMessage: %v", err)
	}
	if exporter.exported[core.USD] != 1 || exporter.exported[core.ZWL] != 1 {
		t.Fatalf("exports = %v, want one per currency", exporter.exported)
	}
}

func TestHandleChangeMessageSkipsGoalChanges(t *testing.T) {
	exporter := newFakeExporter()
	w := NewExportWorker(&fakeSource{reports: twoCurrencyReports()}, exporter, time.Minute)

	for _, kind := range []string{amqp.KindGoal, amqp.KindInvestment} {
		msg := amqp.NewRecordChangeMessage(kind, "rec-1", "")
		if err := w.HandleChangeMessage(context.Background(), msg); err != nil {
			t.Fatalf("HandleChangeMessage(%s): %v", kind, err)
		}
	}
	if len(exporter.exported) != 0 {
		t.Fatalf("exports = %v, want none for goal/investment changes", exporter.exported)
	}
}

func TestExportAllContinuesPastFailures(t *testing.T) {
	exporter := newFakeExporter()
	exporter.fail[core.USD] = errors.New("tab missing")
	w := NewExportWorker(&fakeSource{reports: twoCurrencyReports()}, exporter, time.Minute)

	err := w.ExportAll(context.Background())
	if err == nil {
		t.Fatal("expected error for failed currency")
	}
	if exporter.exported[core.ZWL] != 1 {
		t.Fatal("healthy currency should still be exported")
	}
}

func TestExportAllPropagatesSourceError(t *testing.T) {
	w := NewExportWorker(&fakeSource{err: errors.New("db locked")}, newFakeExporter(), time.Minute)
	if err := w.ExportAll(context.Background()); err == nil {
		t.Fatal("expected source error")
	}
}

type blockingConsumer struct{}

func (blockingConsumer) ConsumeRecordChanges(ctx context.Context, handler func(*amqp.RecordChangeMessage) error) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRunStopsOnContextCancel(t *testing.T) {
	w := NewExportWorker(&fakeSource{reports: twoCurrencyReports()}, newFakeExporter(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, blockingConsumer{}) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
