package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/smallbiznis/reparo/internal/clock"
	"github.com/smallbiznis/reparo/internal/ledger/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ledger.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddEntryRequest) (domain.LedgerEntry, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.LedgerEntry{}, domain.ErrInvalidTitle
	}
	if req.Amount < 0 {
		return domain.LedgerEntry{}, domain.ErrInvalidAmount
	}

	entryType := domain.EntryType(strings.ToLower(strings.TrimSpace(string(req.Type))))
	switch entryType {
	case domain.EntryTypeIncome, domain.EntryTypeExpense:
	default:
		return domain.LedgerEntry{}, domain.ErrInvalidType
	}

	ts := req.Timestamp
	if ts == 0 {
		ts = s.clock.Now().UnixMilli()
	}

	entry := domain.LedgerEntry{
		Title:     title,
		Amount:    req.Amount,
		Type:      entryType,
		Note:      req.Note,
		Timestamp: ts,
	}

	if err := s.repo.Insert(ctx, s.db, &entry); err != nil {
		return domain.LedgerEntry{}, err
	}

	s.log.Debug("ledger entry added",
		zap.Int64("id", entry.ID),
		zap.String("type", string(entry.Type)),
	)
	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.repo.List(ctx, s.db)
}

// Totals sums the book per entry type. Amounts are stored positive and are
// never negated here; the dashboard applies the sign.
func (s *Service) Totals(ctx context.Context) (domain.Totals, error) {
	entries, err := s.repo.List(ctx, s.db)
	if err != nil {
		return domain.Totals{}, err
	}

	var totals domain.Totals
	for _, entry := range entries {
		switch entry.Type {
		case domain.EntryTypeIncome:
			totals.Income += entry.Amount
		case domain.EntryTypeExpense:
			totals.Expense += entry.Amount
		}
	}
	return totals, nil
}

const csvHeader = "title,amount,type,note,timestamp"

// ExportCSV writes the whole book, newest first. String fields are always
// double-quoted with embedded quotes doubled; the timestamp is rendered as
// local date-time text rather than the raw epoch value.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.repo.List(ctx, s.db)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		line := strings.Join([]string{
			quoteField(entry.Title),
			formatAmount(entry.Amount),
			string(entry.Type),
			quoteField(entry.Note),
			formatTimestamp(entry.Timestamp),
		}, ",")
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// formatAmount keeps at least one decimal digit so 50 exports as 50.0.
func formatAmount(amount float64) string {
	formatted := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
