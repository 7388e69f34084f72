package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "bizledger/internal/errors"
	"bizledger/internal/models"
)

// UncategorizedBucket labels transactions with no expense category in the
// profit/loss report.
const UncategorizedBucket = "uncategorized"

// ProfitLossRow is the per-category result of the profit/loss aggregation.
type ProfitLossRow struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// ProfitLossSummary totals the report across all categories.
type ProfitLossSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// ProfitLossReport groups transaction totals by expense category within a
// date range.
type ProfitLossReport struct {
	From    time.Time         `json:"from"`
	To      time.Time         `json:"to"`
	Rows    []ProfitLossRow   `json:"rows"`
	Summary ProfitLossSummary `json:"summary"`
}

// reportService computes aggregate views over transactions.
type reportService struct {
	db       *gorm.DB
	profiles BusinessProfileServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, profiles BusinessProfileServicer) ReportServicer {
	return &reportService{db: db, profiles: profiles}
}

type categoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// ProfitLoss sums PAYMENT amounts (revenue) and PAYOUT amounts (expenses)
// grouped by expense category name within [from, to]. Missing bounds default
// to calendar year-to-date. Rows cover the union of categories seen in
// either aggregate.
func (s *reportService) ProfitLoss(userID string, from, to *time.Time) (*ProfitLossReport, error) {
	profile, err := s.profiles.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	end := now
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	revenues, err := s.totalsByCategory(profile.ID, models.TransactionTypePayment, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.totalsByCategory(profile.ID, models.TransactionTypePayout, start, end)
	if err != nil {
		return nil, err
	}

	rows := map[string]*ProfitLossRow{}
	summary := ProfitLossSummary{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range revenues {
		row := rowFor(rows, r.Category)
		row.Revenue = row.Revenue.Add(r.Total)
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Total)
	}
	for _, e := range expenses {
		row := rowFor(rows, e.Category)
		row.Expenses = row.Expenses.Add(e.Total)
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Total)
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses)

	out := make([]ProfitLossRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })

	return &ProfitLossReport{From: start, To: end, Rows: out, Summary: summary}, nil
}

func rowFor(rows map[string]*ProfitLossRow, category string) *ProfitLossRow {
	if category == "" {
		category = UncategorizedBucket
	}
	row, ok := rows[category]
	if !ok {
		row = &ProfitLossRow{
			Category: category,
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
		}
		rows[category] = row
	}
	return row
}

func (s *reportService) totalsByCategory(profileID string, txType models.TransactionType, start, end time.Time) ([]categoryTotal, error) {
	var totals []categoryTotal
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(expense_categories.name, '') AS category, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN expense_categories ON expense_categories.id = transactions.expense_category_id").
		Where("transactions.business_profile_id = ? AND transactions.type = ?", profileID, txType).
		Where("transactions.date >= ? AND transactions.date <= ?", start, end).
		Group("expense_categories.name").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return totals, nil
}
