package ledgerservice

import (
	"time"

	"github.com/workmesh/workmesh/internal/domain"
)

// RevenueSummary is the platform take derived from the ledger. GrowthRate
// compares today's revenue to the daily average of the trailing week, as a
// percentage.
type RevenueSummary struct {
	Total      float64
	Week       float64
	Today      float64
	GrowthRate float64
}

// EarningsFor sums completed job payment credits for the user. It never
// mutates its input; given the same entries it always returns the same value.
func EarningsFor(userID int, transactions []domain.Transaction) float64 {
	var earnings float64
	for _, t := range transactions {
		if t.UserID == userID && t.Kind == KindJobPayment && t.Status == CompletedStatus && t.Amount > 0 {
			earnings += t.Amount
		}
	}
	return earnings
}

// AvailableFor is the balance a user may withdraw: completed job payment
// credits plus completed withdrawal debits (stored negative).
func AvailableFor(userID int, transactions []domain.Transaction) float64 {
	var available float64
	for _, t := range transactions {
		if t.UserID != userID || t.Status != CompletedStatus {
			continue
		}
		switch t.Kind {
		case KindJobPayment, KindWithdrawal:
			available += t.Amount
		}
	}
	return available
}

// PlatformRevenue folds the platform take out of every completed entry:
// the full posting fee plus takeRate of each job payment.
func PlatformRevenue(transactions []domain.Transaction, takeRate float64, now time.Time) RevenueSummary {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -6)

	var summary RevenueSummary
	for _, t := range transactions {
		if t.Status != CompletedStatus {
			continue
		}
		var take float64
		switch t.Kind {
		case KindJobPosting:
			take = -t.Amount
		case KindJobPayment:
			take = t.Amount * takeRate
		default:
			continue
		}
		summary.Total += take
		if !t.CreatedAt.Before(weekStart) {
			summary.Week += take
		}
		if !t.CreatedAt.Before(dayStart) {
			summary.Today += take
		}
	}

	if summary.Week > 0 {
		summary.GrowthRate = summary.Today / (summary.Week / 7) * 100
	}
	return summary
}
