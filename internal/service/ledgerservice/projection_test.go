package ledgerservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workmesh/workmesh/internal/domain"
)

func jobID(id int) *int { return &id }

func TestEarningsFor(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: 1, Kind: KindJobPayment, UserID: 1, JobID: jobID(10), Amount: 50, Status: CompletedStatus},
		{ID: 2, Kind: KindJobPayment, UserID: 2, JobID: jobID(11), Amount: 70, Status: CompletedStatus},
		{ID: 3, Kind: KindWithdrawal, UserID: 1, Amount: -20, Status: CompletedStatus},
		{ID: 4, Kind: KindJobPayment, UserID: 1, JobID: jobID(12), Amount: 25, Status: FailedStatus},
		{ID: 5, Kind: KindJobPosting, UserID: 1, JobID: jobID(13), Amount: -9.99, Status: CompletedStatus},
	}

	tests := []struct {
		name     string
		userID   int
		expected float64
	}{
		{name: "Only completed job payments count", userID: 1, expected: 50},
		{name: "Other user is unaffected", userID: 2, expected: 70},
		{name: "User without transactions", userID: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EarningsFor(tt.userID, transactions))
		})
	}
}

func TestAvailableFor(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: 1, Kind: KindJobPayment, UserID: 1, JobID: jobID(10), Amount: 100, Status: CompletedStatus},
		{ID: 2, Kind: KindWithdrawal, UserID: 1, Amount: -40, Status: CompletedStatus},
		{ID: 3, Kind: KindJobPosting, UserID: 1, JobID: jobID(11), Amount: -9.99, Status: CompletedStatus},
		{ID: 4, Kind: KindWithdrawal, UserID: 1, Amount: -15, Status: FailedStatus},
	}

	// Posting fees and failed withdrawals do not reduce the withdrawable
	// balance.
	assert.Equal(t, 60.0, AvailableFor(1, transactions))
	assert.Equal(t, 0.0, AvailableFor(2, transactions))
}

func TestAvailableForIsOrderIndependent(t *testing.T) {
	a := []domain.Transaction{
		{ID: 1, Kind: KindJobPayment, UserID: 1, Amount: 50, Status: CompletedStatus},
		{ID: 2, Kind: KindWithdrawal, UserID: 1, Amount: -30, Status: CompletedStatus},
		{ID: 3, Kind: KindJobPayment, UserID: 2, Amount: 10, Status: CompletedStatus},
	}
	b := []domain.Transaction{a[2], a[1], a[0]}

	assert.Equal(t, AvailableFor(1, a), AvailableFor(1, b))
	assert.Equal(t, AvailableFor(2, a), AvailableFor(2, b))
}

func TestPlatformRevenue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour)
	thisWeek := now.AddDate(0, 0, -3)
	longAgo := now.AddDate(0, 0, -30)

	transactions := []domain.Transaction{
		{ID: 1, Kind: KindJobPosting, UserID: 1, Amount: -10, Status: CompletedStatus, CreatedAt: today},
		{ID: 2, Kind: KindJobPayment, UserID: 2, Amount: 100, Status: CompletedStatus, CreatedAt: thisWeek},
		{ID: 3, Kind: KindJobPosting, UserID: 1, Amount: -10, Status: CompletedStatus, CreatedAt: longAgo},
		{ID: 4, Kind: KindWithdrawal, UserID: 2, Amount: -50, Status: CompletedStatus, CreatedAt: today},
		{ID: 5, Kind: KindJobPosting, UserID: 3, Amount: -10, Status: PendingStatus, CreatedAt: today},
	}

	summary := PlatformRevenue(transactions, 0.1, now)

	// 10 (fee today) + 10 (fee a month ago) + 10% of the 100 payment.
	assert.InDelta(t, 30.0, summary.Total, 1e-9)
	assert.InDelta(t, 20.0, summary.Week, 1e-9)
	assert.InDelta(t, 10.0, summary.Today, 1e-9)
	// today ÷ (week/7): 10 / (20/7) * 100
	assert.InDelta(t, 350.0, summary.GrowthRate, 1e-9)
}

func TestPlatformRevenueEmptyWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{ID: 1, Kind: KindJobPosting, UserID: 1, Amount: -10, Status: CompletedStatus, CreatedAt: now.AddDate(0, 0, -30)},
	}

	summary := PlatformRevenue(transactions, 0.1, now)

	assert.Equal(t, 10.0, summary.Total)
	assert.Equal(t, 0.0, summary.Week)
	assert.Equal(t, 0.0, summary.GrowthRate)
}

func TestPlatformRevenueDeterminism(t *testing.T) {
	now := time.Now()
	transactions := []domain.Transaction{
		{ID: 1, Kind: KindJobPosting, UserID: 1, Amount: -9.99, Status: CompletedStatus, CreatedAt: now},
		{ID: 2, Kind: KindJobPayment, UserID: 2, Amount: 123.45, Status: CompletedStatus, CreatedAt: now},
	}

	first := PlatformRevenue(transactions, 0.1, now)
	second := PlatformRevenue(transactions, 0.1, now)
	assert.Equal(t, first, second)
}
