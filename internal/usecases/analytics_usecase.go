package usecases

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/domain/repositories"
)

// AnalyticsUsecase computes the super admin rollups on every request
type AnalyticsUsecase struct {
	merchantRepo          repositories.MerchantRepository
	alertRepo             repositories.AlertRepository
	platformMonthlyGrowth float64
}

func NewAnalyticsUsecase(
	merchantRepo repositories.MerchantRepository,
	alertRepo repositories.AlertRepository,
	platformMonthlyGrowth float64,
) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		merchantRepo:          merchantRepo,
		alertRepo:             alertRepo,
		platformMonthlyGrowth: platformMonthlyGrowth,
	}
}

// Overview returns the platform headline numbers.
func (u *AnalyticsUsecase) Overview(ctx context.Context) (*entities.PlatformOverview, error) {
	merchants, err := u.merchantRepo.List(ctx, entities.MerchantFilter{})
	if err != nil {
		return nil, err
	}
	activeAlerts, err := u.alertRepo.List(ctx, entities.AlertFilter{Status: string(entities.AlertStatusActive)})
	if err != nil {
		return nil, err
	}
	overview := BuildOverview(merchants, len(activeAlerts), u.platformMonthlyGrowth)
	return &overview, nil
}

// Verticals groups approved merchants by vertical.
func (u *AnalyticsUsecase) Verticals(ctx context.Context) ([]entities.VerticalAnalytics, error) {
	merchants, err := u.approvedMerchants(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByVertical(merchants), nil
}

// MerchantPerformance ranks approved merchants by TPV.
func (u *AnalyticsUsecase) MerchantPerformance(ctx context.Context) ([]entities.MerchantPerformance, error) {
	merchants, err := u.approvedMerchants(ctx)
	if err != nil {
		return nil, err
	}
	return RankMerchantPerformance(merchants), nil
}

func (u *AnalyticsUsecase) approvedMerchants(ctx context.Context) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx, entities.MerchantFilter{KYCStatus: string(entities.KYCStatusApproved)})
}

// BuildOverview counts and sums over every merchant, not only approved ones.
func BuildOverview(merchants []*entities.Merchant, activeAlerts int, monthlyGrowth float64) entities.PlatformOverview {
	overview := entities.PlatformOverview{
		TotalMerchants: len(merchants),
		ActiveAlerts:   activeAlerts,
		MonthlyGrowth:  monthlyGrowth,
	}

	churn := newAverage()
	tpv := decimal.Zero
	for _, m := range merchants {
		switch m.KYCStatus {
		case entities.KYCStatusApproved:
			overview.ActiveMerchants++
		case entities.KYCStatusPending:
			overview.PendingKYC++
		}
		overview.TotalSubscribers += m.ActiveSubscribers
		tpv = tpv.Add(decimal.NewFromFloat(m.TPV))
		churn.add(m.ChurnRate)
	}
	overview.TotalTPV = tpv.InexactFloat64()
	overview.AvgChurnRate = churn.String()
	return overview
}

// GroupByVertical aggregates approved merchants per vertical. Callers pass
// approved merchants; anything else is skipped. Groups keep the order in
// which their vertical first appears.
func GroupByVertical(merchants []*entities.Merchant) []entities.VerticalAnalytics {
	type group struct {
		stats  entities.VerticalAnalytics
		tpv    decimal.Decimal
		churn  *average
		growth *average
	}

	var order []string
	groups := make(map[string]*group)
	for _, m := range merchants {
		if !m.IsApproved() {
			continue
		}
		g, ok := groups[m.Vertical]
		if !ok {
			g = &group{
				stats:  entities.VerticalAnalytics{Name: m.Vertical},
				tpv:    decimal.Zero,
				churn:  newAverage(),
				growth: newAverage(),
			}
			groups[m.Vertical] = g
			order = append(order, m.Vertical)
		}
		g.stats.Merchants++
		g.stats.Subscribers += m.ActiveSubscribers
		g.tpv = g.tpv.Add(decimal.NewFromFloat(m.TPV))
		g.churn.add(m.ChurnRate)
		g.growth.add(m.MonthlyGrowth)
	}

	out := make([]entities.VerticalAnalytics, 0, len(order))
	for _, name := range order {
		g := groups[name]
		g.stats.TPV = g.tpv.InexactFloat64()
		g.stats.AvgChurn = g.churn.String()
		g.stats.AvgGrowth = g.growth.String()
		out = append(out, g.stats)
	}
	return out
}

// RankMerchantPerformance projects approved merchants and sorts them by TPV,
// highest first. Ties keep their input order.
func RankMerchantPerformance(merchants []*entities.Merchant) []entities.MerchantPerformance {
	out := make([]entities.MerchantPerformance, 0, len(merchants))
	for _, m := range merchants {
		if !m.IsApproved() {
			continue
		}
		out = append(out, entities.MerchantPerformance{
			ID:                m.ID,
			Name:              m.Name,
			Vertical:          m.Vertical,
			ActiveSubscribers: m.ActiveSubscribers,
			TPV:               m.TPV,
			ChurnRate:         m.ChurnRate,
			MonthlyGrowth:     m.MonthlyGrowth,
			AvgARPU:           m.AvgARPU,
			HealthScore:       m.HealthScore(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TPV > out[j].TPV })
	return out
}

// average accumulates float inputs as decimals and renders the mean with two
// decimal places. An empty average renders "0.00".
type average struct {
	sum   decimal.Decimal
	count int64
}

func newAverage() *average {
	return &average{sum: decimal.Zero}
}

func (a *average) add(v float64) {
	a.sum = a.sum.Add(decimal.NewFromFloat(v))
	a.count++
}

func (a *average) String() string {
	if a.count == 0 {
		return decimal.Zero.StringFixed(2)
	}
	return a.sum.Div(decimal.NewFromInt(a.count)).StringFixed(2)
}
