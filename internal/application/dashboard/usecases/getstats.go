// Package usecases holds the dashboard aggregation.
package usecases

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sanathkumar-crypto/issue-tracker/internal/domain/issue"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/logger"
	"github.com/sanathkumar-crypto/issue-tracker/internal/shared/utils"
)

const trendDays = 30

type TrendPoint struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
	Closed  int    `json:"closed"`
}

type Stats struct {
	TotalTasks        int            `json:"totalTasks"`
	OpenTasks         int            `json:"openTasks"`
	ClosedTasks       int            `json:"closedTasks"`
	ClosedThisWeek    int            `json:"closedThisWeek"`
	ClosedToday       int            `json:"closedToday"`
	CreatedToday      int            `json:"createdToday"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
	HospitalCounts    map[string]int `json:"hospitalCounts"`
	AvgResolutionTime float64        `json:"avgResolutionTime"`
	TrendData         []TrendPoint   `json:"trendData"`
}

type GetStatsUseCase struct {
	issueRepo issue.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewGetStatsUseCase(issueRepo issue.Repository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{issueRepo: issueRepo, logger: logger, now: time.Now}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*Stats, error) {
	issues, err := uc.issueRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load issues for dashboard", "error", err)
		return nil, err
	}

	// Day boundaries are local midnight, boundary inclusive.
	today := utils.StartOfDay(uc.now())
	oneWeekAgo := today.AddDate(0, 0, -7)
	oneDayAgo := today.AddDate(0, 0, -1)

	stats := &Stats{
		TotalTasks:     len(issues),
		CategoryCounts: map[string]int{},
		HospitalCounts: map[string]int{},
	}

	trend := make(map[string]*TrendPoint, trendDays)
	for i := 0; i < trendDays; i++ {
		date := today.AddDate(0, 0, -(trendDays - 1 - i)).Format("2006-01-02")
		trend[date] = &TrendPoint{Date: date}
	}

	totalResolutionDays := 0
	resolvedCount := 0

	for _, i := range issues {
		if i.IsClosed() {
			stats.ClosedTasks++
		} else {
			stats.OpenTasks++
		}

		category := i.Category
		if category == "" {
			category = "Other"
		}
		stats.CategoryCounts[category]++

		hospital := i.HospitalUnit
		if hospital == "" {
			hospital = "Unknown"
		}
		stats.HospitalCounts[hospital]++

		logged, loggedOK := i.LoggedAt()
		closed, closedOK := i.ClosedAt()

		if closedOK {
			if !closed.Before(oneWeekAgo) {
				stats.ClosedThisWeek++
			}
			if !closed.Before(oneDayAgo) {
				stats.ClosedToday++
			}
			if loggedOK {
				totalResolutionDays += int(closed.Sub(logged).Hours() / 24)
				resolvedCount++
			}
			if point, ok := trend[closed.Format("2006-01-02")]; ok {
				point.Closed++
			}
		}

		if loggedOK {
			if !logged.Before(oneDayAgo) {
				stats.CreatedToday++
			}
			if point, ok := trend[logged.Format("2006-01-02")]; ok {
				point.Created++
			}
		}
	}

	if resolvedCount > 0 {
		avg := float64(totalResolutionDays) / float64(resolvedCount)
		stats.AvgResolutionTime = math.Round(avg*10) / 10
	}

	stats.TrendData = make([]TrendPoint, 0, trendDays)
	for _, point := range trend {
		stats.TrendData = append(stats.TrendData, *point)
	}
	sort.Slice(stats.TrendData, func(a, b int) bool {
		return stats.TrendData[a].Date < stats.TrendData[b].Date
	})

	return stats, nil
}
