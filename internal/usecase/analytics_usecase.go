package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"clinic-dispatch/internal/analytics"
	"clinic-dispatch/internal/converter"
	"clinic-dispatch/internal/delivery/dto"
	"clinic-dispatch/internal/domain/entity"
	"clinic-dispatch/internal/domain/repository"
	"clinic-dispatch/pkg/clock"
	"clinic-dispatch/pkg/lru"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrQueryRequired = errors.New("search query is required")

const (
	// statsLookback bounds how far back wait-time stats reach.
	statsLookback = 24 * time.Hour

	// rollingWindow is the number of most recent wait times folded into the
	// rolling average.
	rollingWindow = 20

	// statsCacheBucket quantizes the stats cache key so entries are reused
	// within the same minute.
	statsCacheBucket = time.Minute

	// searchThreshold is the maximum edit distance for a fuzzy doctor match.
	searchThreshold = 3
)

type AnalyticsUsecase interface {
	WaitTimeStats(ctx context.Context) (*dto.WaitTimeStatsResponse, error)
	ActiveTickets(ctx context.Context) (*dto.ActiveTicketsResponse, error)
	SearchDoctors(ctx context.Context, query string) (*dto.DoctorSearchResponse, error)
}

type analyticsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	ticketRepo   repository.TicketRepository
	doctorRepo   repository.DoctorRepository
	clk          clock.Clock
	activeWindow time.Duration

	// statsCache is unsynchronized; all access goes through cacheMu.
	cacheMu    sync.Mutex
	statsCache *lru.Cache[string, dto.WaitTimeStatsResponse]
}

func NewAnalyticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ticketRepo repository.TicketRepository,
	doctorRepo repository.DoctorRepository,
	clk clock.Clock,
	activeWindow time.Duration,
	statsCacheSize int,
) AnalyticsUsecase {
	return &analyticsUsecase{
		db:           db,
		log:          log,
		ticketRepo:   ticketRepo,
		doctorRepo:   doctorRepo,
		clk:          clk,
		activeWindow: activeWindow,
		statsCache:   lru.New[string, dto.WaitTimeStatsResponse](statsCacheSize),
	}
}

// WaitTimeStats reports wait-time statistics over tickets completed in the
// lookback window. Results are memoized per minute in the LRU cache: the
// board polls this endpoint far more often than the numbers change.
func (u *analyticsUsecase) WaitTimeStats(ctx context.Context) (*dto.WaitTimeStatsResponse, error) {
	now := u.clk.Now()
	cacheKey := fmt.Sprintf("wait-stats:%d", now.Truncate(statsCacheBucket).Unix())
	u.cacheMu.Lock()
	cached, ok := u.statsCache.Get(cacheKey)
	u.cacheMu.Unlock()
	if ok {
		return &cached, nil
	}

	tickets, err := u.ticketRepo.FindCompletedSince(u.db.WithContext(ctx), now.Add(-statsLookback))
	if err != nil {
		u.log.Warnf("Failed to load completed tickets: %+v", err)
		return nil, err
	}

	stats := analytics.ComputeWaitTimes(tickets)

	waits := make([]float64, 0, len(tickets))
	for _, t := range tickets {
		if t.CompletedAt == nil {
			continue
		}
		waits = append(waits, t.CompletedAt.Sub(t.EffectiveCreatedAt()).Minutes())
	}

	resp := dto.WaitTimeStatsResponse{
		Average:       stats.Average,
		Median:        stats.Median,
		Max:           stats.Max,
		Count:         stats.Count,
		RollingAvg:    analytics.MovingAverage(waits, rollingWindow),
		RollingWindow: rollingWindow,
	}

	u.cacheMu.Lock()
	u.statsCache.Put(cacheKey, resp)
	u.cacheMu.Unlock()
	return &resp, nil
}

// ActiveTickets returns open and booked tickets whose intake time falls
// within the configured active window.
func (u *analyticsUsecase) ActiveTickets(ctx context.Context) (*dto.ActiveTicketsResponse, error) {
	tickets, err := u.ticketRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load active tickets: %+v", err)
		return nil, err
	}

	windowMinutes := int(u.activeWindow.Minutes())
	active := analytics.ActiveTickets(tickets, windowMinutes, u.clk.Now())

	return &dto.ActiveTicketsResponse{
		Tickets: converter.TicketsToResponses(active),
		Total:   len(active),
	}, nil
}

// SearchDoctors fuzzy-matches the roster by name, ascending by edit distance.
func (u *analyticsUsecase) SearchDoctors(ctx context.Context, query string) (*dto.DoctorSearchResponse, error) {
	if query == "" {
		return nil, ErrQueryRequired
	}

	roster, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load roster: %+v", err)
		return nil, err
	}

	matches := analytics.FuzzySearch(query, roster, func(d entity.Doctor) string {
		return d.Name
	}, searchThreshold)

	resp := &dto.DoctorSearchResponse{
		Matches: make([]dto.DoctorSearchMatch, 0, len(matches)),
		Total:   len(matches),
	}
	for i := range matches {
		resp.Matches = append(resp.Matches, dto.DoctorSearchMatch{
			Doctor:   *converter.DoctorToResponse(&matches[i].Item),
			Distance: matches[i].Distance,
		})
	}
	return resp, nil
}
