package aggregating

import (
	"context"
	"sync"
	"time"

	"github.com/nat-prohmpiriya/central-marketing-dashboard/infrastructure/repository"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/config"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/internal/domain"
	"github.com/nat-prohmpiriya/central-marketing-dashboard/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// EntityFailure records one entity whose facts could not be read. The refresh
// continues past it; only the persistence layer is allowed to abort a run.
type EntityFailure struct {
	Entity *domain.Entity
	Err    error
}

// Result carries every window built in one pass plus the entities skipped on
// read errors.
type Result struct {
	Windows  []*domain.AggregateWindow
	Failures []EntityFailure
}

// Service builds the trailing and prior windows for every entity in scope.
type Service interface {
	BuildWindows(ctx context.Context, entities []*domain.Entity, refDate time.Time, windowDays []int) (*Result, error)
}

type service struct {
	orderRepository repository.OrderFactRepository
	adRepository    repository.AdFactRepository
	maxConcurrent   int
}

func NewService(
	cfg config.Mart,
	orderRepository repository.OrderFactRepository,
	adRepository repository.AdFactRepository,
) Service {
	maxConcurrent := cfg.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}

	return &service{
		orderRepository: orderRepository,
		adRepository:    adRepository,
		maxConcurrent:   maxConcurrent,
	}
}

// BuildWindows fetches each entity's facts once over the widest span and
// slices every configured window length out of the same fetch. Entities with
// no facts still produce zero-valued windows so downstream ratios degrade to
// null instead of the entity silently disappearing.
func (s *service) BuildWindows(ctx context.Context, entities []*domain.Entity, refDate time.Time, windowDays []int) (*Result, error) {
	refDate = domain.Day(refDate)

	maxDays := 0
	for _, d := range windowDays {
		if d > maxDays {
			maxDays = d
		}
	}
	if maxDays == 0 {
		return &Result{}, nil
	}

	// The prior window of the longest length reaches back 2*maxDays-1 days.
	fetchStart := refDate.AddDate(0, 0, -(2*maxDays - 1))

	scope := append([]*domain.Entity{}, entities...)
	scope = append(scope, platformEntities(entities)...)

	semaphore := make(chan struct{}, s.maxConcurrent)

	var wg sync.WaitGroup
	var mutex sync.Mutex

	result := &Result{
		Windows: make([]*domain.AggregateWindow, 0, len(scope)*len(windowDays)),
	}

	for _, entity := range scope {
		wg.Add(1)

		go func(entity *domain.Entity) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			windows, err := s.buildEntityWindows(ctx, entity, refDate, fetchStart, windowDays)
			if err != nil {
				metrics.EntityFailures.Inc()
				logrus.WithError(err).WithFields(logrus.Fields{
					"entity":      entity.Key.String(),
					"entity_type": entity.Type,
				}).Warn("Skipping entity after fact read failure")

				mutex.Lock()
				result.Failures = append(result.Failures, EntityFailure{Entity: entity, Err: err})
				mutex.Unlock()
				return
			}

			mutex.Lock()
			result.Windows = append(result.Windows, windows...)
			mutex.Unlock()
		}(entity)
	}

	wg.Wait()

	return result, nil
}

func (s *service) buildEntityWindows(ctx context.Context, entity *domain.Entity, refDate, fetchStart time.Time, windowDays []int) ([]*domain.AggregateWindow, error) {
	orders, ads, err := s.fetchFacts(ctx, entity, fetchStart, refDate)
	if err != nil {
		return nil, err
	}

	windows := make([]*domain.AggregateWindow, 0, len(windowDays))
	for _, days := range windowDays {
		current := domain.TrailingWindow(refDate, days)
		prior := domain.PriorWindow(refDate, days)

		window := &domain.AggregateWindow{
			Entity:     *entity,
			WindowDays: days,
			AsOf:       refDate,
		}

		for _, order := range orders {
			day := domain.Day(order.Date)
			if current.Contains(day) {
				window.Current.AddOrder(*order)
			} else if prior.Contains(day) {
				window.Prior.AddOrder(*order)
			}
		}

		for _, ad := range ads {
			day := domain.Day(ad.Date)
			if current.Contains(day) {
				window.Current.AddAd(*ad)
			} else if prior.Contains(day) {
				window.Prior.AddAd(*ad)
			}
		}

		windows = append(windows, window)
	}

	return windows, nil
}

// fetchFacts reads the raw facts feeding one entity. Shops aggregate orders,
// campaigns aggregate ad rows, and platform buckets aggregate both: the
// platform's own orders plus spend from every ad network attributed to it.
func (s *service) fetchFacts(ctx context.Context, entity *domain.Entity, start, end time.Time) ([]*domain.OrderFact, []*domain.AdFact, error) {
	switch entity.Type {
	case domain.EntityTypeShop:
		orders, err := s.orderRepository.GetByShopAndDateRange(ctx, entity.Key.Platform, entity.Key.ShopID, start, end)
		return orders, nil, err

	case domain.EntityTypeCampaign:
		ads, err := s.adRepository.GetByCampaignAndDateRange(ctx, entity.Key.Platform, entity.Key.CampaignID, start, end)
		return nil, ads, err

	case domain.EntityTypePlatform:
		return s.fetchPlatformFacts(ctx, entity.Key.Platform, start, end)
	}

	return nil, nil, nil
}

func (s *service) fetchPlatformFacts(ctx context.Context, platform string, start, end time.Time) ([]*domain.OrderFact, []*domain.AdFact, error) {
	var orders []*domain.OrderFact

	sources := []string{platform}
	if platform == domain.PlatformAll {
		sources = domain.EcommercePlatforms()
	}

	for _, source := range sources {
		rows, err := s.orderRepository.GetByPlatformAndDateRange(ctx, source, start, end)
		if err != nil {
			return nil, nil, err
		}
		orders = append(orders, rows...)
	}

	var ads []*domain.AdFact
	for _, adPlatform := range adPlatforms() {
		if domain.EcommercePlatformFor(adPlatform) != platform {
			continue
		}
		rows, err := s.adRepository.GetByPlatformAndDateRange(ctx, adPlatform, start, end)
		if err != nil {
			return nil, nil, err
		}
		ads = append(ads, rows...)
	}

	return orders, ads, nil
}

// platformEntities derives the synthetic platform-level entities from the
// concrete ones. Platform rows exist even when no shop or campaign references
// the platform yet, so dashboards always have the standard set of buckets.
func platformEntities(entities []*domain.Entity) []*domain.Entity {
	firstActive := map[string]time.Time{}
	for _, e := range entities {
		bucket := e.Key.Platform
		if e.Type == domain.EntityTypeCampaign {
			bucket = domain.EcommercePlatformFor(e.Key.Platform)
		}
		if current, ok := firstActive[bucket]; !ok || (!e.FirstActive.IsZero() && e.FirstActive.Before(current)) {
			firstActive[bucket] = e.FirstActive
		}
	}

	buckets := append(domain.EcommercePlatforms(), domain.PlatformAll)

	derived := make([]*domain.Entity, 0, len(buckets))
	for _, platform := range buckets {
		derived = append(derived, &domain.Entity{
			Key:         domain.EntityKey{Platform: platform},
			Type:        domain.EntityTypePlatform,
			Name:        platform,
			Status:      domain.EntityStatusActive,
			FirstActive: firstActive[platform],
		})
	}

	return derived
}

func adPlatforms() []string {
	return []string{
		domain.PlatformFacebookAds,
		domain.PlatformGoogleAds,
		domain.PlatformTikTokAds,
		domain.PlatformLineAds,
		domain.PlatformShopeeAds,
		domain.PlatformLazadaAds,
	}
}
