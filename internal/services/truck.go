package services

import (
	"time"

	"truckops-backend/internal/models"
	"truckops-backend/pkg/cache"

	"github.com/sirupsen/logrus"
)

const (
	truckListCacheKey = "trucks:all"
	truckCachePrefix  = "trucks:"
	truckCacheTTL     = 5 * time.Minute
)

func newTruckResource(store Store[models.Truck]) *Resource[models.Truck] {
	return NewResource(store, Descriptor[models.Truck]{
		Name:     "Truck",
		KeyField: "number",
		Key:      func(t *models.Truck) string { return t.Number },
		SetKey:   func(t *models.Truck, key string) { t.Number = key },
		Timestamps: func(t *models.Truck) (*time.Time, *time.Time) {
			return &t.CreatedAt, &t.UpdatedAt
		},
	})
}

// TruckService is the truck CRUD service with a read-through cache on
// top. A nil cache manager disables caching without changing behavior.
type TruckService struct {
	*Resource[models.Truck]
	cache *cache.Manager
}

func NewTruckService(store Store[models.Truck], cacheManager *cache.Manager) *TruckService {
	return &TruckService{
		Resource: newTruckResource(store),
		cache:    cacheManager,
	}
}

func (s *TruckService) List() ([]*models.Truck, error) {
	if s.cache != nil {
		var trucks []*models.Truck
		hit, err := s.cache.Get(truckListCacheKey, &trucks)
		if err != nil {
			logrus.WithError(err).Warn("truck list cache read failed")
		} else if hit {
			return trucks, nil
		}
	}

	trucks, err := s.Resource.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(truckListCacheKey, trucks, truckCacheTTL); err != nil {
			logrus.WithError(err).Warn("truck list cache write failed")
		}
	}

	return trucks, nil
}

func (s *TruckService) Get(number string) (*models.Truck, error) {
	if s.cache != nil {
		var truck models.Truck
		hit, err := s.cache.Get(truckCachePrefix+number, &truck)
		if err != nil {
			logrus.WithError(err).Warn("truck cache read failed")
		} else if hit {
			return &truck, nil
		}
	}

	truck, err := s.Resource.Get(number)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(truckCachePrefix+number, truck, truckCacheTTL); err != nil {
			logrus.WithError(err).Warn("truck cache write failed")
		}
	}

	return truck, nil
}

func (s *TruckService) Create(truck *models.Truck) (*models.Truck, error) {
	created, err := s.Resource.Create(truck)
	if err != nil {
		return nil, err
	}
	s.invalidate(created.Number)
	return created, nil
}

func (s *TruckService) Replace(number string, truck *models.Truck) (*models.Truck, error) {
	replaced, err := s.Resource.Replace(number, truck)
	if err != nil {
		return nil, err
	}
	s.invalidate(number)
	return replaced, nil
}

func (s *TruckService) Delete(number string) error {
	if err := s.Resource.Delete(number); err != nil {
		return err
	}
	s.invalidate(number)
	return nil
}

func (s *TruckService) invalidate(number string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(truckListCacheKey, truckCachePrefix+number); err != nil {
		logrus.WithError(err).Warn("truck cache invalidation failed")
	}
}
