package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meinhoongagan/skillverify/dtos"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/repositories"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type WorkerService struct {
	store *repositories.Store
}

func NewWorkerService(store *repositories.Store) *WorkerService {
	return &WorkerService{store: store}
}

// GetWorkers lists the public directory. Only available, verified workers
// are ever returned.
func (s *WorkerService) GetWorkers(ctx context.Context, query dtos.WorkerListQuery) ([]dtos.WorkerSummary, error) {
	profiles, err := s.store.Workers.ListPublic(ctx, query.Search)
	if err != nil {
		return nil, utils.Internal(err)
	}

	workers := make([]dtos.WorkerSummary, 0, len(profiles))
	for i := range profiles {
		if query.Service != "" && !profiles[i].HasSkill(query.Service) {
			continue
		}
		workers = append(workers, dtos.NewWorkerSummary(&profiles[i]))
	}
	return workers, nil
}

// GetWorkerByID returns nil, nil when no such worker exists.
func (s *WorkerService) GetWorkerByID(ctx context.Context, id uuid.UUID) (*dtos.WorkerDetail, error) {
	profile, err := s.store.Workers.FindDetail(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if profile == nil {
		return nil, nil
	}
	return dtos.NewWorkerDetail(profile), nil
}

func (s *WorkerService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dtos.WorkerDetail, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	detail, err := s.store.Workers.FindDetail(ctx, profile.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return dtos.NewWorkerDetail(detail), nil
}

func (s *WorkerService) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*dtos.WorkerSummary, error) {
	profile, err := s.profileOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Workers.Update(ctx, profile.ID, map[string]any{"is_available": available}); err != nil {
		return nil, utils.Internal(err)
	}
	profile.IsAvailable = available

	utils.Logger.WithFields(logrus.Fields{
		"worker_id": profile.ID,
		"available": available,
	}).Info("worker availability changed")

	summary := dtos.NewWorkerSummary(profile)
	return &summary, nil
}

func (s *WorkerService) ListByVerification(ctx context.Context, status models.VerificationStatus) ([]dtos.WorkerSummary, error) {
	if !status.Valid() {
		return nil, ErrInvalidVerification
	}
	profiles, err := s.store.Workers.ListByVerification(ctx, status)
	if err != nil {
		return nil, utils.Internal(err)
	}
	workers := make([]dtos.WorkerSummary, 0, len(profiles))
	for i := range profiles {
		workers = append(workers, dtos.NewWorkerSummary(&profiles[i]))
	}
	return workers, nil
}

// SetVerification is the admin approval step that makes a worker listable.
func (s *WorkerService) SetVerification(ctx context.Context, workerID uuid.UUID, status models.VerificationStatus) (*dtos.WorkerDetail, error) {
	if !status.Valid() {
		return nil, ErrInvalidVerification
	}
	err := s.store.Workers.Update(ctx, workerID, map[string]any{"verification_status": status})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(logrus.Fields{
		"worker_id": workerID,
		"status":    status,
	}).Info("worker verification changed")

	profile, err := s.store.Workers.FindDetail(ctx, workerID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return dtos.NewWorkerDetail(profile), nil
}

func (s *WorkerService) profileOf(ctx context.Context, userID uuid.UUID) (*models.WorkerProfile, error) {
	profile, err := s.store.Workers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if profile == nil {
		return nil, ErrWorkerNotFound
	}
	return profile, nil
}
