package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/repository"
	"context"
	"time"
)

type TrainingService interface {
	CreateRequest(ctx context.Context, requesterID uint64, create *dto.CreateTrainingRequestDTO) (*dto.TrainingRequestDTO, error)
	DecideRequest(ctx context.Context, trainerID uint64, requestID uint64, accept bool) (*dto.TrainingRequestDTO, error)
	GetIncoming(ctx context.Context, trainerID uint64, status string, limit, offset int) ([]*dto.TrainingRequestDTO, error)
	GetOutgoing(ctx context.Context, requesterID uint64, limit, offset int) ([]*dto.TrainingRequestDTO, error)
}

type TrainingServiceImpl struct {
	userRepo        repository.UserRepo
	profileRepo     repository.ProfileRepo
	trainingRepo    repository.TrainingRequestRepo
	activityService ActivityService
}

func NewTrainingService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo, trainingRepo repository.TrainingRequestRepo, activityService ActivityService) TrainingService {
	return &TrainingServiceImpl{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		trainingRepo:    trainingRepo,
		activityService: activityService,
	}
}

// CreateRequest opens a pending request toward a trainer. The trainer must
// be an individual who currently offers training, and a pair can hold at
// most one request ever; the unique index settles concurrent duplicates.
func (s *TrainingServiceImpl) CreateRequest(ctx context.Context, requesterID uint64, create *dto.CreateTrainingRequestDTO) (*dto.TrainingRequestDTO, error) {
	if requesterID == create.TrainerID {
		return nil, ErrTrainingSelfRequest
	}

	trainer, err := s.userRepo.GetUserById(ctx, create.TrainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrUserNotFound
	}
	if trainer.UserType != model.UserTypeIndividual {
		return nil, ErrNotATrainer
	}

	profile, err := s.profileRepo.GetIndividualProfile(ctx, create.TrainerID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.OffersTraining {
		return nil, ErrTrainingNotOffered
	}

	req := &model.TrainingRequest{
		RequesterID: requesterID,
		TrainerID:   create.TrainerID,
		Status:      model.TrainingRequestPending,
		Message:     create.Message,
		CreatedAt:   time.Now(),
	}
	created, err := s.trainingRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrTrainingRequested
	}

	return toTrainingDTO(req), nil
}

// DecideRequest lets the trainer accept or reject a pending request. The
// compare-and-set on status means only the first decision lands.
func (s *TrainingServiceImpl) DecideRequest(ctx context.Context, trainerID uint64, requestID uint64, accept bool) (*dto.TrainingRequestDTO, error) {
	req, err := s.trainingRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrTrainingRequestNotFound
	}
	if req.TrainerID != trainerID {
		return nil, ErrNotAuthorized
	}
	if req.Status != model.TrainingRequestPending {
		return nil, ErrTrainingRequestClosed
	}

	toStatus := model.TrainingRequestRejected
	if accept {
		toStatus = model.TrainingRequestAccepted
	}
	moved, err := s.trainingRepo.UpdateStatus(ctx, requestID, model.TrainingRequestPending, toStatus)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrTrainingRequestClosed
	}
	req.Status = toStatus

	if accept {
		// acceptance counts as community interaction for both sides;
		// the request still stands if scoring fails
		for _, uid := range []uint64{req.RequesterID, req.TrainerID} {
			_, err := s.activityService.RecordActivity(ctx, &dto.RecordActivityDTO{
				UserID:      uid,
				Kind:        model.ActivityCommunityInteraction,
				Points:      5,
				Description: "training request accepted",
				RelatedID:   &req.ID,
			})
			if err != nil {
				break
			}
		}
	}

	return toTrainingDTO(req), nil
}

func (s *TrainingServiceImpl) GetIncoming(ctx context.Context, trainerID uint64, status string, limit, offset int) ([]*dto.TrainingRequestDTO, error) {
	if status != "" &&
		status != model.TrainingRequestPending &&
		status != model.TrainingRequestAccepted &&
		status != model.TrainingRequestRejected {
		return nil, ErrParamInvalid
	}
	reqs, err := s.trainingRepo.GetByTrainer(ctx, trainerID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTrainingDTOs(reqs), nil
}

func (s *TrainingServiceImpl) GetOutgoing(ctx context.Context, requesterID uint64, limit, offset int) ([]*dto.TrainingRequestDTO, error) {
	reqs, err := s.trainingRepo.GetByRequester(ctx, requesterID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toTrainingDTOs(reqs), nil
}

func toTrainingDTO(req *model.TrainingRequest) *dto.TrainingRequestDTO {
	return &dto.TrainingRequestDTO{
		ID:          req.ID,
		RequesterID: req.RequesterID,
		TrainerID:   req.TrainerID,
		Status:      req.Status,
		Message:     req.Message,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

func toTrainingDTOs(reqs []*model.TrainingRequest) []*dto.TrainingRequestDTO {
	out := make([]*dto.TrainingRequestDTO, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, toTrainingDTO(req))
	}
	return out
}
