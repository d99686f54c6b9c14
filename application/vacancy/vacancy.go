package vacancy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/houzze/houzze-api/cmd/config"
	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/model"
	vacancyrepo "github.com/houzze/houzze-api/repository/vacancy"
	"github.com/houzze/houzze-api/thirdparty/rabbitmq"
	"github.com/houzze/houzze-api/utils/errors"
	"github.com/houzze/houzze-api/utils/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type VacancyApp interface {
	Create(ctx context.Context, userID string, payload map[string]interface{}, payloadSize int) (*model.VacancyEntity, error)
	Update(ctx context.Context, userID, id string, payload map[string]interface{}, payloadSize int) (*model.VacancyEntity, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, id string) (*model.VacancyEntity, error)
	List(ctx context.Context, filter *model.VacancyFilter) (*model.VacancyListResponse, error)
	Expire(ctx context.Context, id string) error
}

type vacancyAppImpl struct {
	config      *config.Config
	vacancyRepo vacancyrepo.VacancyRepository
	publisher   *rabbitmq.Publisher
}

func NewVacancyApp(config *config.Config, vacancyRepo vacancyrepo.VacancyRepository, publisher *rabbitmq.Publisher) VacancyApp {
	return &vacancyAppImpl{config: config, vacancyRepo: vacancyRepo, publisher: publisher}
}

func (s *vacancyAppImpl) Create(ctx context.Context, userID string, payload map[string]interface{}, payloadSize int) (*model.VacancyEntity, error) {
	// Size guard runs before any field-level validation
	if payloadSize > constant.MaxPayloadBytes {
		return nil, errors.SetCustomError(constant.ErrPayloadTooLarge)
	}

	if violations := validateVacancyPayload(payload); len(violations) > 0 {
		return nil, errors.SetCustomErrorWithMessages(constant.ErrValidation, violations)
	}

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		logger.Error("[CreateVacancy] bad owner id", zap.String("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// Owner and timestamps are stamped here, never taken from the client
	entity := entityFromPayload(payload)
	entity.CreatedBy = ownerID
	entity.CreatedAt = time.Now().UTC()

	entity, err = s.vacancyRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateVacancy] err vacancyRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Schedule removal; a publish failure is logged but never fails the request
	if s.publisher != nil {
		msg := rabbitmq.VacancyExpirationMessage{
			VacancyID: entity.ID.Hex(),
			UserID:    userID,
			ExpiresAt: entity.CreatedAt.Add(s.config.Vacancy.Expiration),
		}
		if err := s.publisher.PublishVacancyExpiration(msg); err != nil {
			logger.Error("[CreateVacancy] publish expiration", zap.String("error", err.Error()))
		}
	}

	return entity, nil
}

func (s *vacancyAppImpl) Update(ctx context.Context, userID, id string, payload map[string]interface{}, payloadSize int) (*model.VacancyEntity, error) {
	if payloadSize > constant.MaxPayloadBytes {
		return nil, errors.SetCustomError(constant.ErrPayloadTooLarge)
	}

	// Full re-validation: a partial update cannot bypass any rule
	if violations := validateVacancyPayload(payload); len(violations) > 0 {
		return nil, errors.SetCustomErrorWithMessages(constant.ErrValidation, violations)
	}

	vacancyID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrVacancyNotFoundOrUnauthorized)
	}
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	updated, err := s.vacancyRepo.UpdateOwned(ctx, vacancyID, ownerID, entityFromPayload(payload))
	if err != nil {
		logger.Error("[UpdateVacancy] err vacancyRepo.UpdateOwned", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		// Absent and not-owned are deliberately indistinguishable
		return nil, errors.SetCustomError(constant.ErrVacancyNotFoundOrUnauthorized)
	}

	return updated, nil
}

func (s *vacancyAppImpl) Delete(ctx context.Context, userID, id string) error {
	vacancyID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.SetCustomError(constant.ErrVacancyNotFoundOrUnauthorized)
	}
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	deleted, err := s.vacancyRepo.DeleteOwned(ctx, vacancyID, ownerID)
	if err != nil {
		logger.Error("[DeleteVacancy] err vacancyRepo.DeleteOwned", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrVacancyNotFoundOrUnauthorized)
	}

	return nil
}

func (s *vacancyAppImpl) Get(ctx context.Context, id string) (*model.VacancyEntity, error) {
	vacancyID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrVacancyNotFound)
	}

	entity, err := s.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		logger.Error("[GetVacancy] err vacancyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrVacancyNotFound)
	}

	return entity, nil
}

func (s *vacancyAppImpl) List(ctx context.Context, filter *model.VacancyFilter) (*model.VacancyListResponse, error) {
	if filter.SortBy != "" && !contains(constant.AllowedSortFields, filter.SortBy) {
		msg := fmt.Sprintf("Invalid sort field: %s. Allowed fields: %s",
			filter.SortBy, strings.Join(constant.AllowedSortFields, ", "))
		return nil, errors.SetCustomErrorWithMessages(constant.ErrInvalidSortField, []string{msg})
	}

	items, err := s.vacancyRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListVacancies] err vacancyRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.VacancyListResponse{
		Vacancies:      items,
		TotalVacancies: len(items),
	}, nil
}

// Expire removes a vacancy past its lifetime, regardless of owner. Reached
// only through the internal endpoint the expiration worker calls.
func (s *vacancyAppImpl) Expire(ctx context.Context, id string) error {
	vacancyID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.SetCustomError(constant.ErrVacancyNotFound)
	}

	deleted, err := s.vacancyRepo.DeleteByID(ctx, vacancyID)
	if err != nil {
		logger.Error("[ExpireVacancy] err vacancyRepo.DeleteByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		logger.Info("[ExpireVacancy] already gone", zap.String("vacancy_id", id))
	}

	return nil
}
