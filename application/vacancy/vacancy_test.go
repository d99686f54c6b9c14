package vacancy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/houzze/houzze-api/cmd/config"
	"github.com/houzze/houzze-api/constant"
	mockvacancy "github.com/houzze/houzze-api/mocks/repository/vacancy"
	"github.com/houzze/houzze-api/model"
	customerrors "github.com/houzze/houzze-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testConfig() *config.Config {
	return &config.Config{
		Vacancy: config.VacancyConfig{Expiration: 29 * 24 * time.Hour},
	}
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce customerrors.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CustomError, got %T: %v", err, err)
	}
	return ce.ErrorType()
}

func TestVacancyApp_Create(t *testing.T) {
	ownerID := primitive.NewObjectID()

	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name        string
		userID      string
		payload     map[string]interface{}
		payloadSize int
		mockCall    func(f fields)
		wantErrType constant.ErrorType
		wantErr     bool
	}{
		{
			name:        "success stamps owner and created time",
			userID:      ownerID.Hex(),
			payload:     validPayload(),
			payloadSize: 2048,
			mockCall: func(f fields) {
				f.vacancyRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.VacancyEntity")).
					Run(func(args mock.Arguments) {
						entity := args.Get(1).(*model.VacancyEntity)
						assert.Equal(t, ownerID, entity.CreatedBy)
						assert.False(t, entity.CreatedAt.IsZero())
					}).
					Return(&model.VacancyEntity{ID: primitive.NewObjectID(), CreatedBy: ownerID}, nil)
			},
			wantErr: false,
		},
		{
			name:        "payload over the limit is rejected before validation",
			userID:      ownerID.Hex(),
			payload:     map[string]interface{}{}, // would fail validation, must not be reached
			payloadSize: constant.MaxPayloadBytes + 1,
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrPayloadTooLarge,
		},
		{
			name:   "validation failures are collected, repo never called",
			userID: ownerID.Hex(),
			payload: func() map[string]interface{} {
				p := validPayload()
				p["title"] = "ab"
				p["rent"] = float64(-5)
				return p
			}(),
			payloadSize: 512,
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrValidation,
		},
		{
			name:        "repo failure maps to internal error",
			userID:      ownerID.Hex(),
			payload:     validPayload(),
			payloadSize: 2048,
			mockCall: func(f fields) {
				f.vacancyRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.VacancyEntity")).
					Return(nil, errors.New("connection reset"))
			},
			wantErr:     true,
			wantErrType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			got, err := app.Create(context.Background(), tt.userID, tt.payload, tt.payloadSize)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrType, errType(t, err))
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, ownerID, got.CreatedBy)
		})
	}
}

func TestVacancyApp_Create_ValidationMessages(t *testing.T) {
	payload := validPayload()
	payload["rent"] = float64(-5)
	payload["contact"] = "nope"

	app := NewVacancyApp(testConfig(), mockvacancy.NewVacancyRepository(t), nil)
	_, err := app.Create(context.Background(), primitive.NewObjectID().Hex(), payload, 100)

	var ce customerrors.CustomError
	assert.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.ErrorMessages(), "Rent must be a positive number.")
	assert.Contains(t, ce.ErrorMessages(), "Contact must be a valid international phone number (E.164 format).")
}

func TestVacancyApp_Update(t *testing.T) {
	ownerID := primitive.NewObjectID()
	vacancyID := primitive.NewObjectID()

	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name        string
		userID      string
		id          string
		payload     map[string]interface{}
		mockCall    func(f fields)
		wantErrType constant.ErrorType
		wantErr     bool
	}{
		{
			name:    "success returns updated document",
			userID:  ownerID.Hex(),
			id:      vacancyID.Hex(),
			payload: validPayload(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("UpdateOwned", mock.Anything, vacancyID, ownerID, mock.AnythingOfType("*model.VacancyEntity")).
					Return(&model.VacancyEntity{ID: vacancyID, CreatedBy: ownerID, Title: "Sunny double room"}, nil)
			},
			wantErr: false,
		},
		{
			name:        "not owned and not found are the same answer",
			userID:      ownerID.Hex(),
			id:          vacancyID.Hex(),
			payload:     validPayload(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("UpdateOwned", mock.Anything, vacancyID, ownerID, mock.AnythingOfType("*model.VacancyEntity")).
					Return(nil, nil)
			},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFoundOrUnauthorized,
		},
		{
			name:        "malformed id",
			userID:      ownerID.Hex(),
			id:          "not-an-object-id",
			payload:     validPayload(),
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFoundOrUnauthorized,
		},
		{
			name:   "invalid payload is rejected before touching the repo",
			userID: ownerID.Hex(),
			id:     vacancyID.Hex(),
			payload: func() map[string]interface{} {
				p := validPayload()
				delete(p, "bills")
				return p
			}(),
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrValidation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			got, err := app.Update(context.Background(), tt.userID, tt.id, tt.payload, 1024)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrType, errType(t, err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, vacancyID, got.ID)
		})
	}
}

func TestVacancyApp_Delete(t *testing.T) {
	ownerID := primitive.NewObjectID()
	vacancyID := primitive.NewObjectID()

	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name        string
		userID      string
		id          string
		mockCall    func(f fields)
		wantErrType constant.ErrorType
		wantErr     bool
	}{
		{
			name:   "success",
			userID: ownerID.Hex(),
			id:     vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("DeleteOwned", mock.Anything, vacancyID, ownerID).Return(true, nil)
			},
			wantErr: false,
		},
		{
			name:   "someone else's vacancy",
			userID: ownerID.Hex(),
			id:     vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("DeleteOwned", mock.Anything, vacancyID, ownerID).Return(false, nil)
			},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFoundOrUnauthorized,
		},
		{
			name:        "malformed id",
			userID:      ownerID.Hex(),
			id:          "zzz",
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFoundOrUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			err := app.Delete(context.Background(), tt.userID, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrType, errType(t, err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVacancyApp_Get(t *testing.T) {
	vacancyID := primitive.NewObjectID()

	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name        string
		id          string
		mockCall    func(f fields)
		wantErrType constant.ErrorType
		wantErr     bool
	}{
		{
			name: "success",
			id:   vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("GetByID", mock.Anything, vacancyID).
					Return(&model.VacancyEntity{ID: vacancyID, Title: "Sunny double room"}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("GetByID", mock.Anything, vacancyID).Return(nil, nil)
			},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFound,
		},
		{
			name:        "malformed id",
			id:          "123",
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrVacancyNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			got, err := app.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrType, errType(t, err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, vacancyID, got.ID)
		})
	}
}

func TestVacancyApp_List(t *testing.T) {
	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name        string
		filter      *model.VacancyFilter
		mockCall    func(f fields)
		wantTotal   int
		wantErrType constant.ErrorType
		wantErr     bool
	}{
		{
			name:   "success with total count",
			filter: &model.VacancyFilter{RoomType: "2BHK"},
			mockCall: func(f fields) {
				f.vacancyRepo.On("List", mock.Anything, mock.AnythingOfType("*model.VacancyFilter")).
					Return([]model.VacancyListItem{
						{VacancyEntity: model.VacancyEntity{Title: "one"}},
						{VacancyEntity: model.VacancyEntity{Title: "two"}},
					}, nil)
			},
			wantTotal: 2,
		},
		{
			name:      "empty result",
			filter:    &model.VacancyFilter{},
			mockCall: func(f fields) {
				f.vacancyRepo.On("List", mock.Anything, mock.AnythingOfType("*model.VacancyFilter")).
					Return([]model.VacancyListItem{}, nil)
			},
			wantTotal: 0,
		},
		{
			name:        "unknown sort field is rejected",
			filter:      &model.VacancyFilter{SortBy: "price"},
			mockCall:    func(f fields) {},
			wantErr:     true,
			wantErrType: constant.ErrInvalidSortField,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			got, err := app.List(context.Background(), tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErrType, errType(t, err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.TotalVacancies)
			assert.Len(t, got.Vacancies, tt.wantTotal)
		})
	}
}

func TestVacancyApp_List_SortFieldMessage(t *testing.T) {
	app := NewVacancyApp(testConfig(), mockvacancy.NewVacancyRepository(t), nil)
	_, err := app.List(context.Background(), &model.VacancyFilter{SortBy: "price"})

	var ce customerrors.CustomError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t,
		[]string{"Invalid sort field: price. Allowed fields: rent, createdAt, bedrooms, bathrooms"},
		ce.ErrorMessages())
}

func TestVacancyApp_Expire(t *testing.T) {
	vacancyID := primitive.NewObjectID()

	type fields struct {
		vacancyRepo *mockvacancy.VacancyRepository
	}
	tests := []struct {
		name     string
		id       string
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "deletes regardless of owner",
			id:   vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("DeleteByID", mock.Anything, vacancyID).Return(true, nil)
			},
		},
		{
			name: "already gone is not an error",
			id:   vacancyID.Hex(),
			mockCall: func(f fields) {
				f.vacancyRepo.On("DeleteByID", mock.Anything, vacancyID).Return(false, nil)
			},
		},
		{
			name:     "malformed id",
			id:       "bad",
			mockCall: func(f fields) {},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{vacancyRepo: mockvacancy.NewVacancyRepository(t)}
			tt.mockCall(f)

			app := NewVacancyApp(testConfig(), f.vacancyRepo, nil)
			err := app.Expire(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
