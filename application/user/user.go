package user

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/houzze/houzze-api/cmd/config"
	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/model"
	redisrepo "github.com/houzze/houzze-api/repository/redis"
	userrepo "github.com/houzze/houzze-api/repository/user"
	vacancyrepo "github.com/houzze/houzze-api/repository/vacancy"
	"github.com/houzze/houzze-api/utils/errors"
	"github.com/houzze/houzze-api/utils/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	Account(ctx context.Context, userID string) (*model.AccountResponse, error)
}

type UserAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	vacancyRepo vacancyrepo.VacancyRepository
	redisRepo   redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, vacancyRepo vacancyrepo.VacancyRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:      config,
		userRepo:    userRepo,
		vacancyRepo: vacancyRepo,
		redisRepo:   redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrUserExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Create user entity
	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleUser,
	}

	// Save to database
	if _, err = s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Message: "User registered successfully",
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// A missing user and a wrong password produce the same response
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(user.ID.Hex())
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	if err := s.redisRepo.SetSession(ctx, jti, user.ID.Hex(), s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	userID := claims.Subject
	if userID == "" {
		return "", fmt.Errorf("token missing subject")
	}

	// Extract JTI (Token ID)
	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}

	// Compare session user with claims.Subject
	if sessionUserID != userID {
		return "", fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

// Account returns the caller's profile together with their own vacancies.
func (s *UserAppImpl) Account(ctx context.Context, userID string) (*model.AccountResponse, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: oid})
	if err != nil {
		logger.Error("[Account] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	vacancies, err := s.vacancyRepo.ListByOwner(ctx, oid)
	if err != nil {
		logger.Error("[Account] err vacancyRepo.ListByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AccountResponse{
		User:      user,
		Vacancies: vacancies,
	}, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
