package services

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
	"estateBack/utils"
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}
	if existing.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	id, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (models.User, models.Tokens, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
		}
		return models.User{}, models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("invalid password for user %d", user.ID)
		return models.User{}, models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.User{}, models.Tokens{}, err
	}

	if err := s.UserRepo.SaveSession(ctx, user.ID, refreshToken, time.Now().Add(s.RefreshTTL)); err != nil {
		return models.User{}, models.Tokens{}, err
	}

	user.Password = ""
	return user, models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) ListAgents(ctx context.Context) ([]models.Agent, error) {
	return s.UserRepo.ListAgents(ctx)
}

func (s *UserService) SaveFCMToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.SaveFCMToken(ctx, userID, token)
}
