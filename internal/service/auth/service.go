package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/itschool-lms/lms-backend-go/internal/domain/auth"
	"github.com/itschool-lms/lms-backend-go/internal/domain/user"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := a.UserRepository.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(account.ID, account.TraineeID, account.CourseID, account.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      account.ID,
		Name:        account.Name,
		Role:        string(account.Role),
	}
	if account.TraineeID != nil {
		resp.TraineeID = *account.TraineeID
	}
	return resp, nil
}
