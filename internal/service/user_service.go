// Package service contains the application's business logic.
package service

import (
	"context"
	"strings"

	"github.com/Jobserd12/medium-back/internal/models"
	"github.com/Jobserd12/medium-back/internal/repository"
	"github.com/Jobserd12/medium-back/internal/validation"
)

// UserService exposes user and profile operations.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries profile fields the owner may change. Empty
// strings leave the current value untouched.
type UpdateProfileInput struct {
	UserID    uint
	FullName  string
	Bio       string
	Image     string
	Country   string
	Facebook  string
	Twitter   string
	Instagram string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the public profile of a user by username.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.Profile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, models.NewValidationError("Username is required")
	}
	return s.userRepo.GetProfileByUsername(ctx, username)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, models.NewNotFoundError("Profile", in.UserID)
	}
	profile := user.Profile

	if in.Bio != "" {
		if err := validation.ValidateBio(in.Bio); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.Bio = in.Bio
	}
	if in.FullName != "" {
		profile.FullName = in.FullName
		user.FullName = in.FullName
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	if in.Image != "" {
		profile.Image = in.Image
	}
	if in.Country != "" {
		profile.Country = in.Country
	}
	if in.Facebook != "" {
		profile.Facebook = in.Facebook
	}
	if in.Twitter != "" {
		profile.Twitter = in.Twitter
	}
	if in.Instagram != "" {
		profile.Instagram = in.Instagram
	}

	if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
