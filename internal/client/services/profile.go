package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fitsched/internal/client/models"
)

// ErrNothingToUpdate is returned for a profile update without fields.
var ErrNothingToUpdate = errors.New("nothing to update")

// ProfileService edits the training constraints kept in the user profile.
type ProfileService interface {
	Get(ctx context.Context) (*models.UserProfile, error)
	Update(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
	// LogFatigue appends today's level to the fatigue log.
	LogFatigue(ctx context.Context, level int) (*models.UserProfile, error)
}

type profileClient interface {
	GetUserProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
}

type profileService struct {
	client profileClient
	now    func() time.Time
}

func NewProfileService(client profileClient) ProfileService {
	return &profileService{client: client, now: time.Now}
}

func (p *profileService) Get(ctx context.Context) (*models.UserProfile, error) {
	return p.client.GetUserProfile(ctx)
}

func (p *profileService) Update(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	if req.Empty() {
		return nil, ErrNothingToUpdate
	}
	return p.client.UpdateUserProfile(ctx, req)
}

// LogFatigue sends the whole log back because the API has no append
// operation.
func (p *profileService) LogFatigue(ctx context.Context, level int) (*models.UserProfile, error) {
	current, err := p.client.GetUserProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile error: %w", err)
	}

	log := make([]models.FatigueEntry, 0, len(current.FatigueLog)+1)
	log = append(log, current.FatigueLog...)
	log = append(log, models.FatigueEntry{Date: p.now().Format(time.DateOnly), Level: level})

	updated, err := p.client.UpdateUserProfile(ctx, models.UpdateProfileRequest{FatigueLog: log})
	if err != nil {
		return nil, fmt.Errorf("update profile error: %w", err)
	}
	return updated, nil
}
