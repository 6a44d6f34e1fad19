package employer

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"jobpilot/internal/auth"
)

type Service struct {
	Users auth.UserStore
	Logos *LogoStore
}

// ProfileInput replaces whichever blocks are present.
type ProfileInput struct {
	CompanyInfo *auth.CompanyInfo `json:"companyInfo"`
	ContactInfo *auth.ContactInfo `json:"contactInfo"`
}

func (s *Service) Profile(ctx context.Context, userID string) (*auth.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find employer: %w", err)
	}
	return u, nil
}

// UpdateProfile saves the supplied blocks and marks the profile complete.
// Nothing ever marks it incomplete again.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*auth.User, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.CompanyInfo != nil {
		u.CompanyInfo = *in.CompanyInfo
	}
	if in.ContactInfo != nil {
		u.ContactInfo = *in.ContactInfo
	}
	u.ProfileComplete = true
	u.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	if err := s.Users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return u, nil
}

func (s *Service) UploadLogo(ctx context.Context, userID, filename string, r io.Reader) (*auth.User, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.Logos.Save(userID, filename, r)
	if err != nil {
		return nil, err
	}

	u.LogoURL = url
	u.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	if err := s.Users.Save(ctx, u); err != nil {
		if rmErr := s.Logos.Remove(url); rmErr != nil {
			log.Printf("remove orphaned logo %s: %v", url, rmErr)
		}
		return nil, fmt.Errorf("save logo url: %w", err)
	}
	return u, nil
}
