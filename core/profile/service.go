package profile

import "context"

type (
	// Repository is the remote account-profile resource.
	Repository interface {
		GetUserProfile(ctx context.Context) (UserProfile, error)
		LinkUserProfile(ctx context.Context, lp LinkProfile) (UserProfile, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get fetches the logged-in account's profile, including the linked
// teacher or student record when present.
func (svc *Service) Get(ctx context.Context) (UserProfile, error) {
	return svc.repo.GetUserProfile(ctx)
}

// Link ties the logged-in account to a school profile via a one-time token.
func (svc *Service) Link(ctx context.Context, lp LinkProfile) (UserProfile, error) {
	if err := lp.Validate(); err != nil {
		return UserProfile{}, err
	}
	return svc.repo.LinkUserProfile(ctx, lp)
}
