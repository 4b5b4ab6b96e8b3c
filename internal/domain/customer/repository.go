package customer

import "context"

// ProfileRepository stores customer profiles
type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
}
