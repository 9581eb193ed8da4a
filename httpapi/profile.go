package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core/profile"
	"github.com/siakad-id/siakad/core/student"
	"github.com/siakad-id/siakad/core/teacher"
)

type profileRepository struct {
	c *Client
}

var _ profile.Repository = (*profileRepository)(nil) // interface compliance check

func NewProfileRepository(c *Client) profile.Repository {
	return &profileRepository{c: c}
}

// userProfilePayload defers the polymorphic userable record so it can be
// decoded according to userable_type.
type userProfilePayload struct {
	profile.UserProfile
	RawUserable json.RawMessage `json:"userable"`
}

func (p userProfilePayload) resolve() (profile.UserProfile, error) {
	prof := p.UserProfile
	if len(p.RawUserable) == 0 || string(p.RawUserable) == "null" || p.UserableType == nil {
		return prof, nil
	}

	switch kind := *p.UserableType; {
	case strings.Contains(kind, "Teacher"):
		var t teacher.Teacher
		if err := json.Unmarshal(p.RawUserable, &t); err != nil {
			return prof, errors.Wrap(err, "decoding teacher profile")
		}
		prof.Userable = &profile.Userable{Teacher: &t}
	case strings.Contains(kind, "Student"):
		var s student.Student
		if err := json.Unmarshal(p.RawUserable, &s); err != nil {
			return prof, errors.Wrap(err, "decoding student profile")
		}
		prof.Userable = &profile.Userable{Student: &s}
	default:
		return prof, errors.Errorf("unknown userable type %q", kind)
	}
	return prof, nil
}

func (repo *profileRepository) GetUserProfile(ctx context.Context) (profile.UserProfile, error) {
	var env dataEnvelope[userProfilePayload]
	if err := repo.c.getJSON(ctx, "/user", nil, &env); err != nil {
		return profile.UserProfile{}, err
	}
	return env.Data.resolve()
}

func (repo *profileRepository) LinkUserProfile(ctx context.Context, lp profile.LinkProfile) (profile.UserProfile, error) {
	// this endpoint answers {message, user} rather than the data envelope
	var resp struct {
		Message string             `json:"message"`
		User    userProfilePayload `json:"user"`
	}
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/link-profile", lp, &resp); err != nil {
		return profile.UserProfile{}, err
	}
	return resp.User.resolve()
}
