package profile

import (
	"time"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/student"
	"github.com/siakad-id/siakad/core/teacher"
)

type (
	// UserProfile is the logged-in account plus its linked school profile.
	// Userable is nil until the account has been linked.
	UserProfile struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		UserableID   *string   `json:"userable_id"`
		UserableType *string   `json:"userable_type"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`

		Userable *Userable `json:"-"`
	}

	// Userable is the polymorphic profile record an account links to:
	// exactly one of Teacher or Student is set.
	Userable struct {
		Teacher *teacher.Teacher
		Student *student.Student
	}
)

// Linked reports whether the account is linked to a school profile.
func (p UserProfile) Linked() bool {
	return p.Userable != nil
}

// LinkProfile carries the one-time token that ties the logged-in account
// to a teacher or student record.
type LinkProfile struct {
	Token string `json:"token" validate:"required"`
}

func (lp *LinkProfile) Validate() error {
	lp.Token = core.CleanString(lp.Token)
	return core.Validate.Struct(lp)
}
