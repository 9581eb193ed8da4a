package teacher

import (
	"time"

	"github.com/siakad-id/siakad/core"
)

type (
	Teacher struct {
		ID           string           `json:"id"`
		Name         string           `json:"name"`
		Gender       string           `json:"gender"`
		SubjectCount int              `json:"subject_count"`
		Subjects     []TeacherSubject `json:"subjects"`
		CreatedAt    time.Time        `json:"created_at"`
		UpdatedAt    time.Time        `json:"updated_at"`
		DeletedAt    *time.Time       `json:"deleted_at,omitempty"`
	}

	// TeacherSubject assigns a subject to a teacher for one academic year.
	TeacherSubject struct {
		ID             string       `json:"id"`
		AcademicYearID string       `json:"academic_year_id"`
		TeacherID      string       `json:"teacher_id"`
		SubjectID      string       `json:"subject_id"`
		AcademicYear   AcademicYear `json:"academic_year"`
		Subject        Subject      `json:"subject"`
	}

	Subject struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	}

	AcademicYear struct {
		ID       string `json:"id"`
		Year     string `json:"year"`
		Semester string `json:"semester"`
	}
)

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name   string `json:"name" validate:"required,min=3"`
	Gender string `json:"gender" validate:"required,gender"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Gender = core.CleanString(nt.Gender, true /* lower */)
	return core.Validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an
// existing Teacher. Zero fields are left untouched by the remote API.
type UpdateTeacher struct {
	Name   string `json:"name,omitempty" validate:"omitempty,min=3"`
	Gender string `json:"gender,omitempty" validate:"omitempty,gender"`
}

func (ut *UpdateTeacher) Validate() error {
	ut.Name = core.CleanString(ut.Name)
	ut.Gender = core.CleanString(ut.Gender, true /* lower */)
	return core.Validate.Struct(ut)
}
