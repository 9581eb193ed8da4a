package student

import (
	"time"

	"github.com/siakad-id/siakad/core"
)

type (
	Student struct {
		ID        string         `json:"id"`
		Name      string         `json:"name"`
		Gender    string         `json:"gender"`
		NISN      string         `json:"nisn"` // Nomor Induk Siswa Nasional
		NIS       string         `json:"nis"`  // Nomor Induk Siswa
		Grades    []StudentGrade `json:"grades"`
		CreatedAt time.Time      `json:"created_at"`
		UpdatedAt time.Time      `json:"updated_at"`
		DeletedAt *time.Time     `json:"deleted_at,omitempty"`
	}

	// StudentGrade places a student in a grade for one academic year.
	StudentGrade struct {
		ID             string       `json:"id"`
		AcademicYearID string       `json:"academic_year_id"`
		StudentID      string       `json:"student_id"`
		GradeID        string       `json:"grade_id"`
		AcademicYear   AcademicYear `json:"academic_year"`
		Grade          Grade        `json:"grade"`
	}

	Grade struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Level int    `json:"level"`
	}

	AcademicYear struct {
		ID       string `json:"id"`
		Year     string `json:"year"`
		Semester string `json:"semester"`
	}
)

// NewStudent contains information needed to create a new Student.
// NISN is a 10-digit number, NIS an 8-digit one; both optional.
type NewStudent struct {
	Name   string `json:"name" validate:"required,min=3"`
	Gender string `json:"gender" validate:"required,gender"`
	NISN   string `json:"nisn" validate:"omitempty,number,len=10"`
	NIS    string `json:"nis" validate:"omitempty,number,len=8"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Gender = core.CleanString(ns.Gender, true /* lower */)
	ns.NISN = core.CleanString(ns.NISN)
	ns.NIS = core.CleanString(ns.NIS)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Zero fields are left untouched by the remote API.
type UpdateStudent struct {
	Name   string `json:"name,omitempty" validate:"omitempty,min=3"`
	Gender string `json:"gender,omitempty" validate:"omitempty,gender"`
	NISN   string `json:"nisn,omitempty" validate:"omitempty,number,len=10"`
	NIS    string `json:"nis,omitempty" validate:"omitempty,number,len=8"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.Gender = core.CleanString(us.Gender, true /* lower */)
	us.NISN = core.CleanString(us.NISN)
	us.NIS = core.CleanString(us.NIS)
	return core.Validate.Struct(us)
}
