package teacher

import (
	"context"
	"io"

	"github.com/siakad-id/siakad/core"
)

type (
	// Repository is the remote teacher collection. Each method issues
	// exactly one API request; implementations never swallow a failure.
	Repository interface {
		ListTeachers(ctx context.Context, query core.ListQuery) (core.Page[Teacher], error)
		GetTeacherByID(ctx context.Context, id string) (Teacher, error)
		CreateTeacher(ctx context.Context, nt NewTeacher) (Teacher, error)
		UpdateTeacher(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error)
		DeleteTeacher(ctx context.Context, id string) error
		DeleteTeachersByID(ctx context.Context, ids ...string) error
		RestoreTeacher(ctx context.Context, id string) (Teacher, error)
		ForceDeleteTeacher(ctx context.Context, id string) error
		ExportTeachers(ctx context.Context) ([]byte, error)
		ImportTeachers(ctx context.Context, filename string, file io.Reader) error
		TeacherImportTemplate(ctx context.Context) ([]byte, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) List(ctx context.Context, query core.ListQuery) (core.Page[Teacher], error) {
	query.Clean()
	return svc.repo.ListTeachers(ctx, query)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}
	return svc.repo.CreateTeacher(ctx, nt)
}

func (svc *Service) Update(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error) {
	if err := ut.Validate(); err != nil {
		return Teacher{}, err
	}
	return svc.repo.UpdateTeacher(ctx, id, ut)
}

// Delete soft-deletes; the record stays restorable on the remote side.
func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteTeacher(ctx, id)
}

func (svc *Service) BulkDelete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteTeachersByID(ctx, ids...)
}

func (svc *Service) Restore(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.RestoreTeacher(ctx, id)
}

// ForceDelete permanently erases the record.
func (svc *Service) ForceDelete(ctx context.Context, id string) error {
	return svc.repo.ForceDeleteTeacher(ctx, id)
}

// Export returns the remote export as an opaque binary payload.
func (svc *Service) Export(ctx context.Context) ([]byte, error) {
	return svc.repo.ExportTeachers(ctx)
}

// Import uploads a spreadsheet. Remote validation failures surface as
// *core.ImportError with per-row detail.
func (svc *Service) Import(ctx context.Context, filename string, file io.Reader) error {
	return svc.repo.ImportTeachers(ctx, filename, file)
}

// Template returns the blank import template as an opaque binary payload.
func (svc *Service) Template(ctx context.Context) ([]byte, error) {
	return svc.repo.TeacherImportTemplate(ctx)
}
