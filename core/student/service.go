package student

import (
	"context"
	"io"

	"github.com/siakad-id/siakad/core"
)

type (
	// Repository is the remote student collection. Each method issues
	// exactly one API request; implementations never swallow a failure.
	Repository interface {
		ListStudents(ctx context.Context, query core.ListQuery) (core.Page[Student], error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		CreateStudent(ctx context.Context, ns NewStudent) (Student, error)
		UpdateStudent(ctx context.Context, id string, us UpdateStudent) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
		DeleteStudentsByID(ctx context.Context, ids ...string) error
		RestoreStudent(ctx context.Context, id string) (Student, error)
		ForceDeleteStudent(ctx context.Context, id string) error
		ExportStudents(ctx context.Context) ([]byte, error)
		ImportStudents(ctx context.Context, filename string, file io.Reader) error
		StudentImportTemplate(ctx context.Context) ([]byte, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) List(ctx context.Context, query core.ListQuery) (core.Page[Student], error) {
	query.Clean()
	return svc.repo.ListStudents(ctx, query)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	if err := ns.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.CreateStudent(ctx, ns)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateStudent) (Student, error) {
	if err := us.Validate(); err != nil {
		return Student{}, err
	}
	return svc.repo.UpdateStudent(ctx, id, us)
}

// Delete soft-deletes; the record stays restorable on the remote side.
func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteStudent(ctx, id)
}

func (svc *Service) BulkDelete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteStudentsByID(ctx, ids...)
}

func (svc *Service) Restore(ctx context.Context, id string) (Student, error) {
	return svc.repo.RestoreStudent(ctx, id)
}

// ForceDelete permanently erases the record.
func (svc *Service) ForceDelete(ctx context.Context, id string) error {
	return svc.repo.ForceDeleteStudent(ctx, id)
}

// Export returns the remote export as an opaque binary payload.
func (svc *Service) Export(ctx context.Context) ([]byte, error) {
	return svc.repo.ExportStudents(ctx)
}

// Import uploads a spreadsheet. Remote validation failures surface as
// *core.ImportError with per-row detail.
func (svc *Service) Import(ctx context.Context, filename string, file io.Reader) error {
	return svc.repo.ImportStudents(ctx, filename, file)
}

// Template returns the blank import template as an opaque binary payload.
func (svc *Service) Template(ctx context.Context) ([]byte, error) {
	return svc.repo.StudentImportTemplate(ctx)
}
