package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/student"
)

type studentRepository struct {
	c *Client
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(c *Client) student.Repository {
	return &studentRepository{c: c}
}

func (repo *studentRepository) ListStudents(ctx context.Context, query core.ListQuery) (core.Page[student.Student], error) {
	var env pageEnvelope[student.Student]
	if err := repo.c.getJSON(ctx, "/students", listParams(query), &env); err != nil {
		return core.Page[student.Student]{}, err
	}
	return page(env), nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var env dataEnvelope[student.Student]
	if err := repo.c.getJSON(ctx, "/students/"+id, nil, &env); err != nil {
		return student.Student{}, err
	}
	return env.Data, nil
}

func (repo *studentRepository) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	var env dataEnvelope[student.Student]
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/students", ns, &env); err != nil {
		return student.Student{}, err
	}
	return env.Data, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, id string, us student.UpdateStudent) (student.Student, error) {
	var env dataEnvelope[student.Student]
	if err := repo.c.sendJSON(ctx, http.MethodPut, "/students/"+id, us, &env); err != nil {
		return student.Student{}, err
	}
	return env.Data, nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	return repo.c.sendJSON(ctx, http.MethodDelete, "/students/"+id, nil, nil)
}

func (repo *studentRepository) DeleteStudentsByID(ctx context.Context, ids ...string) error {
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}
	return repo.c.sendJSON(ctx, http.MethodDelete, "/students/bulk-delete", payload, nil)
}

func (repo *studentRepository) RestoreStudent(ctx context.Context, id string) (student.Student, error) {
	var env dataEnvelope[student.Student]
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/students/"+id+"/restore", nil, &env); err != nil {
		return student.Student{}, err
	}
	return env.Data, nil
}

func (repo *studentRepository) ForceDeleteStudent(ctx context.Context, id string) error {
	return repo.c.sendJSON(ctx, http.MethodDelete, "/students/"+id+"/force-delete", nil, nil)
}

func (repo *studentRepository) ExportStudents(ctx context.Context) ([]byte, error) {
	return repo.c.getRaw(ctx, "/students/export")
}

func (repo *studentRepository) ImportStudents(ctx context.Context, filename string, file io.Reader) error {
	return repo.c.upload(ctx, "/students/import", "file", filename, file)
}

func (repo *studentRepository) StudentImportTemplate(ctx context.Context) ([]byte, error) {
	return repo.c.getRaw(ctx, "/students/template")
}
