package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/teacher"
)

type teacherRepository struct {
	c *Client
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(c *Client) teacher.Repository {
	return &teacherRepository{c: c}
}

func (repo *teacherRepository) ListTeachers(ctx context.Context, query core.ListQuery) (core.Page[teacher.Teacher], error) {
	var env pageEnvelope[teacher.Teacher]
	if err := repo.c.getJSON(ctx, "/teachers", listParams(query), &env); err != nil {
		return core.Page[teacher.Teacher]{}, err
	}
	return page(env), nil
}

func (repo *teacherRepository) GetTeacherByID(ctx context.Context, id string) (teacher.Teacher, error) {
	var env dataEnvelope[teacher.Teacher]
	if err := repo.c.getJSON(ctx, "/teachers/"+id, nil, &env); err != nil {
		return teacher.Teacher{}, err
	}
	return env.Data, nil
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, nt teacher.NewTeacher) (teacher.Teacher, error) {
	var env dataEnvelope[teacher.Teacher]
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/teachers", nt, &env); err != nil {
		return teacher.Teacher{}, err
	}
	return env.Data, nil
}

func (repo *teacherRepository) UpdateTeacher(ctx context.Context, id string, ut teacher.UpdateTeacher) (teacher.Teacher, error) {
	var env dataEnvelope[teacher.Teacher]
	if err := repo.c.sendJSON(ctx, http.MethodPut, "/teachers/"+id, ut, &env); err != nil {
		return teacher.Teacher{}, err
	}
	return env.Data, nil
}

func (repo *teacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	return repo.c.sendJSON(ctx, http.MethodDelete, "/teachers/"+id, nil, nil)
}

func (repo *teacherRepository) DeleteTeachersByID(ctx context.Context, ids ...string) error {
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}
	return repo.c.sendJSON(ctx, http.MethodDelete, "/teachers/bulk-delete", payload, nil)
}

func (repo *teacherRepository) RestoreTeacher(ctx context.Context, id string) (teacher.Teacher, error) {
	var env dataEnvelope[teacher.Teacher]
	if err := repo.c.sendJSON(ctx, http.MethodPost, "/teachers/"+id+"/restore", nil, &env); err != nil {
		return teacher.Teacher{}, err
	}
	return env.Data, nil
}

func (repo *teacherRepository) ForceDeleteTeacher(ctx context.Context, id string) error {
	return repo.c.sendJSON(ctx, http.MethodDelete, "/teachers/"+id+"/force-delete", nil, nil)
}

func (repo *teacherRepository) ExportTeachers(ctx context.Context) ([]byte, error) {
	return repo.c.getRaw(ctx, "/teachers/export")
}

func (repo *teacherRepository) ImportTeachers(ctx context.Context, filename string, file io.Reader) error {
	return repo.c.upload(ctx, "/teachers/import", "file", filename, file)
}

func (repo *teacherRepository) TeacherImportTemplate(ctx context.Context) ([]byte, error) {
	return repo.c.getRaw(ctx, "/teachers/template")
}
