package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/profile"
	"github.com/siakad-id/siakad/core/session"
	"github.com/siakad-id/siakad/core/teacher"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		core.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second},
		func() string { return token },
	)
}

func writeJSON(t *testing.T, w http.ResponseWriter, code int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		t.Errorf("writing response: %v", err)
	}
}

func TestClientBearerInjection(t *testing.T) {
	var gotAuth, gotAccept string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, http.StatusOK, `{"data":{}}`)
	})

	t.Run("logged in", func(t *testing.T) {
		c := newTestClient(t, handler, "tok123")
		require.NoError(t, c.getJSON(context.Background(), "/user", nil, &struct{}{}))
		assert.Equal(t, "Bearer tok123", gotAuth)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("logged out omits the header", func(t *testing.T) {
		c := newTestClient(t, handler, "")
		require.NoError(t, c.getJSON(context.Background(), "/user", nil, &struct{}{}))
		assert.Empty(t, gotAuth)
	})
}

func TestClientFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"message":"Unauthenticated."}`)
	})
	c := newTestClient(t, handler, "")

	err := c.getJSON(context.Background(), "/user", nil, &struct{}{})
	require.Error(t, err)

	apiErr, ok := core.IsAPIError(err)
	require.True(t, ok, "error = %v, want *core.APIError", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthenticated.", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Unauthenticated.")
}

func TestTeacherRepositoryList(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teachers", r.URL.Path)
		gotQuery = r.URL.RawQuery
		writeJSON(t, w, http.StatusOK, `{
			"status": "success",
			"data": [
				{"id": "t1", "name": "Asep", "gender": "male", "subject_count": 2},
				{"id": "t2", "name": "Euis", "gender": "female", "subject_count": 0}
			],
			"meta": {"current_page": 1, "from": 1, "last_page": 3, "per_page": 2, "to": 2, "total": 6},
			"links": {"first": "f", "last": "l", "prev": null, "next": "n"}
		}`)
	})
	repo := NewTeacherRepository(newTestClient(t, handler, "tok"))

	pg, err := repo.ListTeachers(context.Background(), core.ListQuery{
		Page: 1, PerPage: 2,
		Filters: map[string]string{"name": "a"},
		Sort:    "-created_at",
	})
	require.NoError(t, err)

	assert.Equal(t, "filter%5Bname%5D=a&page=1&per_page=2&sort=-created_at", gotQuery)
	require.Len(t, pg.Data, 2)
	assert.Equal(t, "Asep", pg.Data[0].Name)
	assert.Equal(t, 6, pg.Meta.Total)
	assert.Equal(t, 3, pg.Meta.LastPage)
	require.NotNil(t, pg.Links.Next)
	assert.Nil(t, pg.Links.Prev)
}

func TestTeacherRepositoryMutations(t *testing.T) {
	type recorded struct {
		method, path, body string
	}
	var got recorded
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = recorded{method: r.Method, path: r.URL.Path, body: string(raw)}
		writeJSON(t, w, http.StatusOK, `{"data":{"id":"t1","name":"Asep","gender":"male"}}`)
	})
	repo := NewTeacherRepository(newTestClient(t, handler, "tok"))
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		created, err := repo.CreateTeacher(ctx, teacher.NewTeacher{Name: "Asep", Gender: "male"})
		require.NoError(t, err)
		assert.Equal(t, recorded{http.MethodPost, "/teachers", `{"name":"Asep","gender":"male"}`}, got)
		assert.Equal(t, "t1", created.ID)
	})

	t.Run("update", func(t *testing.T) {
		_, err := repo.UpdateTeacher(ctx, "t1", teacher.UpdateTeacher{Name: "Asep S"})
		require.NoError(t, err)
		assert.Equal(t, recorded{http.MethodPut, "/teachers/t1", `{"name":"Asep S"}`}, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteTeacher(ctx, "t1"))
		assert.Equal(t, http.MethodDelete, got.method)
		assert.Equal(t, "/teachers/t1", got.path)
	})

	t.Run("bulk delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteTeachersByID(ctx, "t1", "t2"))
		assert.Equal(t, recorded{http.MethodDelete, "/teachers/bulk-delete", `{"ids":["t1","t2"]}`}, got)
	})

	t.Run("restore", func(t *testing.T) {
		restored, err := repo.RestoreTeacher(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/teachers/t1/restore", got.path)
		assert.Equal(t, "t1", restored.ID)
	})

	t.Run("force delete", func(t *testing.T) {
		require.NoError(t, repo.ForceDeleteTeacher(ctx, "t1"))
		assert.Equal(t, http.MethodDelete, got.method)
		assert.Equal(t, "/teachers/t1/force-delete", got.path)
	})
}

func TestClientExportAndTemplate(t *testing.T) {
	payload := []byte("PK\x03\x04 spreadsheet bytes")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teachers/export", "/teachers/template":
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			_, _ = w.Write(payload)
		default:
			writeJSON(t, w, http.StatusNotFound, `{"message":"not found"}`)
		}
	})
	repo := NewTeacherRepository(newTestClient(t, handler, "tok"))

	raw, err := repo.ExportTeachers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, raw, "export bytes must pass through untouched")

	raw, err = repo.TeacherImportTemplate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func TestClientImport(t *testing.T) {
	t.Run("success uploads multipart", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "teachers.xlsx", header.Filename)
			writeJSON(t, w, http.StatusOK, `{"message":"imported"}`)
		})
		repo := NewTeacherRepository(newTestClient(t, handler, "tok"))

		err := repo.ImportTeachers(context.Background(), "teachers.xlsx", strings.NewReader("rows"))
		require.NoError(t, err)
	})

	t.Run("row errors surface structured", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnprocessableEntity, `{
				"message": "The given data was invalid.",
				"errors": [
					{"row": 2, "attribute": "gender", "errors": ["invalid gender"], "values": {"name": "X", "gender": "?"}},
					{"row": 5, "attribute": "name", "errors": ["required"], "values": {}}
				]
			}`)
		})
		repo := NewTeacherRepository(newTestClient(t, handler, "tok"))

		err := repo.ImportTeachers(context.Background(), "teachers.xlsx", strings.NewReader("rows"))
		require.Error(t, err)

		impErr, ok := core.IsImportError(err)
		require.True(t, ok, "error = %v, want *core.ImportError", err)
		assert.Equal(t, "The given data was invalid.", impErr.Message)
		require.Len(t, impErr.Rows, 2)
		assert.Equal(t, 2, impErr.Rows[0].Row)
		assert.Equal(t, "gender", impErr.Rows[0].Attribute)
		assert.Equal(t, []string{"invalid gender"}, impErr.Rows[0].Errors)
	})

	t.Run("unstructured 422 stays an api error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnprocessableEntity, `{"message":"file type not allowed"}`)
		})
		repo := NewTeacherRepository(newTestClient(t, handler, "tok"))

		err := repo.ImportTeachers(context.Background(), "notes.txt", strings.NewReader("rows"))
		apiErr, ok := core.IsAPIError(err)
		require.True(t, ok, "error = %v, want *core.APIError", err)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "file type not allowed", apiErr.Message)
	})
}

func TestAuthRepositoryLogin(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "admin@test.id", payload["email"])
		assert.Equal(t, "pwd", payload["password"])
		assert.Contains(t, payload["device_name"], "cli_")

		// token and user nest under data
		writeJSON(t, w, http.StatusOK, `{
			"status": "success",
			"message": "Login success",
			"data": {
				"token": "tok123",
				"user": {"id": "u1", "name": "Admin", "email": "admin@test.id", "roles": ["admin"], "permissions": ["teacher.read"]}
			}
		}`)
	})
	repo := NewAuthRepository(newTestClient(t, handler, ""))

	idt, token, err := repo.Login(
		context.Background(),
		session.Credentials{Email: "admin@test.id", Password: "pwd"},
		"cli_abc_linux_host",
	)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, "u1", idt.ID)
	assert.Equal(t, []string{"admin"}, idt.Roles)
	assert.True(t, idt.WellFormed())
}

func TestProfileRepositoryGet(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantLinked  bool
		wantTeacher bool
	}{
		{
			name: "unlinked account",
			body: `{"data":{"id":"u1","name":"Admin","email":"a@test.id","userable_id":null,"userable_type":null,"userable":null}}`,
		},
		{
			name: "linked teacher",
			body: `{"data":{
				"id": "u1", "name": "Asep", "email": "a@test.id",
				"userable_id": "t1", "userable_type": "App\\Models\\Teacher",
				"userable": {"id": "t1", "name": "Asep", "gender": "male", "subject_count": 3}
			}}`,
			wantLinked:  true,
			wantTeacher: true,
		},
		{
			name: "linked student",
			body: `{"data":{
				"id": "u2", "name": "Euis", "email": "e@test.id",
				"userable_id": "s1", "userable_type": "App\\Models\\Student",
				"userable": {"id": "s1", "name": "Euis", "gender": "female", "nisn": "0012345678"}
			}}`,
			wantLinked: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/user", r.URL.Path)
				writeJSON(t, w, http.StatusOK, tt.body)
			})
			repo := NewProfileRepository(newTestClient(t, handler, "tok"))

			prof, err := repo.GetUserProfile(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantLinked, prof.Linked())
			if tt.wantLinked {
				if tt.wantTeacher {
					require.NotNil(t, prof.Userable.Teacher)
					assert.Nil(t, prof.Userable.Student)
				} else {
					require.NotNil(t, prof.Userable.Student)
					assert.Nil(t, prof.Userable.Teacher)
				}
			}
		})
	}
}

func TestProfileRepositoryLink(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/link-profile", r.URL.Path)
		var payload profile.LinkProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "one-time-token", payload.Token)

		writeJSON(t, w, http.StatusOK, `{
			"message": "Profile linked",
			"user": {
				"id": "u1", "name": "Asep", "email": "a@test.id",
				"userable_id": "t1", "userable_type": "App\\Models\\Teacher",
				"userable": {"id": "t1", "name": "Asep", "gender": "male"}
			}
		}`)
	})
	repo := NewProfileRepository(newTestClient(t, handler, "tok"))

	prof, err := repo.LinkUserProfile(context.Background(), profile.LinkProfile{Token: "one-time-token"})
	require.NoError(t, err)
	assert.True(t, prof.Linked())
	require.NotNil(t, prof.Userable.Teacher)
	assert.Equal(t, "t1", prof.Userable.Teacher.ID)
}
