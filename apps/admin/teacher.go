package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/teacher"
)

func newTeacherCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "Manage teachers",
	}
	cmd.AddCommand(
		newTeacherListCmd(a),
		newTeacherGetCmd(a),
		newTeacherCreateCmd(a),
		newTeacherUpdateCmd(a),
		newTeacherDeleteCmd(a),
		newTeacherRestoreCmd(a),
		newTeacherExportCmd(a),
		newTeacherImportCmd(a),
		newTeacherTemplateCmd(a),
	)
	return cmd
}

// parseFilters turns repeated field=value flags into a filter mapping.
func parseFilters(pairs []string) (map[string]string, error) {
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Errorf("invalid filter %q, expected field=value", pair)
		}
		filters[field] = val
	}
	return filters, nil
}

func listFlags(cmd *cobra.Command, query *core.ListQuery, filters *[]string) {
	cmd.Flags().IntVar(&query.Page, "page", core.DefaultPage, "page number")
	cmd.Flags().IntVar(&query.PerPage, "per-page", core.DefaultPerPage, "records per page")
	cmd.Flags().StringVar(&query.Sort, "sort", "", "sort key; prefix with - for descending (e.g. -created_at)")
	cmd.Flags().StringArrayVarP(filters, "filter", "f", nil, "column filter as field=value; repeatable")
}

func newTeacherListCmd(a *app) *cobra.Command {
	var query core.ListQuery
	var filterPairs []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teachers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			filters, err := parseFilters(filterPairs)
			if err != nil {
				return err
			}
			query.Filters = filters

			pg, err := a.teacherSvc.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			tw := newTable("ID", "Name", "Gender", "Subjects", "Deleted")
			for _, t := range pg.Data {
				deleted := ""
				if t.DeletedAt != nil {
					deleted = t.DeletedAt.Format("2006-01-02")
				}
				tw.AppendRow(table.Row{t.ID, t.Name, t.Gender, t.SubjectCount, deleted})
			}
			fmt.Println(tw.Render())
			pageFooter(pg.Meta)
			return nil
		},
	}
	listFlags(cmd, &query, &filterPairs)
	return cmd
}

func newTeacherGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			t, err := a.teacherSvc.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s (%s)\n", t.ID, t.Name, t.Gender)
			for _, ts := range t.Subjects {
				fmt.Printf("  %s [%s] — %s %s\n", ts.Subject.Name, ts.Subject.Code, ts.AcademicYear.Year, ts.AcademicYear.Semester)
			}
			return nil
		},
	}
}

func newTeacherCreateCmd(a *app) *cobra.Command {
	var nt teacher.NewTeacher

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a teacher",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher/create"); err != nil {
				return err
			}
			t, err := a.teacherSvc.Create(cmd.Context(), nt)
			if err != nil {
				return err
			}
			a.out.Successf("created teacher %s (%s)", t.Name, t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&nt.Name, "name", "", "teacher name")
	cmd.Flags().StringVar(&nt.Gender, "gender", "", "male or female")
	return cmd
}

func newTeacherUpdateCmd(a *app) *cobra.Command {
	var ut teacher.UpdateTeacher

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a teacher (partial)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher/edit"); err != nil {
				return err
			}
			t, err := a.teacherSvc.Update(cmd.Context(), args[0], ut)
			if err != nil {
				return err
			}
			a.out.Successf("updated teacher %s", t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ut.Name, "name", "", "teacher name")
	cmd.Flags().StringVar(&ut.Gender, "gender", "", "male or female")
	return cmd
}

func newTeacherDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Soft-delete teachers (or erase permanently with --force)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			ctx := cmd.Context()
			switch {
			case force:
				for _, id := range args {
					if err := a.teacherSvc.ForceDelete(ctx, id); err != nil {
						return err
					}
				}
			case len(args) == 1:
				if err := a.teacherSvc.Delete(ctx, args[0]); err != nil {
					return err
				}
			default:
				if err := a.teacherSvc.BulkDelete(ctx, args...); err != nil {
					return err
				}
			}
			a.out.Successf("deleted %d teacher(s)", len(args))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "permanently erase instead of soft-deleting")
	return cmd
}

func newTeacherRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Restore a soft-deleted teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			t, err := a.teacherSvc.Restore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Successf("restored teacher %s", t.ID)
			return nil
		},
	}
}

func newTeacherExportCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export teachers to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			raw, err := a.teacherSvc.Export(cmd.Context())
			if err != nil {
				return err
			}
			if err = os.WriteFile(outPath, raw, 0o644); err != nil {
				return errors.Wrap(err, "writing export")
			}
			a.out.Successf("exported teachers to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "teachers.xlsx", "output file")
	return cmd
}

func newTeacherImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import teachers from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening import file")
			}
			defer file.Close()

			if err = a.teacherSvc.Import(cmd.Context(), file.Name(), file); err != nil {
				return err
			}
			a.out.Successf("imported teachers from %s", args[0])
			return nil
		},
	}
}

func newTeacherTemplateCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Download the blank teacher import template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/teacher"); err != nil {
				return err
			}
			raw, err := a.teacherSvc.Template(cmd.Context())
			if err != nil {
				return err
			}
			if err = os.WriteFile(outPath, raw, 0o644); err != nil {
				return errors.Wrap(err, "writing template")
			}
			a.out.Successf("saved template to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "teachers-template.xlsx", "output file")
	return cmd
}
