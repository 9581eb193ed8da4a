package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/student"
)

func newStudentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}
	cmd.AddCommand(
		newStudentListCmd(a),
		newStudentGetCmd(a),
		newStudentCreateCmd(a),
		newStudentUpdateCmd(a),
		newStudentDeleteCmd(a),
		newStudentRestoreCmd(a),
		newStudentExportCmd(a),
		newStudentImportCmd(a),
		newStudentTemplateCmd(a),
	)
	return cmd
}

func newStudentListCmd(a *app) *cobra.Command {
	var query core.ListQuery
	var filterPairs []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			filters, err := parseFilters(filterPairs)
			if err != nil {
				return err
			}
			query.Filters = filters

			pg, err := a.studentSvc.List(cmd.Context(), query)
			if err != nil {
				return err
			}

			tw := newTable("ID", "Name", "Gender", "NISN", "NIS", "Deleted")
			for _, s := range pg.Data {
				deleted := ""
				if s.DeletedAt != nil {
					deleted = s.DeletedAt.Format("2006-01-02")
				}
				tw.AppendRow(table.Row{s.ID, s.Name, s.Gender, s.NISN, s.NIS, deleted})
			}
			fmt.Println(tw.Render())
			pageFooter(pg.Meta)
			return nil
		},
	}
	listFlags(cmd, &query, &filterPairs)
	return cmd
}

func newStudentGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			s, err := a.studentSvc.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s (%s)\tNISN=%s NIS=%s\n", s.ID, s.Name, s.Gender, s.NISN, s.NIS)
			for _, sg := range s.Grades {
				fmt.Printf("  %s (level %d) — %s %s\n", sg.Grade.Name, sg.Grade.Level, sg.AcademicYear.Year, sg.AcademicYear.Semester)
			}
			return nil
		},
	}
}

func newStudentCreateCmd(a *app) *cobra.Command {
	var ns student.NewStudent

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student/create"); err != nil {
				return err
			}
			s, err := a.studentSvc.Create(cmd.Context(), ns)
			if err != nil {
				return err
			}
			a.out.Successf("created student %s (%s)", s.Name, s.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&ns.Name, "name", "", "student name")
	cmd.Flags().StringVar(&ns.Gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&ns.NISN, "nisn", "", "national student number (10 digits)")
	cmd.Flags().StringVar(&ns.NIS, "nis", "", "school student number (8 digits)")
	return cmd
}

func newStudentUpdateCmd(a *app) *cobra.Command {
	var us student.UpdateStudent

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a student (partial)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student/edit"); err != nil {
				return err
			}
			s, err := a.studentSvc.Update(cmd.Context(), args[0], us)
			if err != nil {
				return err
			}
			a.out.Successf("updated student %s", s.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&us.Name, "name", "", "student name")
	cmd.Flags().StringVar(&us.Gender, "gender", "", "male or female")
	cmd.Flags().StringVar(&us.NISN, "nisn", "", "national student number (10 digits)")
	cmd.Flags().StringVar(&us.NIS, "nis", "", "school student number (8 digits)")
	return cmd
}

func newStudentDeleteCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Soft-delete students (or erase permanently with --force)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			ctx := cmd.Context()
			switch {
			case force:
				for _, id := range args {
					if err := a.studentSvc.ForceDelete(ctx, id); err != nil {
						return err
					}
				}
			case len(args) == 1:
				if err := a.studentSvc.Delete(ctx, args[0]); err != nil {
					return err
				}
			default:
				if err := a.studentSvc.BulkDelete(ctx, args...); err != nil {
					return err
				}
			}
			a.out.Successf("deleted %d student(s)", len(args))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "permanently erase instead of soft-deleting")
	return cmd
}

func newStudentRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Restore a soft-deleted student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			s, err := a.studentSvc.Restore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Successf("restored student %s", s.ID)
			return nil
		},
	}
}

func newStudentExportCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export students to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			raw, err := a.studentSvc.Export(cmd.Context())
			if err != nil {
				return err
			}
			if err = os.WriteFile(outPath, raw, 0o644); err != nil {
				return errors.Wrap(err, "writing export")
			}
			a.out.Successf("exported students to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "students.xlsx", "output file")
	return cmd
}

func newStudentImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import students from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "opening import file")
			}
			defer file.Close()

			if err = a.studentSvc.Import(cmd.Context(), file.Name(), file); err != nil {
				return err
			}
			a.out.Successf("imported students from %s", args[0])
			return nil
		},
	}
}

func newStudentTemplateCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Download the blank student import template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/student"); err != nil {
				return err
			}
			raw, err := a.studentSvc.Template(cmd.Context())
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
	cmd.Flags().StringVarP(&outPath, "output", "o", "students-template.xlsx", "output file")
	return cmd
}
