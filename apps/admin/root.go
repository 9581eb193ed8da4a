package main

import (
	"github.com/spf13/cobra"

	"github.com/siakad-id/siakad/core"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "siakad",
		Short:         "Administration client for the school API",
		Long:          "Manage teachers, students and account profiles against the school-administration API.",
		Version:       a.conf.Build,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newRegisterCmd(a),
		newWhoamiCmd(a),
		newTeacherCmd(a),
		newStudentCmd(a),
		newProfileCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

// reportError renders an error according to its kind: field errors and
// import rejections get structured output, everything else one line.
func reportError(a *app, err error) {
	if impErr, ok := core.IsImportError(err); ok {
		a.out.importErrors(impErr)
		return
	}
	if fldErrs := core.TranslateValidationErrors(err); fldErrs != nil {
		a.out.Failuref("invalid input:")
		a.out.fieldErrors(fldErrs)
		return
	}
	if apiErr, ok := core.IsAPIError(err); ok {
		a.out.Failuref("%s", apiErr.Error())
		return
	}
	a.out.Failuref("error: %v", err)
}
