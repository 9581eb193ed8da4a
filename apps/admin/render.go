package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/navigation"
)

// output centralizes user-facing presentation; diagnostics go to the
// logger, outcomes go here.
type output struct {
	success *color.Color
	failure *color.Color
	notice  *color.Color
}

func newOutput(enableColor bool) *output {
	out := &output{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
	}
	if !enableColor {
		for _, c := range []*color.Color{out.success, out.failure, out.notice} {
			c.DisableColor()
		}
	}
	return out
}

func (out *output) Successf(format string, args ...interface{}) {
	_, _ = out.success.Fprintf(os.Stdout, format+"\n", args...)
}

func (out *output) Noticef(format string, args ...interface{}) {
	_, _ = out.notice.Fprintf(os.Stdout, format+"\n", args...)
}

func (out *output) Failuref(format string, args ...interface{}) {
	_, _ = out.failure.Fprintf(os.Stderr, format+"\n", args...)
}

// fieldErrors renders validation failures one field per line.
func (out *output) fieldErrors(fldErrs []core.FieldError) {
	for _, fErr := range fldErrs {
		out.Failuref("  %s: %s", fErr.Field, fErr.Error)
	}
}

// importErrors renders the per-row remote validation payload of a
// rejected import.
func (out *output) importErrors(impErr *core.ImportError) {
	out.Failuref("%s", impErr.Error())
	tw := newTable("Row", "Field", "Errors")
	for _, row := range impErr.Rows {
		for _, msg := range row.Errors {
			tw.AppendRow(table.Row{row.Row, row.Attribute, msg})
		}
	}
	fmt.Println(tw.Render())
}

func newTable(headers ...interface{}) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row(headers))
	return tw
}

// pageFooter prints the pagination metadata under a listing.
func pageFooter(meta core.PageMeta) {
	fmt.Printf("page %d of %d (%d records)\n", meta.CurrentPage, meta.LastPage, meta.Total)
}

// spinnerIndicator adapts a terminal spinner to the navigation
// loading-indicator side channel.
type spinnerIndicator struct {
	sp *spinner.Spinner
}

var _ navigation.Indicator = (*spinnerIndicator)(nil)

func newSpinnerIndicator() *spinnerIndicator {
	return &spinnerIndicator{sp: spinner.New(spinner.CharSets[14], 100*time.Millisecond)}
}

func (ind *spinnerIndicator) Start() { ind.sp.Start() }
func (ind *spinnerIndicator) Stop()  { ind.sp.Stop() }

// setTerminalTitle is the page-title side channel.
func setTerminalTitle(title string) {
	if title == "" {
		return
	}
	fmt.Printf("\033]0;%s | Siakad Admin\007", title)
}
