// Package convert runs a whole conversion: parse the plot, build the
// template, compile the rows and add log cues.
//
// Each call starts from scratch with fresh issue acceptors, so callers can
// simply call again on reload. A FATAL issue in one stage stops the stages
// after it.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/zenibako/qlab-csv/compile"
	"github.com/zenibako/qlab-csv/csvfile"
	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/templates"
)

// Options configure a conversion.
type Options struct {
	Template templates.Kind // "" detects the template from the headers
	Patch    int            // X32 network patch
	LogFile  string         // "" disables log cues
	Sheet    string         // sheet of an .xlsx workbook, "" for the first
}

// Result is the outcome of one conversion.
type Result struct {
	File     *csvfile.File
	Template templates.Kind
	Cues     []cues.Cue

	ParseIssues *issues.Acceptor // reading the file
	CueIssues   *issues.Acceptor // building the template and compiling rows
}

// File converts the plot at path (.csv or .xlsx).
func File(path string, opts Options) *Result {
	r := newResult()
	r.File = csvfile.Parse(path, opts.Sheet, r.ParseIssues)
	log.Debug("Parsed plot", "path", path, "issues", r.ParseIssues.Len())
	return r.compile(opts)
}

// CSV converts CSV text held in memory.
func CSV(text string, opts Options) *Result {
	return Reader(strings.NewReader(text), opts)
}

// Reader converts CSV text read from rd, e.g. standard input.
// opts.Sheet is ignored.
func Reader(rd io.Reader, opts Options) *Result {
	r := newResult()
	r.File = csvfile.ParseReader(rd, r.ParseIssues)
	log.Debug("Parsed plot", "path", "-", "issues", r.ParseIssues.Len())
	return r.compile(opts)
}

func newResult() *Result {
	return &Result{
		ParseIssues: issues.NewAcceptor(),
		CueIssues:   issues.NewAcceptor(),
	}
}

func (r *Result) compile(opts Options) *Result {
	if r.ParseIssues.HasFatalErrors() {
		return r
	}
	if r.File == nil {
		r.ParseIssues.Add(issues.Fatal, issues.WholeFile, "", "UNKNOWN", "Unknown error whilst parsing CSV file")
		return r
	}

	r.Template = opts.Template
	if r.Template == "" {
		r.Template = templates.Detect(r.File.Headers)
		log.Debug("Detected template", "template", r.Template)
	}

	tmpl := templates.Build(r.Template, r.File.Headers, opts.Patch, r.CueIssues)
	if tmpl == nil || r.CueIssues.HasFatalErrors() {
		return r
	}

	cs := compile.NewRowParser(tmpl).Load(r.File, r.CueIssues)
	if r.CueIssues.HasFatalErrors() {
		return r
	}

	r.Cues = compile.ApplyLogs(cs, opts.LogFile)
	log.Info("Converted plot", "template", r.Template, "cues", len(r.Cues), "issues", r.CueIssues.Len()+r.ParseIssues.Len())
	return r
}

// HasFatalErrors reports whether any stage hit a FATAL issue.
func (r *Result) HasFatalErrors() bool {
	return r.ParseIssues.HasFatalErrors() || r.CueIssues.HasFatalErrors()
}

// Valid reports whether the conversion produced cues that can be sent.
func (r *Result) Valid() bool {
	return len(r.Cues) > 0 && !r.HasFatalErrors()
}

// Issues returns the parse issues followed by the cue issues.
func (r *Result) Issues() []issues.Issue {
	return append(r.ParseIssues.Issues(), r.CueIssues.Issues()...)
}

// Summary describes the parsed file, e.g. "4 rows plus header row, 6 header columns."
func (r *Result) Summary() string {
	if r.File == nil || r.ParseIssues.HasFatalErrors() {
		return "Unable to parse as CSV file."
	}
	return fmt.Sprintf("%d rows plus header row, %d header columns.", len(r.File.Rows), len(r.File.Headers))
}
