package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
)

// Column names of the simple template.
const (
	IDColumn      = "QLab"
	PageColumn    = "Page"
	CommentColumn = "Comment"

	LXColumn    = "LX"
	SoundColumn = "Sound"
	VideoColumn = "Video"
)

// Simple returns the generic template: an LX go, a sound start and a video
// start per row. A row with only one of those becomes that bare cue.
func Simple() *Template {
	t := New(IDColumn, PageColumn, CommentColumn, map[string]CueParser{
		LXColumn:    parseLX,
		SoundColumn: startParser("S"),
		VideoColumn: startParser("V"),
	})
	t.WrapSingleProducerRows = false
	return t
}

// parseLX reads "<lx cue> [L<cue list>] [P<patch>]".
func parseLX(parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
	if len(parts) < 1 {
		acc.Add(issues.Error, line, "", "MISSING_PARAMETERS", "The LX cue number is missing")
		return nil
	}

	i := 0
	cue := cues.NewLxGo(parts[i], preWait)
	i++
	if i < len(parts) && strings.HasPrefix(parts[i], "L") {
		cue.CueList = prefixedInt(parts[i], line, acc)
		i++
	}
	if i < len(parts) && strings.HasPrefix(parts[i], "P") {
		cue.Patch = prefixedInt(parts[i], line, acc)
		i++
	}
	if i < len(parts) {
		acc.Add(issues.Warn, line, fmt.Sprint(parts[i:]), "EXTRA_PARAMETERS",
			"Only the LX cue number, cue list (L) and patch (P) were expected")
	}
	return []cues.Cue{cue}
}

// prefixedInt parses the integer after a one letter prefix, e.g. "L2".
func prefixedInt(token string, line int, acc *issues.Acceptor) *int {
	n, err := strconv.Atoi(token[1:])
	if err != nil {
		acc.Add(issues.Warn, line, token, "INVALID_LX_PARAMETER", "Expected an integer after the prefix; the parameter is ignored")
		return nil
	}
	return &n
}

func startParser(prefix string) CueParser {
	return func(parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
		if len(parts) < 1 {
			acc.Add(issues.Error, line, "", "MISSING_PARAMETERS", "The cue to start is missing")
			return nil
		}
		if len(parts) > 1 {
			acc.Add(issues.Warn, line, fmt.Sprint(parts), "EXTRA_PARAMETERS", "Only the cue number to start was expected")
		}
		return []cues.Cue{cues.NewStart(prefix+parts[0], preWait)}
	}
}
