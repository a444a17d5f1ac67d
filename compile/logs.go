package compile

import (
	"github.com/charmbracelet/log"

	"github.com/zenibako/qlab-csv/cues"
)

// ApplyLogs appends a log script cue to every top-level group when logPath is
// set, so running the show leaves a record of which cues fired. Bare
// top-level cues are not logged.
//
// The groups are changed in place and cs is returned. Calling ApplyLogs twice
// appends a second log cue to each group.
func ApplyLogs(cs []cues.Cue, logPath string) []cues.Cue {
	if logPath == "" {
		return cs
	}

	logged := 0
	for _, c := range cs {
		g, ok := c.(*cues.Group)
		if !ok {
			continue
		}
		g.Append(cues.NewLogScript(g.Number(), logPath, 0))
		logged++
	}

	log.Debug("Added log cues", "path", logPath, "groups", logged, "skipped", len(cs)-logged)
	return cs
}
