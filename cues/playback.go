package cues

import (
	"fmt"
	"strings"
)

// Start fires another cue in the workspace, e.g. "S12" (sound) or "V3" (video).
type Start struct {
	base
	Target string
}

// NewStart returns a cue that starts target.
func NewStart(target string, preWait float64) *Start {
	return &Start{base: newBase(preWait), Target: target}
}

// Name is "Start <target>".
func (c *Start) Name() string        { return "Start " + c.Target }
// Description is the target number.
func (c *Start) Description() string { return c.Target }

// LxGo sends GO for a cue on the lighting console.
type LxGo struct {
	base
	LxNumber string
	CueList  *int // console cue list, nil for the console default
	Patch    *int // MIDI patch, nil for the workspace default
}

// NewLxGo returns a GO for console cue lxNumber in the default list.
func NewLxGo(lxNumber string, preWait float64) *LxGo {
	return &LxGo{base: newBase(preWait), LxNumber: lxNumber}
}

// Name is "LX Go <n>", with the cue list when one is set.
func (c *LxGo) Name() string {
	var name strings.Builder
	name.WriteString("LX Go " + c.LxNumber)
	if c.CueList != nil {
		fmt.Fprintf(&name, " (list %d)", *c.CueList)
	}
	return name.String()
}

// Description is "LX<n>".
func (c *LxGo) Description() string { return "LX" + c.LxNumber }

// LogScript appends a line recording that LogID fired to LogFile.
type LogScript struct {
	base
	LogID   string
	LogFile string
}

// NewLogScript returns a cue appending logID to logFile.
func NewLogScript(logID, logFile string, preWait float64) *LogScript {
	return &LogScript{base: newBase(preWait), LogID: logID, LogFile: logFile}
}

// Name is "Log <id>".
func (c *LogScript) Name() string        { return "Log " + c.LogID }
// Description is always "Log".
func (c *LogScript) Description() string { return "Log" }

// Script returns the AppleScript QLab runs for this cue. Each run appends
// "<ISO timestamp>,<log id>" to the log file.
func (c *LogScript) Script() string {
	line := fmt.Sprintf(`"$(date -u +%%Y-%%m-%%dT%%H:%%M:%%SZ),%s"`, shellEscape(c.LogID))
	command := fmt.Sprintf("echo %s >> %s", line, shellQuote(c.LogFile))
	return fmt.Sprintf("do shell script %q", command)
}

// shellQuote wraps s in single quotes for /bin/sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shellEscape escapes s for use inside a double quoted shell string.
func shellEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return r.Replace(s)
}
