package qlab

import (
	"fmt"
	"slices"
	"strings"
)

// WriteCueFile generates a CUE file string from a workspace name and cues.
// Every cue is normalized first so the output always carries a type.
func WriteCueFile(workspaceName string, cues []Cue, comment string) string {
	var builder strings.Builder
	builder.WriteString("package qlab\n\n")

	if comment != "" {
		safeComment := strings.ReplaceAll(comment, "\n", " ")
		safeComment = strings.ReplaceAll(safeComment, "\r", " ")
		fmt.Fprintf(&builder, "// %s\n", safeComment)
	}

	builder.WriteString("workspace: {\n")
	fmt.Fprintf(&builder, "\tname: %q\n", workspaceName)
	builder.WriteString("\tcues: [\n")

	for _, c := range cues {
		NormalizeCue(&c)
		writeCue(&builder, c, 2)
	}

	builder.WriteString("\t]\n")
	builder.WriteString("}\n")

	return builder.String()
}

// writeCue recursively writes a cue and its children with proper indentation
func writeCue(builder *strings.Builder, c Cue, indent int) {
	indentStr := strings.Repeat("\t", indent)

	builder.WriteString(indentStr + "{\n")

	// Type is required
	fmt.Fprintf(builder, "%s\ttype: %q\n", indentStr, c.Type)

	if c.Number != "" {
		fmt.Fprintf(builder, "%s\tnumber: %q\n", indentStr, c.Number)
	}
	if c.Name != "" {
		fmt.Fprintf(builder, "%s\tname: %q\n", indentStr, c.Name)
	}

	// Mode (optional for group cues)
	if c.Mode > 0 {
		fmt.Fprintf(builder, "%s\tmode: %d\n", indentStr, c.Mode)
	}

	if c.Notes != "" && c.Notes != c.Name {
		fmt.Fprintf(builder, "%s\tnotes: %q\n", indentStr, c.Notes)
	}

	// PreWait is written as a string to match QLab's OSC format
	if c.PreWait > 0 {
		fmt.Fprintf(builder, "%s\tpreWait: %q\n", indentStr, fmt.Sprintf("%g", c.PreWait))
	}

	if c.CueTargetNumber != "" {
		fmt.Fprintf(builder, "%s\tcueTargetNumber: %q\n", indentStr, c.CueTargetNumber)
	}

	if c.Patch > 0 {
		fmt.Fprintf(builder, "%s\tpatch: %d\n", indentStr, c.Patch)
	}
	if c.CustomString != "" {
		fmt.Fprintf(builder, "%s\tcustomString: %q\n", indentStr, c.CustomString)
	}

	// MSC fields only mean something together
	if c.MessageType == MIDIMessageTypeMSC {
		fmt.Fprintf(builder, "%s\tmessageType: %d\n", indentStr, c.MessageType)
		fmt.Fprintf(builder, "%s\tcommandFormat: %d\n", indentStr, c.MSCCommandFormat)
		fmt.Fprintf(builder, "%s\tcommand: %d\n", indentStr, c.MSCCommand)
		fmt.Fprintf(builder, "%s\tqNumber: %q\n", indentStr, c.QNumber)
		if c.QList != "" {
			fmt.Fprintf(builder, "%s\tqList: %q\n", indentStr, c.QList)
		}
	}

	if c.ScriptSource != "" {
		fmt.Fprintf(builder, "%s\tscriptSource: %q\n", indentStr, c.ScriptSource)
	}

	if len(c.Cues) > 0 {
		builder.WriteString(indentStr + "\tcues: [\n")
		for _, childCue := range c.Cues {
			writeCue(builder, childCue, indent+2)
		}
		builder.WriteString(indentStr + "\t]\n")
	}

	builder.WriteString(indentStr + "},\n")
}

// NormalizeCue fills in defaults so every record can be written out
func NormalizeCue(c *Cue) {
	if c.Type == "" {
		if len(c.Cues) > 0 {
			c.Type = CueTypeGroup
		} else {
			c.Type = CueTypeMemo
		}
	}

	if c.Type == CueTypeGroup && c.Mode == GroupModeList {
		c.Mode = GroupModeTimeline
	}

	if c.PreWait < 0 {
		c.PreWait = 0
	}

	// MSC cues need a command to do anything
	if c.MessageType == MIDIMessageTypeMSC {
		if c.MSCCommandFormat == 0 {
			c.MSCCommandFormat = MSCFormatLightingGeneral
		}
		if c.MSCCommand == 0 {
			c.MSCCommand = MSCCommandGo
		}
	}

	// Children are copied so normalizing a copy never reaches the caller's tree
	c.Cues = slices.Clone(c.Cues)
	for i := range c.Cues {
		NormalizeCue(&c.Cues[i])
	}
}
