package qlab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hypebeast/go-osc/osc"

	"github.com/zenibako/qlab-csv/cues"
)

// FromCues converts a compiled cue tree into QLab workspace records.
func FromCues(cs []cues.Cue) []Cue {
	records := make([]Cue, 0, len(cs))
	for _, c := range cs {
		records = append(records, fromCue(c))
	}
	return records
}

func fromCue(c cues.Cue) Cue {
	record := Cue{
		Name:    c.Name(),
		Number:  c.Number(),
		Notes:   c.Comment(),
		PreWait: c.PreWait(),
	}

	switch v := c.(type) {
	case *cues.Group:
		record.Type = CueTypeGroup
		record.Mode = GroupModeTimeline
		record.Cues = FromCues(v.Children)
	case *cues.Start:
		record.Type = CueTypeStart
		record.CueTargetNumber = v.Target
	case *cues.LxGo:
		record.Type = CueTypeMIDI
		record.MessageType = MIDIMessageTypeMSC
		record.MSCCommandFormat = MSCFormatLightingGeneral
		record.MSCCommand = MSCCommandGo
		record.QNumber = v.LxNumber
		if v.CueList != nil {
			record.QList = strconv.Itoa(*v.CueList)
		}
		if v.Patch != nil {
			record.Patch = *v.Patch
		}
	case *cues.LogScript:
		record.Type = CueTypeScript
		record.ScriptSource = v.Script()
	case cues.X32Cue:
		record.Type = CueTypeNetwork
		record.Patch = v.PatchNumber()
		record.CustomString = OSCCommand(v.OSCMessage())
	default:
		record.Type = CueTypeMemo
	}

	return record
}

// OSCCommand formats msg the way QLab network cues expect it:
// the address followed by space separated arguments, strings quoted.
func OSCCommand(msg *osc.Message) string {
	var b strings.Builder
	b.WriteString(msg.Address)
	for _, arg := range msg.Arguments {
		b.WriteString(" ")
		switch a := arg.(type) {
		case string:
			b.WriteString(strconv.Quote(a))
		case float32:
			b.WriteString(strconv.FormatFloat(float64(a), 'f', -1, 32))
		default:
			fmt.Fprintf(&b, "%v", a)
		}
	}
	return b.String()
}
