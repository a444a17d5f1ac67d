package qlab

// Cue represents a QLab cue record as it would be created in a workspace.
// Different cue types will use different subsets of these fields.
type Cue struct {
	// Common properties (all cue types)
	Type   string `json:"type" yaml:"type"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Notes  string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Timing properties
	PreWait float64 `json:"preWait,omitempty" yaml:"preWait,omitempty"`

	// Target properties (Start cues)
	CueTargetNumber string `json:"cueTargetNumber,omitempty" yaml:"cueTargetNumber,omitempty"`

	// Group properties
	Mode int   `json:"mode,omitempty" yaml:"mode,omitempty"` // 0=list, 3=timeline
	Cues []Cue `json:"cues,omitempty" yaml:"cues,omitempty"` // Child cues for Group cues

	// Network and MIDI cue properties
	Patch        int    `json:"patch,omitempty" yaml:"patch,omitempty"`               // Network or MIDI patch number
	CustomString string `json:"customString,omitempty" yaml:"customString,omitempty"` // OSC message for network cues

	// MIDI Show Control properties (LX go)
	MessageType      int    `json:"messageType,omitempty" yaml:"messageType,omitempty"`     // 2=MSC
	MSCCommandFormat int    `json:"commandFormat,omitempty" yaml:"commandFormat,omitempty"` // 1=lighting (general)
	MSCCommand       int    `json:"command,omitempty" yaml:"command,omitempty"`             // 1=GO
	QNumber          string `json:"qNumber,omitempty" yaml:"qNumber,omitempty"`             // Console cue number
	QList            string `json:"qList,omitempty" yaml:"qList,omitempty"`                 // Console cue list

	// Script cue properties
	ScriptSource string `json:"scriptSource,omitempty" yaml:"scriptSource,omitempty"`
}

// WorkspaceData represents the parsed workspace structure
type WorkspaceData struct {
	Name string `json:"name" yaml:"name"`
	Cues []Cue  `json:"cues" yaml:"cues"`
}

// CueType constants for type-safe cue type checking
const (
	CueTypeStart   = "start"
	CueTypeGroup   = "group"
	CueTypeMemo    = "memo"
	CueTypeScript  = "script"
	CueTypeMIDI    = "midi"
	CueTypeNetwork = "network"
)

// GroupMode constants
const (
	GroupModeList     = 0 // Cue list
	GroupModeTimeline = 3 // Timeline (start all children together)
)

// MIDI constants
const (
	MIDIMessageTypeMSC = 2

	MSCFormatLightingGeneral = 1
	MSCCommandGo             = 1
)
