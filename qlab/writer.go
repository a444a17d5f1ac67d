package qlab

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToWorkspaceData converts workspace name and cues to structured data.
// The caller can serialize this to JSON, YAML, or any other format.
func ToWorkspaceData(workspaceName string, cues []Cue) WorkspaceData {
	// Normalize all cues to ensure proper defaults
	normalizedCues := make([]Cue, len(cues))
	for i := range cues {
		normalizedCues[i] = cues[i]
		NormalizeCue(&normalizedCues[i])
	}

	return WorkspaceData{
		Name: workspaceName,
		Cues: normalizedCues,
	}
}

// ToJSON converts workspace name and cues to JSON format.
func ToJSON(workspaceName string, cues []Cue, indent bool) (string, error) {
	data := ToWorkspaceData(workspaceName, cues)
	var result []byte
	var err error

	if indent {
		result, err = json.MarshalIndent(data, "", "  ")
	} else {
		result, err = json.Marshal(data)
	}

	if err != nil {
		return "", fmt.Errorf("failed to marshal workspace data: %w", err)
	}

	return string(result), nil
}

// ToYAML converts workspace name and cues to YAML format.
func ToYAML(workspaceName string, cues []Cue) (string, error) {
	result, err := yaml.Marshal(ToWorkspaceData(workspaceName, cues))
	if err != nil {
		return "", fmt.Errorf("failed to marshal workspace data: %w", err)
	}
	return string(result), nil
}
