package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/zenibako/qlab-csv/cues"
	"github.com/zenibako/qlab-csv/issues"
	"github.com/zenibako/qlab-csv/messages"
)

// MuteColumn mutes and unassigns the channel given in the cell.
const MuteColumn = "Mute"

// BuildX32 derives a template for an X32 mixer from the header row of a plot.
// patch is the QLab network patch the mixer is on.
//
// "Mute" and "DCA<n>"/"VCA<n>" columns get parsers; any other column is
// reported and skipped. Only a missing id column makes the build fail, in
// which case nil is returned.
func BuildX32(columnNames []string, patch int, acc *issues.Acceptor) *Template {
	remaining := make([]string, 0, len(columnNames))
	var hasID, hasComment, hasPage bool
	for _, name := range columnNames {
		switch name {
		case IDColumn:
			hasID = true
		case CommentColumn:
			hasComment = true
		case PageColumn:
			hasPage = true
		default:
			remaining = append(remaining, name)
		}
	}
	if !hasID {
		acc.Add(issues.Fatal, 1, "", "MISSING_HEADER_COLUMN", "Missing ID column : "+IDColumn)
		return nil
	}

	parsers := make(map[string]CueParser)
	for _, name := range remaining {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if parser := buildX32CueParser(patch, name, acc); parser != nil {
			parsers[name] = parser
		}
	}

	var commentColumn, pageColumn string
	if hasComment {
		commentColumn = CommentColumn
	}
	if hasPage {
		pageColumn = PageColumn
	}

	log.Debug("Built X32 template", "patch", patch, "columns", len(parsers))

	t := New(IDColumn, pageColumn, commentColumn, parsers)
	t.WrapSingleProducerRows = true
	return t
}

func buildX32CueParser(patch int, columnName string, acc *issues.Acceptor) CueParser {
	if columnName == MuteColumn {
		return muteParser(patch)
	}

	if strings.HasPrefix(columnName, "VCA") || strings.HasPrefix(columnName, "DCA") {
		dcaString := strings.TrimSpace(columnName[3:])
		dca, err := strconv.Atoi(dcaString)
		if err != nil {
			acc.Add(issues.Error, 1, columnName, "INVALID_DCA_COLUMN_NAME", "Unable to parse DCA number from column name")
			return nil
		}
		if dca < 1 || dca > messages.MaxDCA {
			acc.Add(issues.Error, 1, columnName, "INVALID_DCA_COLUMN_NAME",
				fmt.Sprintf("The DCA number must be between 1 and %d", messages.MaxDCA))
			return nil
		}
		return dcaParser(patch, dca)
	}

	acc.Add(issues.Warn, 1, columnName, "UNKNOWN_COLUMN_NAME", "Unable to create CueParser for column.")
	return nil
}

func muteParser(patch int) CueParser {
	return func(parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
		if len(parts) < 1 {
			acc.Add(issues.Error, line, "", "MISSING_PARAMETERS", "The channel number to mute/unassign is missing")
			return nil
		}
		if len(parts) > 1 {
			acc.Add(issues.Warn, line, fmt.Sprint(parts), "EXTRA_PARAMETERS", "Only the channel number was expected")
		}
		channel, ok := parseChannel(parts[0])
		if !ok {
			acc.Add(issues.Error, line, parts[0], "INVALID_CHANNEL",
				fmt.Sprintf("The channel must be an integer value between 1 and %d", messages.MaxChannel))
			return nil
		}

		children := []cues.Cue{
			cues.NewX32AssignChannelToDCA(patch, channel, nil, preWait),
			cues.NewX32SetChannelMixOn(patch, channel, false, preWait),
		}
		return []cues.Cue{cues.NewDCAGroup(fmt.Sprintf("Mute channel %d", channel), 0, children)}
	}
}

func dcaParser(patch, dca int) CueParser {
	return func(parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
		if len(parts) < 1 {
			acc.Add(issues.Error, line, "", "MISSING_PARAMETERS", "The DCA name is missing")
			return nil
		}
		if parts[0] == "*" {
			return parseInactiveDCA(patch, dca, parts, preWait, acc, line)
		}
		return parseActiveDCA(patch, dca, parts, preWait, acc, line)
	}
}

// parseInactiveDCA handles "*": blank the DCA's name and turn its colour off.
func parseInactiveDCA(patch, dca int, parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
	if len(parts) > 1 {
		acc.Add(issues.Warn, line, fmt.Sprint(parts), "EXTRA_PARAMETERS", "Only the DCA name was expected")
	}
	children := []cues.Cue{
		cues.NewX32SetDCAName(patch, dca, "", preWait),
		cues.NewX32SetDCAColour(patch, dca, cues.ColourOff, preWait),
	}
	return []cues.Cue{cues.NewDCAGroup("Disable", dca, children)}
}

// parseActiveDCA handles "<name> <channel>+<channel>...".
func parseActiveDCA(patch, dca int, parts []string, preWait float64, acc *issues.Acceptor, line int) []cues.Cue {
	if len(parts) < 2 {
		acc.Add(issues.Error, line, "", "MISSING_PARAMETERS", "The DCA name and channel numbers are missing")
		return nil
	}
	if len(parts) > 2 {
		acc.Add(issues.Warn, line, fmt.Sprint(parts), "EXTRA_PARAMETERS", "Only the DCA name and channel numbers were expected")
	}

	name := parts[0]
	var channels []int
	for _, token := range strings.Split(parts[1], "+") {
		channel, ok := parseChannel(token)
		if !ok {
			acc.Add(issues.Error, line, token, "INVALID_DCA_CHANNELS",
				fmt.Sprintf("Channel numbers must be integers between 1 and %d", messages.MaxChannel))
			continue
		}
		channels = append(channels, channel)
	}

	children := []cues.Cue{
		cues.NewX32SetDCAName(patch, dca, name, preWait),
		cues.NewX32SetDCAColour(patch, dca, cues.ColourWhite, preWait),
	}
	for _, channel := range channels {
		assigned := dca
		children = append(children,
			cues.NewX32AssignChannelToDCA(patch, channel, &assigned, preWait),
			cues.NewX32SetChannelMixOn(patch, channel, true, preWait),
		)
	}
	return []cues.Cue{cues.NewDCAGroup(`Enable as "`+name+`"`, dca, children)}
}

func parseChannel(s string) (int, bool) {
	channel, err := strconv.Atoi(s)
	if err != nil || channel < 1 || channel > messages.MaxChannel {
		return 0, false
	}
	return channel, true
}
