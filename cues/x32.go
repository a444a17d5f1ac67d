package cues

import (
	"fmt"

	"github.com/hypebeast/go-osc/osc"

	"github.com/zenibako/qlab-csv/messages"
)

// Colour is an X32 scribble strip colour.
type Colour int32

const (
	ColourOff Colour = iota
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMagenta
	ColourCyan
	ColourWhite
)

// Inverted returns the inverted variant of c.
func (c Colour) Inverted() Colour {
	if c >= 8 {
		return c
	}
	return c + 8
}

var colourNames = [...]string{"OFF", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

// String is the palette name, e.g. "RED" or "RED_INVERTED".
func (c Colour) String() string {
	switch {
	case c >= 0 && c < 8:
		return colourNames[c]
	case c >= 8 && c < 16:
		return colourNames[c-8] + "_INVERTED"
	}
	return fmt.Sprintf("Colour(%d)", int32(c))
}

// X32Cue is a cue that QLab sends to the mixer as a single OSC message.
type X32Cue interface {
	Cue
	// PatchNumber selects the QLab network patch, i.e. which mixer.
	PatchNumber() int
	OSCMessage() *osc.Message
}

var addresses = messages.NewX32AddressBuilder()

type x32Base struct {
	base
	Patch int
}

// PatchNumber returns the QLab network patch.
func (b *x32Base) PatchNumber() int { return b.Patch }

// X32AssignChannelToDCA makes DCA the only DCA the channel belongs to.
// A nil DCA removes the channel from every DCA.
type X32AssignChannelToDCA struct {
	x32Base
	Channel int
	DCA     *int
}

// NewX32AssignChannelToDCA returns a cue assigning channel to dca, or to none when dca is nil.
func NewX32AssignChannelToDCA(patch, channel int, dca *int, preWait float64) *X32AssignChannelToDCA {
	return &X32AssignChannelToDCA{
		x32Base: x32Base{base: newBase(preWait), Patch: patch},
		Channel: channel,
		DCA:     dca,
	}
}

// Name is "Assign channel <ch> to DCA <n>" or "Unassign channel <ch>".
func (c *X32AssignChannelToDCA) Name() string {
	if c.DCA == nil {
		return fmt.Sprintf("Unassign channel %d", c.Channel)
	}
	return fmt.Sprintf("Assign channel %d to DCA %d", c.Channel, *c.DCA)
}

// Description is "CH03>DCA2", or "CH03>-" when unassigning.
func (c *X32AssignChannelToDCA) Description() string {
	if c.DCA == nil {
		return fmt.Sprintf("CH%02d>-", c.Channel)
	}
	return fmt.Sprintf("CH%02d>DCA%d", c.Channel, *c.DCA)
}

// OSCMessage sets /ch/NN/grp/dca to the DCA bitmask.
func (c *X32AssignChannelToDCA) OSCMessage() *osc.Message {
	var mask int32
	if c.DCA != nil {
		mask = messages.DCAMask(*c.DCA)
	}
	return osc.NewMessage(addresses.ChannelAddress(messages.MsgChannelDCA, c.Channel), mask)
}

// X32SetChannelMixOn turns a channel's mix on or off (unmute/mute).
type X32SetChannelMixOn struct {
	x32Base
	Channel int
	On      bool
}

// NewX32SetChannelMixOn returns a cue unmuting (on) or muting channel.
func NewX32SetChannelMixOn(patch, channel int, on bool, preWait float64) *X32SetChannelMixOn {
	return &X32SetChannelMixOn{
		x32Base: x32Base{base: newBase(preWait), Patch: patch},
		Channel: channel,
		On:      on,
	}
}

// Name is "Unmute channel <ch>" or "Mute channel <ch>".
func (c *X32SetChannelMixOn) Name() string {
	if c.On {
		return fmt.Sprintf("Unmute channel %d", c.Channel)
	}
	return fmt.Sprintf("Mute channel %d", c.Channel)
}

// Description is "CH03 ON" or "CH03 OFF".
func (c *X32SetChannelMixOn) Description() string {
	if c.On {
		return fmt.Sprintf("CH%02d ON", c.Channel)
	}
	return fmt.Sprintf("CH%02d OFF", c.Channel)
}

// OSCMessage sets /ch/NN/mix/on to 1 or 0.
func (c *X32SetChannelMixOn) OSCMessage() *osc.Message {
	var on int32
	if c.On {
		on = 1
	}
	return osc.NewMessage(addresses.ChannelAddress(messages.MsgChannelMixOn, c.Channel), on)
}

// X32SetDCAName sets the scribble strip name of a DCA.
type X32SetDCAName struct {
	x32Base
	DCA   int
	Label string
}

// NewX32SetDCAName returns a cue naming dca.
func NewX32SetDCAName(patch, dca int, name string, preWait float64) *X32SetDCAName {
	return &X32SetDCAName{
		x32Base: x32Base{base: newBase(preWait), Patch: patch},
		DCA:     dca,
		Label:   name,
	}
}

// Name is `Name DCA <n> "<label>"`.
func (c *X32SetDCAName) Name() string {
	return fmt.Sprintf("Name DCA %d %q", c.DCA, c.Label)
}

// Description is `DCA<n>="<label>"`.
func (c *X32SetDCAName) Description() string {
	return fmt.Sprintf("DCA%d=%q", c.DCA, c.Label)
}

// OSCMessage sets /dca/N/config/name.
func (c *X32SetDCAName) OSCMessage() *osc.Message {
	return osc.NewMessage(addresses.DCAAddress(messages.MsgDCAName, c.DCA), c.Label)
}

// X32SetDCAColour sets the scribble strip colour of a DCA.
type X32SetDCAColour struct {
	x32Base
	DCA    int
	Colour Colour
}

// NewX32SetDCAColour returns a cue colouring dca.
func NewX32SetDCAColour(patch, dca int, colour Colour, preWait float64) *X32SetDCAColour {
	return &X32SetDCAColour{
		x32Base: x32Base{base: newBase(preWait), Patch: patch},
		DCA:     dca,
		Colour:  colour,
	}
}

// Name is "Colour DCA <n> <colour>".
func (c *X32SetDCAColour) Name() string {
	return fmt.Sprintf("Colour DCA %d %s", c.DCA, c.Colour)
}

// Description is "DCA<n> <colour>".
func (c *X32SetDCAColour) Description() string {
	return fmt.Sprintf("DCA%d %s", c.DCA, c.Colour)
}

// OSCMessage sets /dca/N/config/color.
func (c *X32SetDCAColour) OSCMessage() *osc.Message {
	return osc.NewMessage(addresses.DCAAddress(messages.MsgDCAColour, c.DCA), int32(c.Colour))
}
