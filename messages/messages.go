package messages

import (
	"fmt"
	"strings"
)

// OSC message types and address patterns for the Behringer X32/M32 console.
// QLab network cues carry these messages to the mixer.

// Message types
type MessageType string

const (
	// Channel messages
	MsgChannelMixOn MessageType = "channel_mix_on"
	MsgChannelDCA   MessageType = "channel_dca"

	// DCA messages
	MsgDCAName   MessageType = "dca_name"
	MsgDCAColour MessageType = "dca_colour"
)

// OSC Address patterns
const (
	// Channel level, {channel} is zero padded to two digits
	AddrChannelMixOn = "/ch/{channel}/mix/on"
	AddrChannelDCA   = "/ch/{channel}/grp/dca"

	// DCA level
	AddrDCAName   = "/dca/{dca}/config/name"
	AddrDCAColour = "/dca/{dca}/config/color"
)

// Console limits
const (
	MaxChannel = 32
	MaxDCA     = 8
)

// X32AddressBuilder builds X32 OSC addresses from message types and parameters
type X32AddressBuilder struct{}

// NewX32AddressBuilder creates a new address builder
func NewX32AddressBuilder() *X32AddressBuilder {
	return &X32AddressBuilder{}
}

// BuildAddress builds an OSC address from a message type and parameters.
// Unknown message types give "".
func (b *X32AddressBuilder) BuildAddress(msgType MessageType, params map[string]string) string {
	var address string

	switch msgType {
	case MsgChannelMixOn:
		address = AddrChannelMixOn
	case MsgChannelDCA:
		address = AddrChannelDCA
	case MsgDCAName:
		address = AddrDCAName
	case MsgDCAColour:
		address = AddrDCAColour
	default:
		return ""
	}

	for key, value := range params {
		placeholder := fmt.Sprintf("{%s}", key)
		address = strings.ReplaceAll(address, placeholder, value)
	}

	return address
}

// ChannelAddress builds a channel level address, padding the channel number.
func (b *X32AddressBuilder) ChannelAddress(msgType MessageType, channel int) string {
	return b.BuildAddress(msgType, map[string]string{
		"channel": fmt.Sprintf("%02d", channel),
	})
}

// DCAAddress builds a DCA level address.
func (b *X32AddressBuilder) DCAAddress(msgType MessageType, dca int) string {
	return b.BuildAddress(msgType, map[string]string{
		"dca": fmt.Sprintf("%d", dca),
	})
}

// DCAMask returns the /grp/dca bitmask assigning a channel to a single DCA.
// A dca outside 1..MaxDCA gives 0, which removes the channel from every DCA.
func DCAMask(dca int) int32 {
	if dca < 1 || dca > MaxDCA {
		return 0
	}
	return int32(1) << (dca - 1)
}
