package model

type Channel string

const (
	// ChannelReply consumes the single-use reply token of the inbound event.
	ChannelReply Channel = "reply"
	// ChannelPush addresses the user by persistent identifier.
	ChannelPush Channel = "push"
)

type MessageChunk struct {
	Index   int     `json:"index"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}
