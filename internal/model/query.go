package model

// Query is one inbound question extracted from a verified webhook event.
// The reply token is single-use and only valid for the first response.
type Query struct {
	UserID     string `json:"user_id"`
	ReplyToken string `json:"reply_token"`
	Text       string `json:"text"`
}
