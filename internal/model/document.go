package model

const MIMETypePDF = "application/pdf"

// DocumentPayload holds one reference document fetched for a single
// request. It lives in memory only and is never cached across requests.
type DocumentPayload struct {
	FileID   string `json:"file_id"`
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"-"`
}
