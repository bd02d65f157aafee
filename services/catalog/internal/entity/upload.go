package entity

type UploadTicket struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PhotoURL  string `json:"photo_url"`
	ExpiresIn int    `json:"expires_in"`
}
