package dex

// LanguageEnglish is the only language the client requests
const LanguageEnglish = "en"

// BasicsRequest is the body posted to dump-basics
type BasicsRequest struct {
	Gen      Generation `json:"gen"`
	Language string     `json:"language"`
}

// DetailRequest is the body posted to dump-pokemon and dump-format
type DetailRequest struct {
	Gen      Generation `json:"gen"`
	Alias    string     `json:"alias"`
	Language string     `json:"language"`
}
