package dto

type ExtractTextResponse struct {
	SessionID     string            `json:"session_id"`
	ExtractedText map[string]string `json:"extracted_text"`
}

type FileInfoResponse struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type ListFilesResponse struct {
	Files []FileInfoResponse `json:"files"`
}
