package types

// OCRResponse is the success body of POST /api/ocr.
type OCRResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Length  int    `json:"length"`
}

// ErrorResponse is the failure body shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
