package views

// Default default view of pass-through payloads
type Default struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Success wrap data as a successful response
func Success(data interface{}) Default {
	return Default{
		Success: true,
		Data:    data,
	}
}
