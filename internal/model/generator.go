package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"omitempty,min=1,max=4096"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	ID             string  `json:"id"`
	Password       string  `json:"password"`
	Strength       string  `json:"strength"`
	Length         int     `json:"length"`
	PoolSize       int     `json:"pool_size"`
	ResponseTimeMS float64 `json:"response_time_ms"`
}
