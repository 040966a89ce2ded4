package model

import "time"

// Options is the character class selection a password was generated with.
type Options struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// HistoryItem represents one generated password retained in history.
type HistoryItem struct {
	ID           string
	Password     string
	Strength     string
	Length       int
	Options      Options
	ResponseTime time.Duration
	CreatedAt    time.Time
}

// HistoryItemResponse represents a history record in API responses.
type HistoryItemResponse struct {
	ID             string    `json:"id"`
	Password       string    `json:"password"`
	Strength       string    `json:"strength"`
	Length         int       `json:"length"`
	Options        Options   `json:"options"`
	ResponseTimeMS float64   `json:"response_time_ms"`
	CreatedAt      time.Time `json:"created_at"`
}
