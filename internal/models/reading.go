package models

import "time"

// Reading is a single temperature/humidity sample reported by the device.
type Reading struct {
	Temperature float64   `json:"temperature"` // °C
	Humidity    float64   `json:"humidity"`    // %RH
	CapturedAt  time.Time `json:"timestamp"`
}
