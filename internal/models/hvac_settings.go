package models

import (
	"fmt"
	"time"
)

// Origin names the writer that last changed the HVAC settings.
type Origin string

const (
	OriginDevice Origin = "device"
	OriginWeb    Origin = "web"
)

// Switch is an on/off toggle as sent by the device firmware.
type Switch string

const (
	SwitchOn  Switch = "on"
	SwitchOff Switch = "off"
)

type Mode string

const (
	ModeCool Mode = "cool"
	ModeHeat Mode = "heat"
	ModeFan  Mode = "fan"
	ModeDry  Mode = "dry"
	ModeAuto Mode = "auto"
)

type FanSpeed string

const (
	FanLow    FanSpeed = "low"
	FanMedium FanSpeed = "medium"
	FanHigh   FanSpeed = "high"
	FanAuto   FanSpeed = "auto"
)

// Set point bounds in °C, inclusive.
const (
	MinSetPoint = 16
	MaxSetPoint = 30
)

// HvacSettings is the shared settings record written by both the device and the web UI.
// Nil fields are unset.
type HvacSettings struct {
	Power        *Switch    `json:"power"`
	SetPoint     *int       `json:"set_temp"` // °C, always within [MinSetPoint, MaxSetPoint]
	Mode         *Mode      `json:"mode"`
	FanSpeed     *FanSpeed  `json:"fan_speed"`
	TimerMinutes *int       `json:"timer"`
	Swing        *Switch    `json:"swing"`
	UpdatedAt    *time.Time `json:"timestamp"`
	Origin       Origin     `json:"source,omitempty"`
}

// HvacPatch carries only the fields a writer wants to change. Nil means "leave as is".
type HvacPatch struct {
	Power        *Switch   `json:"power,omitempty"`
	SetPoint     *int      `json:"set_temp,omitempty"`
	Mode         *Mode     `json:"mode,omitempty"`
	FanSpeed     *FanSpeed `json:"fan_speed,omitempty"`
	TimerMinutes *int      `json:"timer,omitempty"`
	Swing        *Switch   `json:"swing,omitempty"`
}

// Clone returns a deep copy so callers never share pointers with the stored record.
func (s HvacSettings) Clone() HvacSettings {
	return HvacSettings{
		Power:        clonePtr(s.Power),
		SetPoint:     clonePtr(s.SetPoint),
		Mode:         clonePtr(s.Mode),
		FanSpeed:     clonePtr(s.FanSpeed),
		TimerMinutes: clonePtr(s.TimerMinutes),
		Swing:        clonePtr(s.Swing),
		UpdatedAt:    clonePtr(s.UpdatedAt),
		Origin:       s.Origin,
	}
}

// Merge copies the provided fields of p over s and returns the result.
// It does not validate; call Validate first.
func (s HvacSettings) Merge(p HvacPatch) HvacSettings {
	out := s.Clone()
	if p.Power != nil {
		out.Power = clonePtr(p.Power)
	}
	if p.SetPoint != nil {
		out.SetPoint = clonePtr(p.SetPoint)
	}
	if p.Mode != nil {
		out.Mode = clonePtr(p.Mode)
	}
	if p.FanSpeed != nil {
		out.FanSpeed = clonePtr(p.FanSpeed)
	}
	if p.TimerMinutes != nil {
		out.TimerMinutes = clonePtr(p.TimerMinutes)
	}
	if p.Swing != nil {
		out.Swing = clonePtr(p.Swing)
	}
	return out
}

// IsEmpty reports whether the patch changes nothing.
func (p HvacPatch) IsEmpty() bool {
	return p.Power == nil && p.SetPoint == nil && p.Mode == nil &&
		p.FanSpeed == nil && p.TimerMinutes == nil && p.Swing == nil
}

// Validate checks every provided field and returns the first violation.
func (p HvacPatch) Validate() error {
	if p.Power != nil && !p.Power.valid() {
		return NewValidationError("power", fmt.Sprintf("power must be %q or %q", SwitchOn, SwitchOff))
	}
	if p.SetPoint != nil && (*p.SetPoint < MinSetPoint || *p.SetPoint > MaxSetPoint) {
		return NewValidationError("set_temp",
			fmt.Sprintf("Temperature must be between %d°C and %d°C", MinSetPoint, MaxSetPoint))
	}
	if p.Mode != nil && !p.Mode.valid() {
		return NewValidationError("mode", "mode must be one of cool, heat, fan, dry, auto")
	}
	if p.FanSpeed != nil && !p.FanSpeed.valid() {
		return NewValidationError("fan_speed", "fan_speed must be one of low, medium, high, auto")
	}
	if p.TimerMinutes != nil && *p.TimerMinutes < 0 {
		return NewValidationError("timer", "timer must not be negative")
	}
	if p.Swing != nil && !p.Swing.valid() {
		return NewValidationError("swing", fmt.Sprintf("swing must be %q or %q", SwitchOn, SwitchOff))
	}
	return nil
}

func (s Switch) valid() bool { return s == SwitchOn || s == SwitchOff }

func (m Mode) valid() bool {
	switch m {
	case ModeCool, ModeHeat, ModeFan, ModeDry, ModeAuto:
		return true
	}
	return false
}

func (f FanSpeed) valid() bool {
	switch f {
	case FanLow, FanMedium, FanHigh, FanAuto:
		return true
	}
	return false
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
