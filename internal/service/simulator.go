package service

import (
	"context"
	"math"
	"sync"
	"time"

	"hvac_hub/internal/logger"
	"hvac_hub/internal/models"
)

// Simulation constants
const (
	AmbientC           = 31.0 // outdoor-driven room temperature °C with the unit off
	AmbientHumidity    = 65.0 // %RH with the unit off
	DryHumidity        = 40.0 // %RH floor reached in dry mode
	CoolRateCPerSec    = 0.02
	HeatRateCPerSec    = 0.02
	DriftRateCPerSec   = 0.005
	HumidityRatePerSec = 0.02
)

// deviceState mirrors what the firmware keeps in RAM.
type deviceState struct {
	Power        models.Switch
	SetPoint     int
	Mode         models.Mode
	FanSpeed     models.FanSpeed
	TimerMinutes int
	Swing        models.Switch
}

func (d deviceState) patch() models.HvacPatch {
	power, setPoint, mode, fan, timer, swing := d.Power, d.SetPoint, d.Mode, d.FanSpeed, d.TimerMinutes, d.Swing
	return models.HvacPatch{
		Power:        &power,
		SetPoint:     &setPoint,
		Mode:         &mode,
		FanSpeed:     &fan,
		TimerMinutes: &timer,
		Swing:        &swing,
	}
}

// DeviceSimulator plays the role of the wall unit: it pulls web commands,
// enforces the schedule, models the room and reports back with a full snapshot.
type DeviceSimulator struct {
	ingest Ingestion
	hvac   Hvac
	sched  Schedule
	log    *logger.Logger

	mu          sync.Mutex
	state       deviceState
	roomC       float64
	humidity    float64
	lastApplied time.Time
}

// NewDeviceSimulator returns a simulator with firmware defaults.
func NewDeviceSimulator(ingest Ingestion, hvac Hvac, sched Schedule, log *logger.Logger) *DeviceSimulator {
	if log == nil {
		log = logger.Nop()
	}
	return &DeviceSimulator{
		ingest: ingest,
		hvac:   hvac,
		sched:  sched,
		log:    log.With("component", "simulator"),
		state: deviceState{
			Power:    models.SwitchOn,
			SetPoint: 24,
			Mode:     models.ModeCool,
			FanSpeed: models.FanMedium,
			Swing:    models.SwitchOn,
		},
		roomC:    AmbientC,
		humidity: AmbientHumidity,
	}
}

// Run reports once, then every tick until ctx is canceled.
func (s *DeviceSimulator) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	s.step(ctx, 0)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.step(ctx, now.Sub(last))
			last = now
		}
	}
}

// step runs one poll/apply/model/report cycle.
func (s *DeviceSimulator) step(ctx context.Context, elapsed time.Duration) {
	s.mu.Lock()
	s.pollCommand()
	s.applySchedule()
	s.advance(elapsed.Seconds())
	temp, hum := round1(s.roomC), round1(s.humidity)
	snapshot := s.state.patch()
	s.mu.Unlock()

	if _, err := s.ingest.IngestReading(ctx, ReadingInput{
		Temperature: &temp,
		Humidity:    &hum,
		Hvac:        &snapshot,
	}); err != nil {
		s.log.Warnw("report_failed", "error", err)
	}
}

// pollCommand applies the shared record only if it is a web write newer than
// the last one applied. The device's own reports come back tagged device and
// are skipped. Returns true if a command was applied.
func (s *DeviceSimulator) pollCommand() bool {
	cmd := s.hvac.HvacSettings()
	if cmd.Origin != models.OriginWeb || cmd.UpdatedAt == nil || !cmd.UpdatedAt.After(s.lastApplied) {
		return false
	}

	if cmd.Power != nil {
		s.state.Power = *cmd.Power
	}
	if cmd.SetPoint != nil {
		s.state.SetPoint = *cmd.SetPoint
	}
	if cmd.Mode != nil {
		s.state.Mode = *cmd.Mode
	}
	if cmd.FanSpeed != nil {
		s.state.FanSpeed = *cmd.FanSpeed
	}
	if cmd.TimerMinutes != nil {
		s.state.TimerMinutes = *cmd.TimerMinutes
	}
	if cmd.Swing != nil {
		s.state.Swing = *cmd.Swing
	}
	s.lastApplied = *cmd.UpdatedAt
	s.log.Infow("command_applied", "power", s.state.Power, "set_temp", s.state.SetPoint, "mode", s.state.Mode)
	return true
}

// applySchedule forces power to follow an enabled schedule. Returns true if power changed.
func (s *DeviceSimulator) applySchedule() bool {
	st, err := s.sched.ScheduleStatus()
	if err != nil {
		s.log.Warnw("schedule_status_failed", "error", err)
		return false
	}
	if !st.ScheduleActive || st.ShouldBeOn == nil {
		return false
	}
	want := models.SwitchOff
	if *st.ShouldBeOn {
		want = models.SwitchOn
	}
	if s.state.Power == want {
		return false
	}
	s.state.Power = want
	s.log.Infow("schedule_power", "power", want, "current_time", st.CurrentTime)
	return true
}

// advance moves room temperature and humidity forward by elapsed seconds.
func (s *DeviceSimulator) advance(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	target := float64(s.state.SetPoint)
	running := s.state.Power == models.SwitchOn

	switch {
	case running && (s.state.Mode == models.ModeCool || s.state.Mode == models.ModeAuto) && s.roomC > target:
		s.roomC = math.Max(s.roomC-CoolRateCPerSec*elapsed, target)
	case running && (s.state.Mode == models.ModeHeat || s.state.Mode == models.ModeAuto) && s.roomC < target:
		s.roomC = math.Min(s.roomC+HeatRateCPerSec*elapsed, target)
	case running && s.state.Mode != models.ModeFan && s.state.Mode != models.ModeDry:
		// holding at set point
	default:
		s.roomC = approach(s.roomC, AmbientC, DriftRateCPerSec*elapsed)
	}

	humTarget := AmbientHumidity
	if running && s.state.Mode == models.ModeDry {
		humTarget = DryHumidity
	}
	s.humidity = approach(s.humidity, humTarget, HumidityRatePerSec*elapsed)
}

// helpers
func approach(v, target, step float64) float64 {
	if v > target {
		return math.Max(v-step, target)
	}
	return math.Min(v+step, target)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
