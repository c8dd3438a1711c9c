package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/edsim/edsim/sim"
)

var errCancelled = errors.New("simulation cancelled")

// promptConfig shows the parameter form, pre-filled from cfg, and writes the
// answers back. Returns errCancelled when the user declines to start.
func promptConfig(cfg *sim.Config) error {
	arrival := strconv.FormatFloat(cfg.ArrivalRate, 'f', -1, 64)
	service := strconv.FormatFloat(cfg.ServiceRate, 'f', -1, 64)
	duration := strconv.Itoa(cfg.Duration)
	start := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("ED Hospital Simulation").
				Description("Patients arrive at random; the rates are recorded but the\ndurations are always drawn from 1 to 5 seconds."),
			huh.NewInput().
				Key("arrival_rate").
				Title("Arrival Rate (λ)").
				Value(&arrival).
				Validate(validateRate),
			huh.NewInput().
				Key("service_rate").
				Title("Service Rate (μ)").
				Value(&service).
				Validate(validateRate),
			huh.NewInput().
				Key("duration").
				Title("Simulation Duration (in seconds)").
				Value(&duration).
				Validate(validateDuration),
			huh.NewConfirm().
				Title("Start Simulation?").
				Value(&start),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("parameter form: %w", err)
	}
	if !start {
		return errCancelled
	}
	return applyFormValues(cfg, arrival, service, duration)
}

// applyFormValues parses validated form answers into cfg.
func applyFormValues(cfg *sim.Config, arrival, service, duration string) error {
	var err error
	if cfg.ArrivalRate, err = parseRate(arrival); err != nil {
		return fmt.Errorf("arrival rate: %w", err)
	}
	if cfg.ServiceRate, err = parseRate(service); err != nil {
		return fmt.Errorf("service rate: %w", err)
	}
	if cfg.Duration, err = parseDuration(duration); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	return nil
}

func validateRate(s string) error {
	_, err := parseRate(s)
	return err
}

func validateDuration(s string) error {
	_, err := parseDuration(s)
	return err
}

func parseRate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("must be a number")
	}
	if v < sim.MinRate {
		return 0, fmt.Errorf("must be at least %.1f", sim.MinRate)
	}
	return v, nil
}

func parseDuration(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("must be a whole number of seconds")
	}
	if v < sim.MinDurationTicks {
		return 0, fmt.Errorf("must be at least %d", sim.MinDurationTicks)
	}
	return v, nil
}
