package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/oliverbestmann/planar/gm"
)

type Config struct {
	// Transforms is the chain to flatten, in the order a point passes through them
	Transforms MatrixList `envconfig:"TRANSFORMS" default:"1,0,0,1,0,0"`
	Points     PointList  `envconfig:"POINTS" default:"0,0"`
	Profile    string     `envconfig:"PROFILE"`
	LogLevel   slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("planar", &cfg); err != nil {
		return nil, err
	}

	switch cfg.Profile {
	case "", "cpu", "mem":
	default:
		return nil, fmt.Errorf("unknown profile mode %q", cfg.Profile)
	}

	return &cfg, nil
}

// MatrixList decodes matrices separated by ';', each one given as
// six comma separated coefficients "a,b,c,d,e,f".
type MatrixList []gm.Matrix

func (l *MatrixList) Decode(value string) error {
	var result MatrixList

	for _, item := range splitList(value) {
		values, err := parseFloats(item, 6)
		if err != nil {
			return fmt.Errorf("parse matrix %q: %w", item, err)
		}

		result = append(result, gm.MatrixOf(values[0], values[1], values[2], values[3], values[4], values[5]))
	}

	*l = result
	return nil
}

// PointList decodes points separated by ';', each one given as "x,y".
type PointList []gm.Point

func (l *PointList) Decode(value string) error {
	var result PointList

	for _, item := range splitList(value) {
		values, err := parseFloats(item, 2)
		if err != nil {
			return fmt.Errorf("parse point %q: %w", item, err)
		}

		result = append(result, gm.PointOf(values[0], values[1]))
	}

	*l = result
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}

func parseFloats(value string, count int) ([]float64, error) {
	fields := strings.Split(value, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("expected %d values, got %d", count, len(fields))
	}

	values := make([]float64, count)
	for idx, field := range fields {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}

		values[idx] = parsed
	}

	return values, nil
}
