// Command flatten composes a chain of affine transformations and maps points through it.
//
// The chain and the points are read from the environment:
//
//	PLANAR_TRANSFORMS="2,0,0,3,5,7;1,0,0,1,-1,0" PLANAR_POINTS="1,1;0,0" flatten
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/planar/gm"
	"github.com/oliverbestmann/planar/internal/config"
	"github.com/pkg/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	}

	flat := gm.FlattenTransforms(cfg.Transforms)

	slog.Debug("Flattened transforms",
		slog.Int("count", len(cfg.Transforms)),
		slog.Any("matrix", flat))

	inverse := flat.Invert()
	if !inverse.IsFinite() {
		slog.Warn("Transform chain is singular, points can not be mapped back",
			slog.Any("matrix", flat),
			slog.Float64("determinant", flat.Determinant()))
	}

	fmt.Printf("matrix: %s\n", flat)
	fmt.Printf("scale:  %v\n", flat.Scale())

	for _, p := range cfg.Points {
		mapped := gm.Transform(p, cfg.Transforms...)

		if inverse.IsFinite() {
			back := gm.Transform(mapped, inverse)
			if !back.Equals(p) {
				slog.Warn("Point does not survive the round trip",
					slog.Any("point", p),
					slog.Any("roundTrip", back),
					slog.Float64("error", gm.Distance(p, back)))
			}
		}

		fmt.Printf("%s -> %s\n", p, mapped)
	}
}
