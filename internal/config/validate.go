package config

import (
	"errors"
	"fmt"

	"github.com/xtding233/randkit/internal/random"
)

var ErrUnknownAlgo = errors.New("unknown generator algorithm")

const (
	AlgoXorShift = "xorshift"
	AlgoLCG32    = "lcg32"
	AlgoBBS      = "bbs"

	defaultAddr = ":8080"
	defaultSeed = 1
)

// Normalize validates a merged RawConfig and fills defaults, producing the
// parameters the factory consumes.
func Normalize(raw RawConfig) (Params, error) {
	p := Params{
		Algo:    raw.Generator.Algo,
		Seed:    defaultSeed,
		Addr:    defaultAddr,
		Version: raw.Version,
	}
	if p.Algo == "" {
		p.Algo = AlgoXorShift
	}
	switch p.Algo {
	case AlgoXorShift, AlgoLCG32, AlgoBBS:
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownAlgo, p.Algo)
	}
	if raw.Generator.Seed != nil {
		p.Seed = *raw.Generator.Seed
	}
	if raw.Generator.BBSModulus != nil {
		p.BBSModulus = *raw.Generator.BBSModulus
	}
	if raw.Server != nil && raw.Server.Addr != nil && *raw.Server.Addr != "" {
		p.Addr = *raw.Server.Addr
	}
	return p, nil
}

// Build constructs a generator from normalized parameters.
func Build(p Params) (*random.Generator, error) {
	switch p.Algo {
	case AlgoXorShift:
		return random.New(random.NewXorShift(p.Seed)), nil
	case AlgoLCG32:
		return random.New(random.NewLCG32(p.Seed)), nil
	case AlgoBBS:
		return random.New(random.NewBBS(p.BBSModulus, p.Seed)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgo, p.Algo)
}
