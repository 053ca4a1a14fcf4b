package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/xtding233/randkit/internal/config"
	"github.com/xtding233/randkit/internal/dist"
	"github.com/xtding233/randkit/internal/random"
	"github.com/xtding233/randkit/internal/sim"
)

type envConfig struct {
	ConfigDir string `env:"CONFIG_DIR" envDefault:"config"`
	Profile   string `env:"PROFILE"`
	Addr      string `env:"ADDR"` // overrides the config file when set
}

type valueResp struct {
	Value any    `json:"value"`
	Err   string `json:"err,omitempty"`
}

type itemsResp struct {
	Item  string   `json:"item,omitempty"`
	Items []string `json:"items,omitempty"`
	Err   string   `json:"err,omitempty"`
}

var (
	log  zerolog.Logger
	gen  *random.Generator
	lock sync.Mutex
)

func parseFloat(r *http.Request, key string) (float64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseInt(r *http.Request, key string) (int64, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// one raw word from the source
func handleNext(w http.ResponseWriter, r *http.Request) {
	lock.Lock()
	v := gen.Next()
	lock.Unlock()
	writeJSON(w, http.StatusOK, valueResp{Value: v})
}

// one unit-interval draw
func handleUnit(w http.ResponseWriter, r *http.Request) {
	lock.Lock()
	v := gen.NextUnit()
	lock.Unlock()
	writeJSON(w, http.StatusOK, valueResp{Value: v})
}

// inclusive integer draw in [min, max]
func handleRange(w http.ResponseWriter, r *http.Request) {
	min, okMin, msg1 := parseInt(r, "min")
	max, okMax, msg2 := parseInt(r, "max")
	if !okMin || !okMax || msg1 != "" || msg2 != "" || min > max {
		http.Error(w, "params min and max required, min <= max", http.StatusBadRequest)
		return
	}
	lock.Lock()
	v := gen.NextInRange(min, max)
	lock.Unlock()
	writeJSON(w, http.StatusOK, valueResp{Value: v})
}

// continuous draw in [min, max)
func handleCRange(w http.ResponseWriter, r *http.Request) {
	min, okMin, msg1 := parseFloat(r, "min")
	max, okMax, msg2 := parseFloat(r, "max")
	if !okMin || !okMax || msg1 != "" || msg2 != "" || min >= max {
		http.Error(w, "params min and max required, min < max", http.StatusBadRequest)
		return
	}
	lock.Lock()
	v := gen.NextInCRange(min, max)
	lock.Unlock()
	writeJSON(w, http.StatusOK, valueResp{Value: v})
}

// uniform or weighted pick from ?items=a,b,c[&weights=1,2,3]
func handleChoice(w http.ResponseWriter, r *http.Request) {
	items := splitList(r.URL.Query().Get("items"))
	if len(items) == 0 {
		http.Error(w, "missing param items", http.StatusBadRequest)
		return
	}
	weightsRaw := r.URL.Query().Get("weights")

	lock.Lock()
	defer lock.Unlock()

	if weightsRaw == "" {
		writeJSON(w, http.StatusOK, itemsResp{Item: random.Choice(gen, items)})
		return
	}
	weights, msg := parseWeights(weightsRaw)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	item, err := random.WeightedChoice(gen, items, weights)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, itemsResp{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, itemsResp{Item: item})
}

// in-place shuffle of ?items=a,b,c
func handleShuffle(w http.ResponseWriter, r *http.Request) {
	items := splitList(r.URL.Query().Get("items"))
	if len(items) == 0 {
		http.Error(w, "missing param items", http.StatusBadRequest)
		return
	}
	lock.Lock()
	random.Shuffle(gen, items)
	lock.Unlock()
	writeJSON(w, http.StatusOK, itemsResp{Items: items})
}

// Monte Carlo summary of a geometric sampler: ?p=0.3&trials=10000
func handleSimulate(w http.ResponseWriter, r *http.Request) {
	p, ok, msg := parseFloat(r, "p")
	if !ok || msg != "" || p <= 0 || p >= 1 {
		http.Error(w, "param p required in (0,1)", http.StatusBadRequest)
		return
	}
	trials, ok, msg := parseInt(r, "trials")
	if !ok || msg != "" || trials <= 0 || trials > 1_000_000 {
		http.Error(w, "param trials required in 1..1000000", http.StatusBadRequest)
		return
	}
	g := dist.Geometric{P: p}
	lock.Lock()
	stats := sim.Run(gen, g, int(trials))
	lock.Unlock()
	writeJSON(w, http.StatusOK, struct {
		sim.Stats
		Expectation float64 `json:"expectation"`
		Variance    float64 `json:"variance"`
	}{stats, g.Expectation(), g.Variance()})
}

// full reseed of the shared generator: ?seed=42
func handleReseed(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("seed")
	seed, err := strconv.ParseUint(s, 10, 64)
	if s == "" || err != nil {
		http.Error(w, "missing/invalid param seed", http.StatusBadRequest)
		return
	}
	lock.Lock()
	gen.ResetSeed(seed)
	lock.Unlock()
	writeJSON(w, http.StatusOK, valueResp{Value: seed})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseWeights(s string) ([]float64, string) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, "invalid weights"
		}
		out[i] = v
	}
	return out, ""
}

func rebuild(loader *config.Loader, profile string) (config.Params, error) {
	raw, err := loader.LoadMerged(profile)
	if err != nil {
		return config.Params{}, err
	}
	params, err := config.Normalize(raw)
	if err != nil {
		return config.Params{}, err
	}
	g, err := config.Build(params)
	if err != nil {
		return config.Params{}, err
	}
	lock.Lock()
	gen = g
	lock.Unlock()
	return params, nil
}

func main() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatal().Err(err).Msg("parse env")
	}

	loader := config.NewLoader(ec.ConfigDir)
	params, err := rebuild(loader, ec.Profile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log.Info().
		Str("algo", params.Algo).
		Uint64("seed", params.Seed).
		Str("version", params.Version).
		Msg("generator ready")

	paths := []string{
		config.Paths{BaseDir: ec.ConfigDir}.DefaultPath(),
	}
	if ec.Profile != "" {
		paths = append(paths, config.Paths{BaseDir: ec.ConfigDir}.ProfilePath(ec.Profile))
	}
	watcher := config.NewWatcher(paths, 2*time.Second, func(path string) {
		loader.Invalidate()
		p, rerr := rebuild(loader, ec.Profile)
		if rerr != nil {
			log.Error().Err(rerr).Str("path", path).Msg("config reload failed; keeping old generator")
			return
		}
		log.Info().Str("path", path).Str("algo", p.Algo).Msg("config reloaded")
	})
	watcher.Start()
	defer watcher.Stop()

	addr := params.Addr
	if ec.Addr != "" {
		addr = ec.Addr
	}

	http.HandleFunc("/next", handleNext)
	http.HandleFunc("/unit", handleUnit)
	http.HandleFunc("/range", handleRange)
	http.HandleFunc("/crange", handleCRange)
	http.HandleFunc("/choice", handleChoice)
	http.HandleFunc("/shuffle", handleShuffle)
	http.HandleFunc("/simulate", handleSimulate)
	http.HandleFunc("/reseed", handleReseed)

	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
