// types.go
package config

// Raw config loaded from YAML; pointer fields keep "unset" distinguishable
// from zero during merging.
type RawConfig struct {
	Version   string       `yaml:"version"`
	Generator GeneratorCfg `yaml:"generator"`
	Server    *ServerCfg   `yaml:"server,omitempty"`
	Notes     string       `yaml:"notes,omitempty"`
}

type GeneratorCfg struct {
	Algo       string  `yaml:"algo"` // "xorshift" | "lcg32" | "bbs"
	Seed       *uint64 `yaml:"seed,omitempty"`
	BBSModulus *uint64 `yaml:"bbs_modulus,omitempty"`
}

type ServerCfg struct {
	Addr *string `yaml:"addr,omitempty"`
}

// Params is the normalized form handed to the generator factory after
// merging and validation.
type Params struct {
	Algo       string
	Seed       uint64
	BBSModulus uint64
	Addr       string
	Version    string // effective config version for tracing
}
