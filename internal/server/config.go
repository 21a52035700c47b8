package server

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	. "MissileCommand/internal/game"
)

// ParamOverrides holds optional rule values. It is both the "sim" section of the
// world config file and the shape of command-line and query-string overrides.
type ParamOverrides struct {
	MaxAmmo            *int     `json:"maxAmmo"`
	ReloadMs           *int64   `json:"reloadMs"`
	SpawnIntervalMs    *int64   `json:"spawnIntervalMs"`
	MaxAttackers       *int     `json:"maxAttackers"`
	RepairMs           *int64   `json:"repairMs"`
	MissileRadius      *float64 `json:"missileRadius"`
	InterceptThreshold *float64 `json:"interceptThreshold"`
	DetonationRadius   *float64 `json:"detonationRadius"`
	ExplosionSpeed     *float64 `json:"explosionSpeed"`
	StepsPerTick       *int     `json:"stepsPerTick"`
	Seed               *int64   `json:"seed"`
}

type worldConfig struct {
	Sim *ParamOverrides `json:"sim"`
}

func (o ParamOverrides) apply(base Params) Params {
	if o.MaxAmmo != nil {
		base.MaxAmmo = *o.MaxAmmo
	}
	if o.ReloadMs != nil {
		base.ReloadMs = *o.ReloadMs
	}
	if o.SpawnIntervalMs != nil {
		base.SpawnIntervalMs = *o.SpawnIntervalMs
	}
	if o.MaxAttackers != nil {
		base.MaxAttackers = *o.MaxAttackers
	}
	if o.RepairMs != nil {
		base.RepairMs = *o.RepairMs
	}
	if o.MissileRadius != nil {
		base.MissileRadius = *o.MissileRadius
	}
	if o.InterceptThreshold != nil {
		base.InterceptThreshold = *o.InterceptThreshold
	}
	if o.DetonationRadius != nil {
		base.DetonationRadius = *o.DetonationRadius
	}
	if o.ExplosionSpeed != nil {
		base.ExplosionSpeed = *o.ExplosionSpeed
	}
	if o.StepsPerTick != nil {
		base.StepsPerTick = *o.StepsPerTick
	}
	if o.Seed != nil {
		base.Seed = *o.Seed
	}
	return SanitizeParams(base)
}

func loadParamsFromFile(path string, base Params) (Params, error) {
	if path == "" {
		return SanitizeParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return SanitizeParams(base), nil
		}
		return SanitizeParams(base), fmt.Errorf("read world config %q: %w", cleanPath, err)
	}
	var cfg worldConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SanitizeParams(base), fmt.Errorf("parse world config %q: %w", cleanPath, err)
	}
	if cfg.Sim == nil {
		return SanitizeParams(base), nil
	}
	return cfg.Sim.apply(base), nil
}

func applyParamOverrides(base Params, overrides ParamOverrides) Params {
	return overrides.apply(base)
}

func parseIntOverride(values url.Values, key string) (*int64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return nil, false
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &val, true
}

func parseFloatOverride(values url.Values, key string) (*float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return nil, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &val, true
}

func narrow(v *int64) *int {
	n := int(*v)
	return &n
}

// parseParamOverrides reads per-room rule overrides from a websocket query string.
func parseParamOverrides(values url.Values) (ParamOverrides, bool) {
	var overrides ParamOverrides
	var found bool

	if v, ok := parseIntOverride(values, "maxAmmo"); ok {
		overrides.MaxAmmo = narrow(v)
		found = true
	}
	if v, ok := parseIntOverride(values, "reloadMs"); ok {
		overrides.ReloadMs = v
		found = true
	}
	if v, ok := parseIntOverride(values, "spawnMs"); ok {
		overrides.SpawnIntervalMs = v
		found = true
	}
	if v, ok := parseIntOverride(values, "maxAttackers"); ok {
		overrides.MaxAttackers = narrow(v)
		found = true
	}
	if v, ok := parseIntOverride(values, "repairMs"); ok {
		overrides.RepairMs = v
		found = true
	}
	if v, ok := parseFloatOverride(values, "explosionSpeed"); ok {
		overrides.ExplosionSpeed = v
		found = true
	}
	if v, ok := parseIntOverride(values, "stepsPerTick"); ok {
		overrides.StepsPerTick = narrow(v)
		found = true
	}
	if v, ok := parseIntOverride(values, "seed"); ok {
		overrides.Seed = v
		found = true
	}
	return overrides, found
}
