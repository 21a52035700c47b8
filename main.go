package main

import (
	"flag"
	"log"
	"math"

	"MissileCommand/internal/game"
	"MissileCommand/internal/server"
	"MissileCommand/internal/tui"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	configPath := flag.String("config", "configs/world.json", "path to world tuning JSON")
	maxAmmo := flag.Int("max-ammo", -1, "override silo ammunition capacity")
	reloadMs := flag.Int64("reload-ms", -1, "override silo reload interval in milliseconds")
	spawnMs := flag.Int64("spawn-ms", -1, "override attacker spawn interval in milliseconds")
	maxAttackers := flag.Int("max-attackers", -1, "override the live attacker cap (0 disables spawning)")
	repairMs := flag.Int64("repair-ms", -1, "override city repair duration in milliseconds")
	explosionSpeed := flag.Float64("explosion-speed", math.NaN(), "override explosion growth per tick")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	playTUI := flag.Bool("tui", false, "play a local match in the terminal instead of serving")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.ConfigPath = *configPath

	var overrides server.ParamOverrides

	if *maxAmmo >= 0 {
		val := *maxAmmo
		overrides.MaxAmmo = &val
	}
	if *reloadMs >= 0 {
		val := *reloadMs
		overrides.ReloadMs = &val
	}
	if *spawnMs >= 0 {
		val := *spawnMs
		overrides.SpawnIntervalMs = &val
	}
	if *maxAttackers >= 0 {
		val := *maxAttackers
		overrides.MaxAttackers = &val
	}
	if *repairMs >= 0 {
		val := *repairMs
		overrides.RepairMs = &val
	}
	if !math.IsNaN(*explosionSpeed) {
		val := *explosionSpeed
		overrides.ExplosionSpeed = &val
	}
	if *seed != 0 {
		val := *seed
		overrides.Seed = &val
	}

	cfg.Overrides = overrides

	if *playTUI {
		room := game.NewRoom("local", server.ResolveParams(cfg))
		if err := tui.Run(room); err != nil {
			log.Fatalf("tui: %v", err)
		}
		return
	}

	server.StartApp(*addr, cfg)
}
