// config.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements LoadConfig: reads engine defaults (top-N,
// simulation count, simulation seed) from the process environment,
// optionally populated from a .env file for local development.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package crossplay

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the engine's request defaults, overridable per call via
// Options.
type Config struct {
	TopN    int
	NSims   int
	SimSeed int64
}

// DefaultConfig returns the engine's built-in defaults: top 10 moves,
// 50 simulation trials, seed 0 (a fixed seed, so simulation results
// repeat from run to run unless the caller supplies another).
func DefaultConfig() Config {
	return Config{TopN: 10, NSims: 50, SimSeed: 0}
}

// LoadConfig loads a .env file if present (a missing file is not an
// error — most deployments set real environment variables instead),
// then overrides DefaultConfig with any of CROSSPLAY_TOP_N,
// CROSSPLAY_N_SIMS, CROSSPLAY_SIM_SEED found in the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg := DefaultConfig()
	if v, ok := envInt("CROSSPLAY_TOP_N"); ok {
		cfg.TopN = v
	}
	if v, ok := envInt("CROSSPLAY_N_SIMS"); ok {
		cfg.NSims = v
	}
	if v, ok := envInt64("CROSSPLAY_SIM_SEED"); ok {
		cfg.SimSeed = v
	}
	return cfg
}

func envInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warn().Str("var", name).Str("value", raw).Msg("ignoring malformed integer env var")
		return 0, false
	}
	return v, true
}

func envInt64(name string) (int64, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Warn().Str("var", name).Str("value", raw).Msg("ignoring malformed integer env var")
		return 0, false
	}
	return v, true
}
