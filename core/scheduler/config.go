package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds configuration for scheduled theme syncs.
type Config struct {
	// Cron is a standard 5-field expression or descriptor (@hourly). Empty disables scheduling.
	Cron string `mapstructure:"cron" default:""`
	// ThemeIDs is a comma-separated list of themes updated on every run.
	ThemeIDs string `mapstructure:"theme_ids" default:""`
	// DryRun computes patches and decisions without writing.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// Enabled reports whether a schedule is configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Cron) != ""
}

// ThemeIDList parses ThemeIDs. Blank entries are ignored.
func (c Config) ThemeIDList() ([]int, error) {
	ids := make([]int, 0)
	for _, part := range strings.Split(c.ThemeIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid theme id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
