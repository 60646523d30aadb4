package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nexus-mod-tracker/config"
	"nexus-mod-tracker/db"
	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/nexus"

	"go.uber.org/zap"
)

// bootstrap handles shared initialization logic for commands.
func bootstrap(path string) (config.Config, *nexus.Client) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.Log.Fatalw("Failed to load configuration", zap.Error(err))
	}

	db.InitDatabase(cfg.DatabasePath)
	logger.Log.Infow("Database initialized", zap.String("path", cfg.DatabasePath))

	if cfg.NexusAPIKey == "" {
		logger.Log.Fatal("Error: NEXUS_API_KEY must be set.")
	}

	client, err := nexus.NewClient(cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to create Nexus Mods client", zap.Error(err))
	}

	client.RateLimitFunc = func(rl nexus.RateLimits) {
		logger.Log.Debugw("Rate limit snapshot",
			zap.Int("hourly_remaining", rl.Hourly().Remaining),
			zap.Int("daily_remaining", rl.Daily().Remaining),
		)
	}

	return cfg, client
}

// resolveDomain picks the game domain from the flag or the configured
// default. Fatal when neither is set.
func resolveDomain(cfg config.Config, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.GameDomain != "" {
		return cfg.GameDomain
	}
	logger.Log.Fatal("Error: no game domain given; pass --game or set GAME_DOMAIN.")
	return ""
}

// parseModID validates a user-supplied mod id argument.
func parseModID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mod id %q: expected a non-negative integer", raw)
	}
	return id, nil
}

// parseFileCategories maps a comma-separated category filter to the
// typed file categories.
func parseFileCategories(raw string) ([]nexus.FileCategory, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	known := map[string]nexus.FileCategory{
		"main":          nexus.FileCategoryMain,
		"update":        nexus.FileCategoryUpdate,
		"optional":      nexus.FileCategoryOptional,
		"old_version":   nexus.FileCategoryOldVersion,
		"miscellaneous": nexus.FileCategoryMiscellaneous,
		"removed":       nexus.FileCategoryRemoved,
	}
	var categories []nexus.FileCategory
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		cat, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown file category %q", part)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// describeError turns the client's typed errors into a short
// user-facing line, keeping the four failure kinds distinguishable.
func describeError(err error) string {
	var keyErr *nexus.InvalidAPIKeyError
	var notFound *nexus.ModNotFoundError
	var untracked *nexus.UntrackedOrInvalidError
	var contract *nexus.ContractViolationError
	var decode *nexus.DecodeError
	var unobserved *nexus.UnobservedStatusError
	switch {
	case errors.As(err, &keyErr):
		return "API key rejected: " + keyErr.Message
	case errors.As(err, &notFound):
		return "Mod not found: " + notFound.Message
	case errors.As(err, &untracked):
		return "Not tracked (or invalid mod): " + untracked.Message
	case errors.As(err, &contract):
		return fmt.Sprintf("The API broke its contract (status %d on %s); giving up", contract.Status, contract.Endpoint)
	case errors.As(err, &decode):
		return "Could not decode the API response: " + decode.Error()
	case errors.As(err, &unobserved):
		return err.Error()
	}
	return err.Error()
}

// syncTrackedCache replaces the local tracked-mod cache with the given
// snapshot.
func syncTrackedCache(view nexus.TrackedMods) {
	now := time.Now()
	for _, entry := range view.Entries() {
		row := db.TrackedMod{DomainName: entry.DomainName, ModID: entry.ModID.Uint64()}
		if err := db.DB.
			Where("domain_name = ? AND mod_id = ?", entry.DomainName, entry.ModID.Uint64()).
			Assign(db.TrackedMod{LastSeen: now}).
			FirstOrCreate(&row).Error; err != nil {
			logger.Log.Warnw("Failed to cache tracked mod",
				zap.String("domain", entry.DomainName),
				zap.Uint64("mod_id", entry.ModID.Uint64()),
				zap.Error(err),
			)
		}
	}
	// Entries the server no longer reports drop out of the cache.
	if err := db.DB.Where("last_seen < ?", now).Delete(&db.TrackedMod{}).Error; err != nil {
		logger.Log.Warnw("Failed to prune tracked-mod cache", zap.Error(err))
	}
}
