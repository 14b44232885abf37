package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Tomas-vilte/MateBacklog/internal/i18n"
	"github.com/Tomas-vilte/MateBacklog/internal/ui"
	"github.com/google/go-github/v80/github"
	"golang.org/x/mod/semver"
)

// VersionChecker avisa cuando hay una versión nueva publicada en GitHub.
// Es best-effort: cualquier error se ignora para no molestar al comando.
type VersionChecker struct {
	currentVersion string
	trans          *i18n.Translations
}

type updateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

// NewVersionChecker crea un checker para la versión actual (con prefijo v)
func NewVersionChecker(version string, trans *i18n.Translations) *VersionChecker {
	return &VersionChecker{
		currentVersion: version,
		trans:          trans,
	}
}

// CheckForUpdates consulta el último release, con un cache de 24 horas
// para no pegarle a la API de GitHub en cada invocación
func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv("MATEBACKLOG_DISABLE_UPDATE_CHECK") != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, "Tomas-vilte", "MateBacklog")
	if err != nil {
		return
	}

	latest := release.GetTagName()

	_ = v.saveCache(updateCache{
		LastCheck:   time.Now(),
		LatestKnown: latest,
	})

	if v.isUpdateAvailable(latest) {
		v.printNotification(latest)
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	if !semver.IsValid(latest) || !semver.IsValid(v.currentVersion) {
		return false
	}
	return semver.Compare(latest, v.currentVersion) > 0
}

func (v *VersionChecker) printNotification(latest string) {
	ui.PrintWarning(v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Latest":  latest,
		"Current": v.currentVersion,
	}))
}

func (v *VersionChecker) cachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mate-backlog", "update-check.json"), nil
}

func (v *VersionChecker) loadCache() (*updateCache, error) {
	path, err := v.cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cache updateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

func (v *VersionChecker) saveCache(cache updateCache) error {
	path, err := v.cachePath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
