// Package update looks up the latest woo-cli release on GitHub.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	DefaultReleasesURL = "https://api.github.com/repos/woopy/woo-cli/releases/latest"
	CheckTimeout       = 5 * time.Second

	// EnvNoUpdateCheck disables the lookup when set to any value.
	EnvNoUpdateCheck = "WOO_NO_UPDATE_CHECK"
)

// ReleasesURL is the endpoint queried for the latest release.
var ReleasesURL = DefaultReleasesURL

type Release struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Prerelease bool   `json:"prerelease"`
}

type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateURL       string
	UpdateAvailable bool
}

// CheckForUpdate reports whether a newer release than currentVersion
// exists. It returns nil whenever the answer is unknown: development
// builds, disabled checks, network failures and unparseable responses.
func CheckForUpdate(ctx context.Context, currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}
	if os.Getenv(EnvNoUpdateCheck) != "" {
		return nil
	}

	release, ok := fetchLatest(ctx)
	if !ok || release.TagName == "" || release.Prerelease {
		return nil
	}

	current := normalizeVersion(currentVersion)
	latest := normalizeVersion(release.TagName)

	result := &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		UpdateURL:      release.HTMLURL,
	}
	if semver.IsValid(current) && semver.IsValid(latest) {
		result.UpdateAvailable = semver.Compare(latest, current) > 0
	}
	return result
}

func fetchLatest(ctx context.Context) (Release, bool) {
	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return Release{}, false
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Release{}, false
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return Release{}, false
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, false
	}
	return release, true
}

func normalizeVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
