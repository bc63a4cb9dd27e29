package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tglauncher/internal/catalog"
	"tglauncher/internal/config"
	"tglauncher/internal/logging"
)

const component = "updater"

const defaultAPIBase = "https://api.github.com"

// Report is the outcome of one mod's release check.
type Report struct {
	ModID           string
	Name            string
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	AssetURL        string
	// Error is set when the check itself failed; the other fields are then
	// best-effort.
	Error string
}

// Client queries the GitHub releases API.
type Client struct {
	httpClient *http.Client
	apiBase    string
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIBase overrides the GitHub API endpoint. Tests point this at a
// local server.
func WithAPIBase(base string) Option {
	return func(c *Client) { c.apiBase = strings.TrimRight(base, "/") }
}

// NewClient builds a client with the configured request timeout.
func NewClient(cfg *config.Config, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.Updates.RequestTimeout) * time.Second
	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiBase:    defaultAPIBase,
		logger:     logging.WithComponent(logger, component),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Check queries the latest release for every mod that declares a GitHub
// repository and reports which ones have a newer version.
func (c *Client) Check(ctx context.Context, cat *catalog.Catalog) []Report {
	var reports []Report
	for _, mod := range cat.All() {
		if strings.TrimSpace(mod.GitHub) == "" {
			continue
		}
		report := c.checkMod(ctx, mod)
		if report.Error != "" {
			c.logger.Warn("release check failed",
				logging.FieldMod, mod.ID, "error", report.Error)
		}
		reports = append(reports, report)
	}
	return reports
}

func (c *Client) checkMod(ctx context.Context, mod catalog.Mod) Report {
	report := Report{
		ModID:          mod.ID,
		Name:           mod.Name,
		CurrentVersion: mod.Version,
	}

	owner, repo, err := splitRepoURL(mod.GitHub)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	release, err := c.latestRelease(ctx, owner, repo)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.LatestVersion = release.TagName
	if len(release.Assets) > 0 {
		report.AssetURL = release.Assets[0].BrowserDownloadURL
	} else {
		report.AssetURL = release.HTMLURL
	}
	report.UpdateAvailable = !sameVersion(mod.Version, release.TagName)
	return report
}

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
	Assets  []struct {
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

func (c *Client) latestRelease(ctx context.Context, owner, repo string) (*releaseInfo, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("release query returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response carries no tag")
	}
	return &release, nil
}

// splitRepoURL extracts owner and repo from a github.com URL.
func splitRepoURL(raw string) (string, string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse repository url: %w", err)
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository url %q has no owner/repo path", raw)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// sameVersion compares tags leniently: a leading v and surrounding space
// do not count as a difference.
func sameVersion(a, b string) bool {
	norm := func(s string) string {
		return strings.TrimPrefix(strings.TrimSpace(s), "v")
	}
	return norm(a) == norm(b)
}
