package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/code-optimizer/internal/config"
)

// NewClientFromConfig builds a client from whichever credential is configured.
// A token takes precedence over GitHub App installation credentials. With no
// credential at all it returns a nil Client and no error; the missing
// credential is reported per request instead of at startup.
func NewClientFromConfig(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	switch {
	case cfg.Token != "":
		return newPATClient(ctx, cfg, logger)
	case cfg.HasAppCredentials():
		return newInstallationClient(cfg, logger)
	default:
		return nil, nil
	}
}

func newPATClient(ctx context.Context, cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = cfg.Timeout

	client, err := newAPIClient(tc, cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}
	return NewGitHubClient(client, logger), nil
}

// newInstallationClient authenticates as a GitHub App installation. The
// transport refreshes the installation token on its own.
func newInstallationClient(cfg config.GitHubConfig, logger *slog.Logger) (Client, error) {
	logger.Info("creating GitHub installation client", "app_id", cfg.AppID, "installation_id", cfg.InstallationID)

	itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport from %s: %w", cfg.PrivateKeyPath, err)
	}
	if cfg.APIBaseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	}

	client, err := newAPIClient(&http.Client{Transport: itr, Timeout: cfg.Timeout}, cfg.APIBaseURL)
	if err != nil {
		return nil, err
	}
	return NewGitHubClient(client, logger), nil
}

// newAPIClient points the client at baseURL when one is set. go-github adds
// the /api/v3/ suffix to hosts that are neither api.* nor already suffixed.
func newAPIClient(httpClient *http.Client, baseURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if baseURL == "" {
		return client, nil
	}

	client, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}
	return client, nil
}
