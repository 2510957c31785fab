package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
)

const desktopClient = `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`

// configDir creates a config directory holding the given files.
func configDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func runAuthCommand(ctx context.Context, cmd commands.Command, dir string, quiet bool, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{Dir: dir, Quiet: quiet}
	code = cmd.Run(ctx, cfg, newSession(""), nil, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestLoginCommand_Errors(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		wantPrefix string
	}{
		{
			name:       "missing client",
			files:      nil,
			wantPrefix: "error: oauth_client.json not found in ",
		},
		{
			name:       "client without credentials",
			files:      map[string]string{"oauth_client.json": `{}`},
			wantPrefix: "error: auth: invalid oauth_client.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := configDir(t, tt.files)

			stdout, stderr, code := runAuthCommand(context.Background(), &commands.LoginCmd{}, dir, false)

			if code != exitcode.AuthError {
				t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if !strings.HasPrefix(stderr, tt.wantPrefix) {
				t.Errorf("expected stderr to start with %q, got %q", tt.wantPrefix, stderr)
			}
		})
	}
}

// Unusable tokens send login back through the browser flow. The context is
// already cancelled, so the flow stops before waiting for a callback.
func TestLoginCommand_UnusableTokenStartsFlow(t *testing.T) {
	tokens := map[string]string{
		"no refresh token": `{"access_token":"test","token_type":"Bearer","expiry":"2020-01-01T00:00:00Z"}`,
		"corrupt":          `{"access_token":`,
	}

	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			dir := configDir(t, map[string]string{
				"oauth_client.json": desktopClient,
				"token.json":        token,
			})
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			stdout, _, code := runAuthCommand(ctx, &commands.LoginCmd{}, dir, false)

			if stdout == "already logged in\n" {
				t.Error("should not say 'already logged in' with an unusable token")
			}
			if code != exitcode.AuthError {
				t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
			}
		})
	}
}

func TestLogoutCommand_OnlyRemovesToken(t *testing.T) {
	dir := configDir(t, map[string]string{
		"oauth_client.json": desktopClient,
		"token.json":        `{"access_token":"test","refresh_token":"test"}`,
	})

	stdout, stderr, code := runAuthCommand(context.Background(), &commands.LogoutCmd{}, dir, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected 'ok\\n', got %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "token.json")); !os.IsNotExist(err) {
		t.Error("token.json should have been deleted")
	}
	if _, err := os.Stat(filepath.Join(dir, "oauth_client.json")); err != nil {
		t.Error("oauth_client.json should NOT have been deleted")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	tests := []struct {
		quiet      bool
		wantStdout string
	}{
		{false, "not logged in\n"},
		{true, ""},
	}

	for _, tt := range tests {
		stdout, stderr, code := runAuthCommand(context.Background(), &commands.LogoutCmd{}, t.TempDir(), tt.quiet)

		if code != exitcode.Success {
			t.Errorf("quiet=%v: expected exit code %d, got %d", tt.quiet, exitcode.Success, code)
		}
		if stderr != "" {
			t.Errorf("quiet=%v: expected no stderr, got %q", tt.quiet, stderr)
		}
		if stdout != tt.wantStdout {
			t.Errorf("quiet=%v: expected %q, got %q", tt.quiet, tt.wantStdout, stdout)
		}
	}
}

func TestLogoutCommand_RejectsArgs(t *testing.T) {
	_, stderr, code := runAuthCommand(context.Background(), &commands.LogoutCmd{}, t.TempDir(), false, "now")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: now\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
