package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/shhac/confluence"
	"github.com/shhac/confluence/internal/logging"
	"github.com/shhac/confluence/internal/profile"
)

// resolveProfile merges the profile file, environment, and flag overrides
// into the connection settings for this run.
func resolveProfile() (profile.Profile, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = profile.DefaultPath()
		if err != nil {
			return profile.Profile{}, err
		}
	}

	file, err := profile.Load(path)
	if err != nil {
		return profile.Profile{}, err
	}

	p, err := file.Resolve(flagProfile)
	if err != nil {
		return profile.Profile{}, err
	}

	if flagURL != "" {
		p.URL = flagURL
	}
	if flagUser != "" {
		p.User = flagUser
	}
	if flagTimeout > 0 {
		p.Timeout = profile.Duration(flagTimeout)
	}
	return p, nil
}

// newAnonymousClient builds a client without logging in. Introspection is
// the only caller; every other command wants a session.
func newAnonymousClient() (*confluence.Client, error) {
	p, err := resolveProfile()
	if err != nil {
		return nil, err
	}
	if p.URL == "" {
		return nil, fmt.Errorf("no server URL: use --url, CONFCTL_URL, or a profile")
	}

	return confluence.New(confluence.Config{
		URL:       p.URL,
		Namespace: p.Namespace,
		Timeout:   time.Duration(p.Timeout),
	}, logging.New(os.Stderr, flagDebug))
}

// newClient builds a client from the resolved profile and logs it in. The
// returned cleanup logs out and releases the transport.
func newClient(ctx context.Context) (*confluence.Client, func(), error) {
	p, err := resolveProfile()
	if err != nil {
		return nil, nil, err
	}
	if p.URL == "" {
		return nil, nil, fmt.Errorf("no server URL: use --url, CONFCTL_URL, or a profile")
	}
	if p.User == "" {
		return nil, nil, fmt.Errorf("no login name: use --user, CONFCTL_USER, or a profile")
	}

	password, err := readPassword(p.User)
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(os.Stderr, flagDebug)
	client, err := confluence.New(confluence.Config{
		URL:       p.URL,
		Namespace: p.Namespace,
		Timeout:   time.Duration(p.Timeout),
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Login(ctx, p.User, password); err != nil {
		client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Logout(ctx); err != nil {
			logger.Warn("logout failed", slog.Any("error", err))
		}
		client.Close()
	}
	return client, cleanup, nil
}

// readPassword takes CONFCTL_PASSWORD when set, otherwise prompts on the
// terminal with echo disabled.
func readPassword(user string) (string, error) {
	if pw := os.Getenv("CONFCTL_PASSWORD"); pw != "" {
		return pw, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal: set CONFCTL_PASSWORD to log in non-interactively")
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", user)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
