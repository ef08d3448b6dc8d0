// Package profile loads and saves confctl connection profiles. A profile
// names a server and a login; passwords and session tokens are never
// stored.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	filePermission = 0600
	dirPermission  = 0700
)

// Duration is a time.Duration that round-trips through YAML in the
// human-readable form time.Duration.String produces ("15s", "2m30s").
// Plain yaml.v3 would write raw nanoseconds and refuse hand-edited
// values like "30s". Integer values still parse, as nanoseconds, so
// files written before this type existed keep loading.
type Duration time.Duration

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse timeout %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("parse timeout: %w", err)
	}
	*d = Duration(ns)
	return nil
}

// Profile holds the connection settings for one server.
type Profile struct {
	URL       string   `yaml:"url"`
	User      string   `yaml:"user,omitempty"`
	Namespace string   `yaml:"namespace,omitempty"`
	Timeout   Duration `yaml:"timeout,omitempty"`
}

// File is the on-disk shape of the profile file.
type File struct {
	Default  string             `yaml:"default,omitempty"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// DefaultPath returns the default profile file location,
// ~/.config/confctl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "confctl", "config.yaml"), nil
}

// Load reads the profile file at path. A missing file yields an empty File,
// not an error; confctl can run on flags and environment alone.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Profiles: map[string]Profile{}}, nil
		}
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal profile file: %w", err)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	return &f, nil
}

// Save writes the profile file with private permissions; it names servers
// and accounts that may not be public.
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal profile file: %w", err)
	}

	return atomicWriteFile(path, data, filePermission)
}

// Resolve picks the named profile, falling back to the file default, and
// applies CONFCTL_URL / CONFCTL_USER / CONFCTL_NAMESPACE environment
// overrides on top. name may be empty when the file has a default or the
// environment carries the whole connection.
func (f *File) Resolve(name string) (Profile, error) {
	if name == "" {
		name = f.Default
	}

	var p Profile
	if name != "" {
		var ok bool
		p, ok = f.Profiles[name]
		if !ok {
			return Profile{}, fmt.Errorf("profile %q not found", name)
		}
	}

	if url := os.Getenv("CONFCTL_URL"); url != "" {
		p.URL = url
	}
	if user := os.Getenv("CONFCTL_USER"); user != "" {
		p.User = user
	}
	if ns := os.Getenv("CONFCTL_NAMESPACE"); ns != "" {
		p.Namespace = ns
	}

	return p, nil
}

// atomicWriteFile writes via a temp file and rename so a crash mid-write
// never leaves a truncated profile file behind.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
