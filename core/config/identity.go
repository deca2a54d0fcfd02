package config

import (
	"fmt"
	"os"
	"os/user"
)

// Environment variables consulted for the identity, in fallback order.
var (
	HomeEnv     = []string{"HOME", "USERPROFILE"}
	UserEnv     = []string{"USER", "USERNAME"}
	HostnameEnv = []string{"HOSTNAME", "COMPUTERNAME"}
)

// Identity is who and where the shell runs, as shown in the prompt. Home also
// replaces "~" in cd arguments.
type Identity struct {
	Home     string `json:"home" validate:"required"`
	User     string `json:"user" validate:"required"`
	Hostname string `json:"hostname" validate:"required"`
}

// IdentitySource looks up identity values. Each value comes from the first
// set environment variable in its fallback list, then from the system.
type IdentitySource struct {
	LookupEnv   func(key string) (string, bool)
	UserHomeDir func() (string, error)
	Username    func() (string, error)
	Hostname    func() (string, error)
}

// SystemIdentitySource reads the process environment and the OS.
func SystemIdentitySource() IdentitySource {
	return IdentitySource{
		LookupEnv:   os.LookupEnv,
		UserHomeDir: os.UserHomeDir,
		Username: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		Hostname: os.Hostname,
	}
}

// Resolve fills in every field of the identity or returns an error naming the
// missing ones.
func (src IdentitySource) Resolve() (*Identity, error) {
	id := &Identity{
		Home:     src.lookup(HomeEnv, src.UserHomeDir),
		User:     src.lookup(UserEnv, src.Username),
		Hostname: src.lookup(HostnameEnv, src.Hostname),
	}

	if err := newValidator().Struct(id); err != nil {
		return nil, fmt.Errorf("resolving identity: %w", err)
	}
	return id, nil
}

func (src IdentitySource) lookup(keys []string, fallback func() (string, error)) string {
	if src.LookupEnv != nil {
		for _, key := range keys {
			if val, ok := src.LookupEnv(key); ok && val != "" {
				return val
			}
		}
	}

	if fallback != nil {
		if val, err := fallback(); err == nil {
			return val
		}
	}
	return ""
}
