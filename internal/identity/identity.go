package identity

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/rs/zerolog/log"
)

// userEnvVars are consulted in order before falling back to the account database.
var userEnvVars = []string{"LOGNAME", "USER", "LNAME", "USERNAME"}

// Provider reports the name of the user running the process
type Provider interface {
	CurrentUserName() (string, error)
}

// Error is returned when the user name cannot be determined
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to determine current user: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Host resolves the user name from the host environment.
// A zero Host reads the real process environment and account database.
type Host struct {
	Getenv  func(string) string
	Current func() (*user.User, error)
}

// NewHost creates a provider backed by the host environment
func NewHost() *Host {
	return &Host{
		Getenv:  os.Getenv,
		Current: user.Current,
	}
}

// CurrentUserName returns the first non-empty login variable, or the
// account name of the process owner when none is set.
func (h *Host) CurrentUserName() (string, error) {
	getenv := h.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, key := range userEnvVars {
		if name := getenv(key); name != "" {
			log.Debug().Str("source", key).Str("user", name).Msg("Resolved user name from environment")
			return name, nil
		}
	}

	current := h.Current
	if current == nil {
		current = user.Current
	}
	u, err := current()
	if err != nil {
		return "", &Error{Err: err}
	}

	// On Windows the account name is DOMAIN\user.
	name := u.Username
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "", &Error{Err: errors.New("account database returned an empty user name")}
	}

	log.Debug().Str("source", "account").Str("user", name).Msg("Resolved user name from account database")
	return name, nil
}

// Static always reports the same user name
type Static string

func (s Static) CurrentUserName() (string, error) {
	return string(s), nil
}
