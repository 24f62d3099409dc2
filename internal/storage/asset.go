package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ValidatingSpec is any asset payload that can validate itself. Validation
// runs once at load time; the runtime trusts loaded assets thereafter.
type ValidatingSpec interface {
	Validate() error
}

// Identifier is an asset key. Published asset IDs follow the convention
// <experience>-<name> (e.g., "museum-entrance-hall").
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Asset is the JSON envelope the publishing pipeline writes: a version, an
// identifier, and the typed spec.
type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	} else if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}
