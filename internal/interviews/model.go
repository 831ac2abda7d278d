package interviews

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals a missing interview template.
var ErrNotFound = errors.New("interview not found")

// NewID mints an interview id. Ids are embedded in apply-form position
// tokens ("<id>-<name>"), which are split on the first hyphen, so the id
// itself must never contain one.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Interview is a reusable template defining an objective, job description,
// and screening configuration for a role. The core consumes it read-only;
// the dashboard owns its lifecycle.
type Interview struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Objective string    `json:"objective"`
	JD        string    `json:"jd"`
	CreatedAt time.Time `json:"created_at"`
}
