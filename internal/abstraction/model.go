package abstraction

import (
	"time"
)

// Entity carries the timestamp columns shared by every table.
type Entity struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
