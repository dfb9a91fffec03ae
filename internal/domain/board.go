package domain

import "time"

// Board is a named oversized canvas owning zero or more sparks.
type Board struct {
	Id        BoardId
	OwnerId   UserId
	Name      BoardName
	CreatedAt time.Time
}
