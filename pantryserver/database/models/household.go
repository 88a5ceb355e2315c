package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Household struct {
	bun.BaseModel `bun:"table:households,alias:hh"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	// Relations
	Collections []*Collection `bun:"rel:has-many,join:id=household_id"`
	Recipes     []*Recipe     `bun:"rel:has-many,join:id=household_id"`
}
