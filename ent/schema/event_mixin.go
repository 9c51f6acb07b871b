package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin gives an event its position in the global sequence and its
// UTC timestamp. The store assigns both on append.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global order of calls; calls list pages on it"),
		field.Time("timestamp").
			Default(nowUTC).
			Immutable().
			Comment("UTC time of the call; calls prune compares against it"),
	}
}

// nowUTC matches the store, which compares timestamps as UTC text.
func nowUTC() time.Time {
	return time.Now().UTC()
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
