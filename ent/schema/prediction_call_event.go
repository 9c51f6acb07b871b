package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionCallEvent records every call to the prediction service. Only
// call metadata is kept; vitals and verdicts are never stored.
type PredictionCallEvent struct {
	ent.Schema
}

func (PredictionCallEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PredictionCallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("submission_id").
			Comment("Correlates the call with one form submission"),
		field.String("endpoint").
			Comment("URL the request was sent to, or mock"),
		field.Int("status_code").
			Default(0).
			Comment("HTTP status, 0 if no response arrived"),
		field.String("outcome").
			Comment("success, transport, service or malformed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (PredictionCallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("outcome"),
	}
}
