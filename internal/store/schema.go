package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CallEventsColumns holds the columns for the "prediction_call_events" table.
	CallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "outcome", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// CallEventsTable holds the schema information for the "prediction_call_events" table.
	CallEventsTable = &schema.Table{
		Name:       "prediction_call_events",
		Columns:    CallEventsColumns,
		PrimaryKey: []*schema.Column{CallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictioncallevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CallEventsColumns[1]},
			},
			{
				Name:    "predictioncallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CallEventsColumns[2]},
			},
			{
				Name:    "predictioncallevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{CallEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CallEventsTable,
	}
)
