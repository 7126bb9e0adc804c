package store

import (
	"reflect"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/mathdrill/ent/schema"
)

// Table names.
const (
	sessionEventsTable = "session_events"
	answerEventsTable  = "answer_events"
	llmEventsTable     = "llm_request_events"
)

// entity is the subset of an ent schema the table builder reads.
type entity interface {
	Fields() []ent.Field
	Indexes() []ent.Index
	Mixin() []ent.Mixin
}

// Tables returns the migration tables, derived from the ent schema
// declarations in ent/schema.
func Tables() []*schema.Table {
	return []*schema.Table{
		buildTable(sessionEventsTable, entschema.SessionEvent{}),
		buildTable(answerEventsTable, entschema.AnswerEvent{}),
		buildTable(llmEventsTable, entschema.LLMRequestEvent{}),
	}
}

func buildTable(name string, e entity) *schema.Table {
	t := schema.NewTable(name)
	t.AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		col := &schema.Column{
			Name:       d.Name,
			Type:       d.Info.Type,
			Size:       int64(d.Size),
			Unique:     d.Unique,
			Nullable:   d.Optional,
			SchemaType: d.SchemaType,
			Comment:    d.Comment,
		}
		// Function defaults (time.Now) are applied on insert, not in DDL.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			col.Default = d.Default
		}
		t.AddColumn(col)
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(name+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t
}
