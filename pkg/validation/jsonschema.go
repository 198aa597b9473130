package validation

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/clearform/sf86gen/pkg/field"
	"github.com/clearform/sf86gen/pkg/fieldmap"
)

// SchemaFor derives an openapi3 schema for one section's document subtree
// from its mapping table. Repeated groups become objects holding a bounded
// entries array; leaves accept either a bare value or the {"value": ...}
// wrapper shape the browser client persisted.
func SchemaFor(table *fieldmap.Table) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	for _, group := range table.Groups {
		entry := openapi3.NewObjectSchema()
		for _, binding := range group.Fields {
			entry.WithProperty(binding.Field, leafSchema(binding.Kind))
		}
		if group.Entries > 1 {
			entries := openapi3.NewArraySchema().WithItems(entry)
			entries.WithMaxItems(int64(group.Entries))
			root.WithProperty(group.Key, openapi3.NewObjectSchema().WithProperty("entries", entries))
			continue
		}
		root.WithProperty(group.Key, entry)
	}
	return root
}

// CheckSchema validates a raw section subtree against the table's schema and
// records every violation as an error issue.
func CheckSchema(table *fieldmap.Table, sectionData map[string]any, res *Result) {
	if sectionData == nil {
		return
	}
	err := SchemaFor(table).VisitJSON(sectionData, openapi3.MultiErrors())
	if err == nil {
		return
	}
	if multi, ok := err.(openapi3.MultiError); ok {
		for _, item := range multi {
			res.addError(schemaIssue(table.Key, item))
		}
		return
	}
	res.addError(schemaIssue(table.Key, err))
}

func schemaIssue(section string, err error) Issue {
	issue := Issue{Path: section, Message: err.Error()}
	if schemaErr, ok := err.(*openapi3.SchemaError); ok {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			issue.Field = pointer[len(pointer)-1]
		}
		if schemaErr.Reason != "" {
			issue.Message = schemaErr.Reason
		}
	}
	return issue
}

func leafSchema(kind field.Kind) *openapi3.Schema {
	var value *openapi3.Schema
	switch kind {
	case field.KindCheckbox:
		value = &openapi3.Schema{OneOf: openapi3.SchemaRefs{
			openapi3.NewSchemaRef("", openapi3.NewBoolSchema()),
			openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		}}
	case field.KindDate:
		value = openapi3.NewStringSchema().WithPattern(`^(\d{4}(-\d{2}){0,2}|\d{2}/\d{4})$`)
	default:
		value = openapi3.NewStringSchema()
	}
	wrapper := openapi3.NewObjectSchema().WithProperty("value", value)
	return &openapi3.Schema{AnyOf: openapi3.SchemaRefs{
		openapi3.NewSchemaRef("", value),
		openapi3.NewSchemaRef("", wrapper),
	}}
}
