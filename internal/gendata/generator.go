package gendata

import (
	"github.com/katalvlaran/ruleforge/record"
)

// Generator draws one record at a time from a fixed list of per-field
// ValueRules and labels it by running every ValidationRule in order,
// stopping at the first that fails. Grounded on TestRecordCreator.java.
type Generator struct {
	fields     []ValueRule
	validation []ValidationRule
}

func New(fields []ValueRule, validation []ValidationRule) *Generator {
	return &Generator{fields: fields, validation: validation}
}

// Generate produces count records as a training Group, each with the
// computed Valid/Invalid label appended as the trailing field.
func (g *Generator) Generate(count int) (*record.Group, error) {
	recs := make([]record.Record, count)
	for i := 0; i < count; i++ {
		fields := make([]string, len(g.fields))
		for j, f := range g.fields {
			fields[j] = f.NextValue()
		}

		valid := record.Valid
		for _, v := range g.validation {
			if v.FailsValidation(fields) {
				valid = record.Invalid
				break
			}
		}

		rec := make(record.Record, len(fields)+1)
		copy(rec, fields)
		rec[len(fields)] = valid.String()
		recs[i] = rec
	}
	return record.NewGroup(recs)
}
