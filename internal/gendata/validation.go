package gendata

import "sort"

// ValidationRule reports whether a generated record fails some
// hand-coded rule, mirroring ValidationRuleInterface.failsValidation. A
// Generator runs its rules in order and labels a record invalid as soon
// as one fails it.
type ValidationRule interface {
	FailsValidation(fields []string) bool
}

// SimpleValuesRule requires (or prohibits) one field's value being a
// member of a fixed set, grounded on SimpleValuesRule.java. A record
// shorter than the field it checks always fails.
type SimpleValuesRule struct {
	field      int
	values     []string
	prohibited bool
}

func NewSimpleValuesRule(field int, prohibited bool, values ...string) *SimpleValuesRule {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return &SimpleValuesRule{field: field, values: sorted, prohibited: prohibited}
}

func (s *SimpleValuesRule) FailsValidation(fields []string) bool {
	if s.field >= len(fields) {
		return true
	}
	i := sort.SearchStrings(s.values, fields[s.field])
	have := i < len(s.values) && s.values[i] == fields[s.field]
	return have == s.prohibited
}

// CombinationValuesRule only applies when two filter fields hold specific
// values; when it applies, a third field's value is checked against a
// required or prohibited set. Grounded on CombinationValuesRule.java.
type CombinationValuesRule struct {
	firstField, secondField, testField int
	firstValue, secondValue            string
	testValues                         []string
	prohibited                         bool
}

func NewCombinationValuesRule(firstField int, firstValue string, secondField int, secondValue string, testField int, prohibited bool, testValues ...string) *CombinationValuesRule {
	sorted := append([]string(nil), testValues...)
	sort.Strings(sorted)
	return &CombinationValuesRule{
		firstField: firstField, secondField: secondField, testField: testField,
		firstValue: firstValue, secondValue: secondValue,
		testValues: sorted, prohibited: prohibited,
	}
}

func (c *CombinationValuesRule) FailsValidation(fields []string) bool {
	if c.firstField >= len(fields) || c.secondField >= len(fields) || c.testField >= len(fields) {
		return true
	}
	if fields[c.firstField] != c.firstValue || fields[c.secondField] != c.secondValue {
		return false
	}
	i := sort.SearchStrings(c.testValues, fields[c.testField])
	have := i < len(c.testValues) && c.testValues[i] == fields[c.testField]
	return have == c.prohibited
}
