package admission

import "fmt"

// ValidationResult is the aggregate outcome of one validation pass. A
// submission is accepted only when no field is missing and the CPF check
// digits are consistent.
type ValidationResult struct {
	MissingFields []string
	InvalidCPF    bool
}

func (r ValidationResult) OK() bool {
	return len(r.MissingFields) == 0 && !r.InvalidCPF
}

// Validator checks one aggregate against the employee and dependent field
// sets. It is pure: no side effects, safe to call repeatedly while the
// operator corrects the form.
type Validator struct {
	employee  FieldSet
	dependent FieldSet
	validCPF  func(string) bool
}

// NewValidator wires the schema and the national-ID checksum collaborator.
func NewValidator(employee, dependent FieldSet, validCPF func(string) bool) *Validator {
	return &Validator{
		employee:  employee,
		dependent: dependent,
		validCPF:  validCPF,
	}
}

// Validate runs the required-field checklist and then the CPF checksum.
// Conditional fields are skipped when their activation condition does not
// hold; dependents are checked against their own required subset.
func (v *Validator) Validate(rec *EmployeeRecord) ValidationResult {
	var res ValidationResult

	for _, f := range v.employee.Fields {
		if !f.Required || !f.Active(rec.FieldValue) {
			continue
		}
		if rec.FieldValue(f.Name) == "" {
			res.MissingFields = append(res.MissingFields, f.Name)
		}
	}

	for i := range rec.Dependents {
		dep := &rec.Dependents[i]
		for _, f := range v.dependent.Fields {
			if !f.Required || !f.Active(dep.FieldValue) {
				continue
			}
			if dep.FieldValue(f.Name) == "" {
				res.MissingFields = append(res.MissingFields,
					fmt.Sprintf("dependente_%d.%s", dep.Index, f.Name))
			}
		}
	}

	// The checksum verdict is reported even when other fields are missing,
	// so the operator fixes everything in one pass.
	if rec.CPF != "" && !v.validCPF(rec.CPF) {
		res.InvalidCPF = true
	}

	return res
}
