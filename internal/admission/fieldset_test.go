package admission_test

import (
	"testing"

	"go-admissao/internal/admission"
	"go-admissao/internal/config"

	"github.com/stretchr/testify/assert"
)

func fieldByName(t *testing.T, fs admission.FieldSet, name string) admission.Field {
	t.Helper()
	for _, f := range fs.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found in %q", name, fs.Name)
	return admission.Field{}
}

func TestEmployeeFieldSet_Profiles(t *testing.T) {
	full := admission.EmployeeFieldSet(config.ProfileFull)
	noBanking := admission.EmployeeFieldSet(config.ProfileNoBanking)

	// The profiles change required-ness only, never the field inventory.
	assert.Equal(t, len(full.Fields), len(noBanking.Fields))

	for _, name := range []string{"tipo_conta", "agencia", "conta"} {
		assert.True(t, fieldByName(t, full, name).Required, name)
		assert.False(t, fieldByName(t, noBanking, name).Required, name)
	}

	// PIX is optional everywhere.
	assert.False(t, fieldByName(t, full, "chave_pix").Required)
}

func TestField_Activation(t *testing.T) {
	fs := admission.EmployeeFieldSet(config.ProfileFull)
	reservista := fieldByName(t, fs, "reservista_numero")

	maleValues := func(name string) string {
		if name == "sexo" {
			return "Masculino"
		}
		return ""
	}
	femaleValues := func(name string) string {
		if name == "sexo" {
			return "Feminino"
		}
		return ""
	}

	assert.True(t, reservista.Active(maleValues))
	assert.False(t, reservista.Active(femaleValues))

	// Unconditional fields are always active.
	assert.True(t, fieldByName(t, fs, "nome_completo").Active(femaleValues))
}

func TestDependentFieldSet(t *testing.T) {
	fs := admission.DependentFieldSet()

	for _, name := range []string{"nome", "cpf", "data_nascimento", "sexo", "parentesco"} {
		assert.True(t, fieldByName(t, fs, name).Required, name)
	}
	for _, name := range []string{"cpf_anexo", "filiacao", "entra_ir", "salario_familia"} {
		assert.False(t, fieldByName(t, fs, name).Required, name)
	}
}
