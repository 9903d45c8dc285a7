package admission

import "go-admissao/internal/config"

type FieldKind string

const (
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindSelect FieldKind = "select"
	KindUpload FieldKind = "upload"
)

// Condition gates a field on the value of another field. Conditional fields
// are only rendered and only validated when the condition holds, so the rule
// lives in the schema instead of being re-branched in every form variant.
type Condition struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

type Field struct {
	Name     string     `json:"name"`
	Label    string     `json:"label"`
	Kind     FieldKind  `json:"kind"`
	Required bool       `json:"required"`
	Options  []string   `json:"options,omitempty"`
	Requires *Condition `json:"requires,omitempty"`
}

// FieldSet is the declarative shape of one record. Field order is the column
// order of the exported sheets.
type FieldSet struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Active reports whether the field applies to the given record values.
func (f Field) Active(valueOf func(name string) string) bool {
	if f.Requires == nil {
		return true
	}
	return valueOf(f.Requires.Field) == f.Requires.Equals
}

var sexoOptions = []string{"Masculino", "Feminino", "Outro"}

// EmployeeFieldSet builds the employee schema for the given deployment
// profile. The profiles differ only in whether the banking quartet is
// mandatory; the field inventory itself never changes.
func EmployeeFieldSet(profile config.RequiredProfile) FieldSet {
	bankingRequired := profile != config.ProfileNoBanking

	return FieldSet{
		Name: "colaborador",
		Fields: []Field{
			{Name: "nome_completo", Label: "Nome Completo", Kind: KindText, Required: true},
			{Name: "cpf", Label: "CPF", Kind: KindText, Required: true},
			{Name: "cpf_anexo", Label: "Anexar CPF", Kind: KindUpload, Required: true},
			{Name: "data_nascimento", Label: "Data de Nascimento", Kind: KindDate, Required: true},
			{Name: "sexo", Label: "Sexo", Kind: KindSelect, Required: true, Options: sexoOptions},
			{Name: "estado_civil", Label: "Estado Civil", Kind: KindSelect, Required: true,
				Options: []string{"Solteiro(a)", "Casado(a)", "Divorciado(a)", "Viúvo(a)"}},
			{Name: "pais_nascimento", Label: "País de Nascimento", Kind: KindText, Required: true},
			{Name: "pais_nacionalidade", Label: "País de Nacionalidade", Kind: KindText, Required: true},
			{Name: "raca", Label: "Raça/Cor", Kind: KindSelect, Required: true,
				Options: []string{"Branca", "Preta", "Parda", "Amarela", "Indígena"}},
			{Name: "filiacao_1", Label: "Filiação 1", Kind: KindText, Required: true},
			{Name: "filiacao_2", Label: "Filiação 2", Kind: KindText, Required: false},
			{Name: "cep", Label: "CEP", Kind: KindText, Required: true},
			{Name: "logradouro", Label: "Logradouro", Kind: KindText, Required: true},
			{Name: "bairro", Label: "Bairro", Kind: KindText, Required: true},
			{Name: "numero", Label: "Número da Residência", Kind: KindText, Required: true},
			{Name: "celular", Label: "Celular", Kind: KindText, Required: true},
			{Name: "email", Label: "E-mail Pessoal", Kind: KindText, Required: true},
			{Name: "tipo_conta", Label: "Tipo de Conta", Kind: KindSelect, Required: bankingRequired,
				Options: []string{"Corrente", "Poupança"}},
			{Name: "agencia", Label: "Agência", Kind: KindText, Required: bankingRequired},
			{Name: "conta", Label: "Conta", Kind: KindText, Required: bankingRequired},
			{Name: "chave_pix", Label: "Chave PIX", Kind: KindText, Required: false},
			{Name: "rg_anexo", Label: "RG", Kind: KindUpload, Required: true},
			{Name: "ctps_anexo", Label: "Carteira de Trabalho (CTPS)", Kind: KindUpload, Required: true},
			{Name: "reservista_numero", Label: "Número do Certificado", Kind: KindText, Required: false,
				Requires: &Condition{Field: "sexo", Equals: "Masculino"}},
			{Name: "reservista_ra", Label: "RA", Kind: KindText, Required: false,
				Requires: &Condition{Field: "sexo", Equals: "Masculino"}},
			{Name: "reservista_categoria", Label: "Categoria", Kind: KindText, Required: false,
				Requires: &Condition{Field: "sexo", Equals: "Masculino"}},
		},
	}
}

// DependentFieldSet is the schema of one dependent sub-record. The supporting
// document and the two benefit flags are never mandatory.
func DependentFieldSet() FieldSet {
	return FieldSet{
		Name: "dependente",
		Fields: []Field{
			{Name: "nome", Label: "Nome do Dependente", Kind: KindText, Required: true},
			{Name: "cpf", Label: "CPF do Dependente", Kind: KindText, Required: true},
			{Name: "cpf_anexo", Label: "Anexar CPF do Dependente", Kind: KindUpload, Required: false},
			{Name: "data_nascimento", Label: "Data de Nascimento", Kind: KindDate, Required: true},
			{Name: "sexo", Label: "Sexo", Kind: KindSelect, Required: true, Options: sexoOptions},
			{Name: "parentesco", Label: "Parentesco", Kind: KindText, Required: true},
			{Name: "filiacao", Label: "Filiação", Kind: KindText, Required: false},
			{Name: "entra_ir", Label: "Entra no IR?", Kind: KindSelect, Required: false, Options: []string{"Sim", "Não"}},
			{Name: "salario_familia", Label: "Salário Família?", Kind: KindSelect, Required: false, Options: []string{"Sim", "Não"}},
		},
	}
}
