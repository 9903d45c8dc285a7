package admission

import (
	"github.com/google/uuid"
)

type DocumentRole string

const (
	RoleCPF       DocumentRole = "CPF"
	RoleRG        DocumentRole = "RG"
	RoleCTPS      DocumentRole = "CTPS"
	RoleDependent DocumentRole = "Dependente"
)

// UploadedDocument is an identity document read fully into memory at upload
// time. It is owned by exactly one record and never shared.
type UploadedDocument struct {
	Role     DocumentRole
	Filename string
	Content  []byte
}

// DependentRecord is one dependent sub-record. Index is the 1-based entry
// position, fixed at append time; it drives archive path disambiguation and
// never changes afterwards.
type DependentRecord struct {
	Index          int
	Nome           string
	CPF            string
	DataNascimento string
	Sexo           string
	Parentesco     string
	Filiacao       string
	EntraIR        bool
	SalarioFamilia bool
	Document       *UploadedDocument
}

// EmployeeRecord is the aggregate of one submission: the employee fields,
// the ordered dependent list and the attached documents. It is exclusively
// owned by one submission and discarded when that submission terminates.
type EmployeeRecord struct {
	ID uuid.UUID

	NomeCompleto      string
	CPF               string
	DataNascimento    string
	Sexo              string
	EstadoCivil       string
	PaisNascimento    string
	PaisNacionalidade string
	Raca              string
	Filiacao1         string
	Filiacao2         string

	CEP        string
	Logradouro string
	Bairro     string
	Numero     string

	Celular string
	Email   string

	TipoConta string
	Agencia   string
	Conta     string
	ChavePIX  string

	ReservistaNumero    string
	ReservistaRA        string
	ReservistaCategoria string

	Documents  []UploadedDocument
	Dependents []DependentRecord
}

// AttachDocument appends an employee-level document (CPF, RG, CTPS).
func (r *EmployeeRecord) AttachDocument(doc UploadedDocument) {
	r.Documents = append(r.Documents, doc)
}

// Document returns the first attached document with the given role, or nil.
func (r *EmployeeRecord) Document(role DocumentRole) *UploadedDocument {
	for i := range r.Documents {
		if r.Documents[i].Role == role {
			return &r.Documents[i]
		}
	}
	return nil
}

// AddDependent appends a dependent and assigns its permanent 1-based index.
func (r *EmployeeRecord) AddDependent(dep DependentRecord) {
	dep.Index = len(r.Dependents) + 1
	r.Dependents = append(r.Dependents, dep)
}

// FieldValue resolves a schema field name to the record's current value.
// Upload fields resolve to the attached filename, so "non-empty" means the
// same thing for text and upload kinds.
func (r *EmployeeRecord) FieldValue(name string) string {
	switch name {
	case "nome_completo":
		return r.NomeCompleto
	case "cpf":
		return r.CPF
	case "data_nascimento":
		return r.DataNascimento
	case "sexo":
		return r.Sexo
	case "estado_civil":
		return r.EstadoCivil
	case "pais_nascimento":
		return r.PaisNascimento
	case "pais_nacionalidade":
		return r.PaisNacionalidade
	case "raca":
		return r.Raca
	case "filiacao_1":
		return r.Filiacao1
	case "filiacao_2":
		return r.Filiacao2
	case "cep":
		return r.CEP
	case "logradouro":
		return r.Logradouro
	case "bairro":
		return r.Bairro
	case "numero":
		return r.Numero
	case "celular":
		return r.Celular
	case "email":
		return r.Email
	case "tipo_conta":
		return r.TipoConta
	case "agencia":
		return r.Agencia
	case "conta":
		return r.Conta
	case "chave_pix":
		return r.ChavePIX
	case "reservista_numero":
		return r.ReservistaNumero
	case "reservista_ra":
		return r.ReservistaRA
	case "reservista_categoria":
		return r.ReservistaCategoria
	case "cpf_anexo":
		if doc := r.Document(RoleCPF); doc != nil {
			return doc.Filename
		}
	case "rg_anexo":
		if doc := r.Document(RoleRG); doc != nil {
			return doc.Filename
		}
	case "ctps_anexo":
		if doc := r.Document(RoleCTPS); doc != nil {
			return doc.Filename
		}
	}
	return ""
}

// FieldValue resolves a dependent schema field name.
func (d *DependentRecord) FieldValue(name string) string {
	switch name {
	case "nome":
		return d.Nome
	case "cpf":
		return d.CPF
	case "data_nascimento":
		return d.DataNascimento
	case "sexo":
		return d.Sexo
	case "parentesco":
		return d.Parentesco
	case "filiacao":
		return d.Filiacao
	case "entra_ir":
		return boolToSimNao(d.EntraIR)
	case "salario_familia":
		return boolToSimNao(d.SalarioFamilia)
	case "cpf_anexo":
		if d.Document != nil {
			return d.Document.Filename
		}
	}
	return ""
}

func boolToSimNao(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

// TabularBundle is the serialized workbook produced by the exporter.
type TabularBundle struct {
	Filename string
	Content  []byte
}

// SubmissionBundle is the pair handed to the dispatcher: workbook plus the
// zipped documents. Derived at submit time, never mutated, discarded after
// the dispatch call returns.
type SubmissionBundle struct {
	Workbook TabularBundle
	Archive  []byte
}
