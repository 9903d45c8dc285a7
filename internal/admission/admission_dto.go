package admission

// SubmissionRequest carries the scalar multipart fields of one intake form.
// Required-ness is deliberately not enforced at binding time: the Validator
// owns the required-field policy and reports one aggregate verdict.
type SubmissionRequest struct {
	NomeCompleto      string `form:"nome_completo" json:"nome_completo"`
	CPF               string `form:"cpf" json:"cpf"`
	DataNascimento    string `form:"data_nascimento" json:"data_nascimento"`
	Sexo              string `form:"sexo" json:"sexo"`
	EstadoCivil       string `form:"estado_civil" json:"estado_civil"`
	PaisNascimento    string `form:"pais_nascimento" json:"pais_nascimento"`
	PaisNacionalidade string `form:"pais_nacionalidade" json:"pais_nacionalidade"`
	Raca              string `form:"raca" json:"raca"`
	Filiacao1         string `form:"filiacao_1" json:"filiacao_1"`
	Filiacao2         string `form:"filiacao_2" json:"filiacao_2"`

	CEP        string `form:"cep" json:"cep"`
	Logradouro string `form:"logradouro" json:"logradouro"`
	Bairro     string `form:"bairro" json:"bairro"`
	Numero     string `form:"numero" json:"numero"`

	Celular string `form:"celular" json:"celular"`
	Email   string `form:"email" json:"email,omitempty" binding:"omitempty,email"`

	TipoConta string `form:"tipo_conta" json:"tipo_conta"`
	Agencia   string `form:"agencia" json:"agencia"`
	Conta     string `form:"conta" json:"conta"`
	ChavePIX  string `form:"chave_pix" json:"chave_pix"`

	ReservistaNumero    string `form:"reservista_numero" json:"reservista_numero"`
	ReservistaRA        string `form:"reservista_ra" json:"reservista_ra"`
	ReservistaCategoria string `form:"reservista_categoria" json:"reservista_categoria"`
}

// DependentRequest is one element of the "dependentes" JSON part.
type DependentRequest struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento"`
	Sexo           string `json:"sexo"`
	Parentesco     string `json:"parentesco"`
	Filiacao       string `json:"filiacao"`
	EntraIR        bool   `json:"entra_ir"`
	SalarioFamilia bool   `json:"salario_familia"`
}

// ToRecord assembles the aggregate from the bound scalars. Documents and
// dependents are attached afterwards by the handler, in upload order.
func (r SubmissionRequest) ToRecord() *EmployeeRecord {
	return &EmployeeRecord{
		NomeCompleto:      r.NomeCompleto,
		CPF:               r.CPF,
		DataNascimento:    r.DataNascimento,
		Sexo:              r.Sexo,
		EstadoCivil:       r.EstadoCivil,
		PaisNascimento:    r.PaisNascimento,
		PaisNacionalidade: r.PaisNacionalidade,
		Raca:              r.Raca,
		Filiacao1:         r.Filiacao1,
		Filiacao2:         r.Filiacao2,

		CEP:        r.CEP,
		Logradouro: r.Logradouro,
		Bairro:     r.Bairro,
		Numero:     r.Numero,

		Celular: r.Celular,
		Email:   r.Email,

		TipoConta: r.TipoConta,
		Agencia:   r.Agencia,
		Conta:     r.Conta,
		ChavePIX:  r.ChavePIX,

		ReservistaNumero:    r.ReservistaNumero,
		ReservistaRA:        r.ReservistaRA,
		ReservistaCategoria: r.ReservistaCategoria,
	}
}

func (d DependentRequest) ToRecord() DependentRecord {
	return DependentRecord{
		Nome:           d.Nome,
		CPF:            d.CPF,
		DataNascimento: d.DataNascimento,
		Sexo:           d.Sexo,
		Parentesco:     d.Parentesco,
		Filiacao:       d.Filiacao,
		EntraIR:        d.EntraIR,
		SalarioFamilia: d.SalarioFamilia,
	}
}

type SubmissionResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Dependentes int    `json:"dependentes"`
}

// SchemaResponse exposes the active field sets so every form variant renders
// from one source of truth.
type SchemaResponse struct {
	Employee  FieldSet `json:"colaborador"`
	Dependent FieldSet `json:"dependente"`
}
