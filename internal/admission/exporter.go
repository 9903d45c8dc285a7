package admission

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetEmployee   = "Colaborador"
	SheetDependents = "Dependentes"

	WorkbookFilename = "dados_admissao.xlsx"

	dateTimeLayout = "02/01/2006 15:04:05"
)

// TabularExporter flattens one aggregate into an xlsx workbook: the employee
// sheet holds exactly one row, the dependent sheet one row per dependent and
// is omitted entirely when the list is empty. Column order follows the field
// sets and is stable across runs.
type TabularExporter struct{}

func NewTabularExporter() *TabularExporter {
	return &TabularExporter{}
}

var employeeColumns = []string{
	"Nome", "CPF", "Nascimento", "Sexo", "Estado Civil", "País Nascimento",
	"Nacionalidade", "Raça", "Filiação 1", "Filiação 2", "Endereço", "CEP",
	"Celular", "Email", "Banco Tipo", "Agência", "Conta", "PIX",
	"Reservista Número", "RA", "Categoria", "Data Envio",
}

var dependentColumns = []string{
	"Nome", "CPF", "Nascimento", "Sexo", "Parentesco", "Filiação",
	"IR", "Salário Família",
}

// Export serializes the aggregate. The submission timestamp is the now
// argument, captured at export time rather than form-fill time, so retried
// manual resubmissions carry their own timestamp.
func (e *TabularExporter) Export(rec *EmployeeRecord, now time.Time) (*TabularBundle, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetEmployee); err != nil {
		return nil, fmt.Errorf("renaming employee sheet: %w", err)
	}

	headers := toRowValues(employeeColumns)
	if err := f.SetSheetRow(SheetEmployee, "A1", &headers); err != nil {
		return nil, fmt.Errorf("writing employee header: %w", err)
	}

	row := []interface{}{
		rec.NomeCompleto,
		rec.CPF,
		rec.DataNascimento,
		rec.Sexo,
		rec.EstadoCivil,
		rec.PaisNascimento,
		rec.PaisNacionalidade,
		rec.Raca,
		rec.Filiacao1,
		rec.Filiacao2,
		fmt.Sprintf("%s, %s - %s", rec.Logradouro, rec.Numero, rec.Bairro),
		rec.CEP,
		rec.Celular,
		rec.Email,
		rec.TipoConta,
		rec.Agencia,
		rec.Conta,
		rec.ChavePIX,
		rec.ReservistaNumero,
		rec.ReservistaRA,
		rec.ReservistaCategoria,
		now.Format(dateTimeLayout),
	}
	if err := f.SetSheetRow(SheetEmployee, "A2", &row); err != nil {
		return nil, fmt.Errorf("writing employee row: %w", err)
	}

	if len(rec.Dependents) > 0 {
		if _, err := f.NewSheet(SheetDependents); err != nil {
			return nil, fmt.Errorf("creating dependent sheet: %w", err)
		}

		depHeaders := toRowValues(dependentColumns)
		if err := f.SetSheetRow(SheetDependents, "A1", &depHeaders); err != nil {
			return nil, fmt.Errorf("writing dependent header: %w", err)
		}

		for i, dep := range rec.Dependents {
			depRow := []interface{}{
				dep.Nome,
				dep.CPF,
				dep.DataNascimento,
				dep.Sexo,
				dep.Parentesco,
				dep.Filiacao,
				boolToSimNao(dep.EntraIR),
				boolToSimNao(dep.SalarioFamilia),
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return nil, fmt.Errorf("resolving dependent row cell: %w", err)
			}
			if err := f.SetSheetRow(SheetDependents, cell, &depRow); err != nil {
				return nil, fmt.Errorf("writing dependent row %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}

	return &TabularBundle{
		Filename: WorkbookFilename,
		Content:  buf.Bytes(),
	}, nil
}

func toRowValues(cols []string) []interface{} {
	row := make([]interface{}, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}
