package admission_test

import (
	"bytes"
	"testing"
	"time"

	"go-admissao/internal/admission"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

var exportTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func openWorkbook(t *testing.T, bundle *admission.TabularBundle) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(bundle.Content))
	assert.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestTabularExporter_EmployeeSheet(t *testing.T) {
	exporter := admission.NewTabularExporter()
	rec := validRecord()

	bundle, err := exporter.Export(rec, exportTime)
	assert.NoError(t, err)
	assert.Equal(t, "dados_admissao.xlsx", bundle.Filename)

	f := openWorkbook(t, bundle)
	assert.Equal(t, []string{admission.SheetEmployee}, f.GetSheetList())

	rows, err := f.GetRows(admission.SheetEmployee)
	assert.NoError(t, err)
	assert.Len(t, rows, 2, "header row plus exactly one data row")

	header := rows[0]
	row := rows[1]
	assert.Equal(t, "Nome", header[0])
	assert.Equal(t, "Maria Silva", row[0])
	assert.Equal(t, "11144477735", row[1])
	assert.Equal(t, "01/02/1990", row[2])

	// Address is composed the way the legacy sheet did it.
	assert.Contains(t, row, "Praça da Sé, 100 - Sé")

	// Submission timestamp is the export-time argument.
	assert.Equal(t, "14/03/2025 09:30:00", row[len(header)-1])
}

func TestTabularExporter_DependentSheetOnlyWhenPresent(t *testing.T) {
	exporter := admission.NewTabularExporter()

	t.Run("absent for zero dependents", func(t *testing.T) {
		bundle, err := exporter.Export(validRecord(), exportTime)
		assert.NoError(t, err)
		f := openWorkbook(t, bundle)
		assert.NotContains(t, f.GetSheetList(), admission.SheetDependents)
	})

	t.Run("one row per dependent", func(t *testing.T) {
		rec := validRecord()
		rec.AddDependent(admission.DependentRecord{
			Nome: "João Silva", CPF: "52998224725", DataNascimento: "10/10/2015",
			Sexo: "Masculino", Parentesco: "Filho", EntraIR: true,
		})
		rec.AddDependent(admission.DependentRecord{
			Nome: "Clara Silva", CPF: "11144477735", DataNascimento: "05/05/2018",
			Sexo: "Feminino", Parentesco: "Filha", SalarioFamilia: true,
		})

		bundle, err := exporter.Export(rec, exportTime)
		assert.NoError(t, err)

		f := openWorkbook(t, bundle)
		rows, err := f.GetRows(admission.SheetDependents)
		assert.NoError(t, err)
		assert.Len(t, rows, 3)

		assert.Equal(t, "João Silva", rows[1][0])
		assert.Equal(t, "Sim", rows[1][6], "IR column")
		assert.Equal(t, "Não", rows[1][7], "Salário Família column")
		assert.Equal(t, "Clara Silva", rows[2][0])
		assert.Equal(t, "Sim", rows[2][7])
	})

	t.Run("document reference never becomes a column", func(t *testing.T) {
		rec := validRecord()
		dep := admission.DependentRecord{
			Nome: "João Silva", CPF: "52998224725", DataNascimento: "10/10/2015",
			Sexo: "Masculino", Parentesco: "Filho",
			Document: &admission.UploadedDocument{
				Role: admission.RoleDependent, Filename: "certidao.pdf", Content: []byte("x"),
			},
		}
		rec.AddDependent(dep)

		bundle, err := exporter.Export(rec, exportTime)
		assert.NoError(t, err)

		f := openWorkbook(t, bundle)
		rows, err := f.GetRows(admission.SheetDependents)
		assert.NoError(t, err)
		for _, cell := range rows[0] {
			assert.NotContains(t, cell, "nexo")
		}
		assert.NotContains(t, rows[1], "certidao.pdf")
	})
}

func TestTabularExporter_StableShape(t *testing.T) {
	exporter := admission.NewTabularExporter()
	rec := validRecord()

	first, err := exporter.Export(rec, exportTime)
	assert.NoError(t, err)
	second, err := exporter.Export(rec, exportTime)
	assert.NoError(t, err)

	fRows, err := openWorkbook(t, first).GetRows(admission.SheetEmployee)
	assert.NoError(t, err)
	sRows, err := openWorkbook(t, second).GetRows(admission.SheetEmployee)
	assert.NoError(t, err)

	assert.Equal(t, fRows, sRows, "same aggregate and timestamp produce identical sheet contents")
}
