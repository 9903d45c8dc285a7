package admission_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"go-admissao/internal/admission"

	"github.com/stretchr/testify/assert"
)

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)

	out := make(map[string][]byte, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		assert.NoError(t, err)
		content, err := io.ReadAll(rc)
		assert.NoError(t, err)
		rc.Close()
		out[f.Name] = content
	}
	return out
}

func TestArchiveAssembler_RoundTrip(t *testing.T) {
	assembler := admission.NewArchiveAssembler(false)
	rec := validRecord()

	data, err := assembler.Assemble(assembler.Entries(rec, nil))
	assert.NoError(t, err)

	got := readArchive(t, data)
	assert.Len(t, got, 3)
	assert.Equal(t, []byte("cpf"), got["Documentos/CPF_cpf.pdf"])
	assert.Equal(t, []byte("rg"), got["Documentos/RG_rg.png"])
	assert.Equal(t, []byte("ctps"), got["Documentos/CTPS_ctps.pdf"])
}

func TestArchiveAssembler_DependentIndexing(t *testing.T) {
	assembler := admission.NewArchiveAssembler(false)

	t.Run("identical filenames disambiguated by index", func(t *testing.T) {
		rec := validRecord()
		for _, nome := range []string{"João Silva", "João Silva"} {
			rec.AddDependent(admission.DependentRecord{
				Nome: nome,
				Document: &admission.UploadedDocument{
					Role: admission.RoleDependent, Filename: "cpf.pdf", Content: []byte(nome),
				},
			})
		}

		got := readArchive(t, mustAssemble(t, assembler, rec, nil))
		assert.Contains(t, got, "Documentos/Dependente_1_cpf.pdf")
		assert.Contains(t, got, "Documentos/Dependente_2_cpf.pdf")
	})

	t.Run("missing optional document keeps later indices", func(t *testing.T) {
		rec := validRecord()
		rec.AddDependent(admission.DependentRecord{Nome: "Sem Documento"})
		rec.AddDependent(admission.DependentRecord{
			Nome: "Com Documento",
			Document: &admission.UploadedDocument{
				Role: admission.RoleDependent, Filename: "certidao.pdf", Content: []byte("doc"),
			},
		})

		got := readArchive(t, mustAssemble(t, assembler, rec, nil))
		assert.Len(t, got, 4, "three employee documents plus one dependent document")
		assert.NotContains(t, got, "Documentos/Dependente_1_certidao.pdf")
		assert.Equal(t, []byte("doc"), got["Documentos/Dependente_2_certidao.pdf"])
	})
}

func TestArchiveAssembler_IncludeSheets(t *testing.T) {
	workbook := &admission.TabularBundle{
		Filename: "dados_admissao.xlsx",
		Content:  []byte("workbook-bytes"),
	}

	t.Run("workbook stored under its own namespace", func(t *testing.T) {
		assembler := admission.NewArchiveAssembler(true)
		got := readArchive(t, mustAssemble(t, assembler, validRecord(), workbook))
		assert.Equal(t, []byte("workbook-bytes"), got["Planilhas/dados_admissao.xlsx"])
	})

	t.Run("workbook omitted when the variant excludes it", func(t *testing.T) {
		assembler := admission.NewArchiveAssembler(false)
		got := readArchive(t, mustAssemble(t, assembler, validRecord(), workbook))
		assert.NotContains(t, got, "Planilhas/dados_admissao.xlsx")
		assert.Len(t, got, 3)
	})
}

func mustAssemble(t *testing.T, a *admission.ArchiveAssembler, rec *admission.EmployeeRecord, wb *admission.TabularBundle) []byte {
	t.Helper()
	data, err := a.Assemble(a.Entries(rec, wb))
	assert.NoError(t, err)
	return data
}
