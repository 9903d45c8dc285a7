package admission

import (
	"archive/zip"
	"bytes"
	"fmt"
)

const (
	archiveDocumentPrefix = "Documentos/"
	archiveSheetPrefix    = "Planilhas/"
)

// ArchiveEntry is one (path, content) pair destined for the zip.
type ArchiveEntry struct {
	Path    string
	Content []byte
}

// ArchiveAssembler packs uploaded documents, and optionally the exported
// workbook, into a single zip. Document paths carry a role tag plus the
// original filename; dependents are tagged by their 1-based index so two
// dependents with the same uploaded filename never collide.
type ArchiveAssembler struct {
	includeSheets bool
}

func NewArchiveAssembler(includeSheets bool) *ArchiveAssembler {
	return &ArchiveAssembler{includeSheets: includeSheets}
}

// Entries builds the ordered entry list for one aggregate: employee documents
// in role order, then dependent documents in entry order. Dependents without
// a document are simply skipped, never written as empty entries.
func (a *ArchiveAssembler) Entries(rec *EmployeeRecord, workbook *TabularBundle) []ArchiveEntry {
	var entries []ArchiveEntry

	for _, role := range []DocumentRole{RoleCPF, RoleRG, RoleCTPS} {
		if doc := rec.Document(role); doc != nil {
			entries = append(entries, ArchiveEntry{
				Path:    fmt.Sprintf("%s%s_%s", archiveDocumentPrefix, role, doc.Filename),
				Content: doc.Content,
			})
		}
	}

	for _, dep := range rec.Dependents {
		if dep.Document == nil {
			continue
		}
		entries = append(entries, ArchiveEntry{
			Path:    fmt.Sprintf("%s%s_%d_%s", archiveDocumentPrefix, RoleDependent, dep.Index, dep.Document.Filename),
			Content: dep.Document.Content,
		})
	}

	if a.includeSheets && workbook != nil {
		entries = append(entries, ArchiveEntry{
			Path:    archiveSheetPrefix + workbook.Filename,
			Content: workbook.Content,
		})
	}

	return entries
}

// Assemble writes the entries into an in-memory zip. Decompressing the
// result reproduces every entry byte for byte.
func (a *ArchiveAssembler) Assemble(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, entry := range entries {
		f, err := w.Create(entry.Path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("creating archive entry %s: %w", entry.Path, err)
		}
		if _, err := f.Write(entry.Content); err != nil {
			w.Close()
			return nil, fmt.Errorf("writing archive entry %s: %w", entry.Path, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	return buf.Bytes(), nil
}
