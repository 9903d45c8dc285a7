package admission

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var cpfDigits = regexp.MustCompile(`\D`)

// LocalStore is the legacy deployment profile: besides mailing the bundle it
// writes the documents and the workbook under <base>/<cpf>/. There is no
// cleanup and no locking; a resubmission for the same CPF overwrites.
type LocalStore struct {
	base string
}

func NewLocalStore(base string) *LocalStore {
	return &LocalStore{base: base}
}

// Save persists the three employee documents under their fixed legacy names
// plus the exported workbook. Called only after a successful dispatch.
func (s *LocalStore) Save(rec *EmployeeRecord, workbook *TabularBundle) error {
	dir := filepath.Join(s.base, cpfDigits.ReplaceAllString(rec.CPF, ""))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating admission dir: %w", err)
	}

	named := []struct {
		role DocumentRole
		name string
	}{
		{RoleCPF, "CPF.pdf"},
		{RoleRG, "RG.pdf"},
		{RoleCTPS, "CTPS.pdf"},
	}
	for _, n := range named {
		doc := rec.Document(n.role)
		if doc == nil {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, n.name), doc.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", n.name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, workbook.Filename), workbook.Content, 0o644); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}
