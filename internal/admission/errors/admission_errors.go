package admissionerrors

import (
	"net/http"

	"go-admissao/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeValidationError,
		"Preencha todos os campos obrigatórios",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidCPF = apperror.New(
		apperror.CodeValidationError,
		"CPF inválido",
		http.StatusUnprocessableEntity,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeExportError,
		"Falha ao gerar a planilha da admissão",
		http.StatusInternalServerError,
	)
	ErrArchiveFailed = apperror.New(
		apperror.CodeArchiveError,
		"Falha ao compactar os documentos da admissão",
		http.StatusInternalServerError,
	)
	ErrDispatchFailed = apperror.New(
		apperror.CodeDispatchError,
		"Falha ao enviar a admissão",
		http.StatusBadGateway,
	)
)
