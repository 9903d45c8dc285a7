package admission

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go-admissao/internal/shared/apperror"
	"go-admissao/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admission.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admission.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admission request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Submit receives one multipart intake form: the scalar fields, a
// "dependentes" JSON part and the uploaded documents (cpf_anexo, rg_anexo,
// ctps_anexo, dependente_anexo_<1-based index>).
func (h *Handler) Submit(c *gin.Context) {
	var req SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("http submit binding failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, mapped.Details)
		return
	}

	rec := req.ToRecord()

	for _, upload := range []struct {
		field string
		role  DocumentRole
	}{
		{"cpf_anexo", RoleCPF},
		{"rg_anexo", RoleRG},
		{"ctps_anexo", RoleCTPS},
	} {
		doc, err := h.readUpload(c, upload.field, upload.role)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if doc != nil {
			rec.AttachDocument(*doc)
		}
	}

	if raw := c.PostForm("dependentes"); raw != "" {
		var deps []DependentRequest
		if err := json.Unmarshal([]byte(raw), &deps); err != nil {
			h.logger.Warn("http submit invalid dependentes payload", zap.Error(err))
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
				"Lista de dependentes inválida", err.Error())
			return
		}
		for i, d := range deps {
			dep := d.ToRecord()
			doc, err := h.readUpload(c, fmt.Sprintf("dependente_anexo_%d", i+1), RoleDependent)
			if err != nil {
				h.writeServiceError(c, err)
				return
			}
			dep.Document = doc
			rec.AddDependent(dep)
		}
	}

	result, err := h.service.Submit(c.Request.Context(), rec)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, SubmissionResponse{
		ID:          result.ID.String(),
		Status:      string(result.State),
		Dependentes: len(rec.Dependents),
	})
}

// Schema returns the active field sets, including labels, required flags and
// activation conditions.
func (h *Handler) Schema(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Schema())
}

// readUpload reads one optional file part fully into memory. Identity
// documents are small, so there is no streaming path.
func (h *Handler) readUpload(c *gin.Context, field string, role DocumentRole) (*UploadedDocument, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput,
			fmt.Sprintf("Anexo %s inválido", field), http.StatusBadRequest)
	}

	content, err := readMultipartFile(fh)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput,
			fmt.Sprintf("Falha ao ler o anexo %s", field), http.StatusBadRequest)
	}

	return &UploadedDocument{
		Role:     role,
		Filename: fh.Filename,
		Content:  content,
	}, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
