package app

import (
	"net/http"

	"go-admissao/internal/admission"
	"go-admissao/internal/bootstrap"
	"go-admissao/internal/config"
	"go-admissao/internal/middleware"
	"go-admissao/internal/shared/cpf"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires the submission pipeline and registers the routes. All
// collaborators are constructed here, once, at process startup.
func BuildApp(router *gin.Engine, cfg *config.Config, audit bootstrap.AuditLogger, logger *zap.Logger) error {
	employeeFields := admission.EmployeeFieldSet(cfg.RequiredProfile)
	dependentFields := admission.DependentFieldSet()

	validator := admission.NewValidator(employeeFields, dependentFields, cpf.Valid)
	exporter := admission.NewTabularExporter()
	archiver := admission.NewArchiveAssembler(cfg.ArchiveIncludeSheets)

	mailer := admission.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	dispatcher := admission.NewMailDispatcher(mailer, cfg.RecipientEmail, cfg.SubjectTemplate, logger)

	var store *admission.LocalStore
	if cfg.LocalBasePath != "" {
		store = admission.NewLocalStore(cfg.LocalBasePath)
	}

	service := admission.NewService(
		validator,
		exporter,
		archiver,
		dispatcher,
		store,
		audit,
		employeeFields,
		dependentFields,
		logger,
	)
	handler := admission.NewHandler(service, logger)

	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	admission.RegisterRoutes(api, handler, logger)

	return nil
}
