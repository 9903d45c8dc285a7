package admission

import (
	"context"
	"errors"
	"time"

	admissionerrors "go-admissao/internal/admission/errors"
	"go-admissao/internal/bootstrap"
	"go-admissao/internal/shared/apperror"
	"go-admissao/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the per-submission lifecycle. Rejected, Delivered and
// DispatchFailed are terminal; nothing is persisted between a terminal state
// and the next submission.
type State string

const (
	StateCollecting     State = "collecting"
	StateValidating     State = "validating"
	StateRejected       State = "rejected"
	StateExporting      State = "exporting"
	StateArchiving      State = "archiving"
	StateDispatching    State = "dispatching"
	StateDelivered      State = "delivered"
	StateDispatchFailed State = "dispatch_failed"
)

type SubmissionResult struct {
	ID         uuid.UUID
	State      State
	Validation ValidationResult
}

// Dispatcher hands a finished bundle to the mail-transport collaborator.
type Dispatcher interface {
	Dispatch(ctx context.Context, rec *EmployeeRecord, bundle *SubmissionBundle) error
}

type Service interface {
	Submit(ctx context.Context, rec *EmployeeRecord) (SubmissionResult, error)
	Schema() SchemaResponse
}

type service struct {
	validator  *Validator
	exporter   *TabularExporter
	archiver   *ArchiveAssembler
	dispatcher Dispatcher
	store      *LocalStore // nil outside the legacy profile
	audit      bootstrap.AuditLogger

	employeeFields  FieldSet
	dependentFields FieldSet

	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	validator *Validator,
	exporter *TabularExporter,
	archiver *ArchiveAssembler,
	dispatcher Dispatcher,
	store *LocalStore,
	audit bootstrap.AuditLogger,
	employeeFields, dependentFields FieldSet,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("admission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admission.service")
	}
	return &service{
		validator:       validator,
		exporter:        exporter,
		archiver:        archiver,
		dispatcher:      dispatcher,
		store:           store,
		audit:           audit,
		employeeFields:  employeeFields,
		dependentFields: dependentFields,
		now:             time.Now,
		logger:          l,
	}
}

// Submit drives one aggregate through the whole pipeline, strictly
// sequentially: each stage consumes the complete output of the previous one.
// The aggregate is exclusively owned by this call and dropped on return.
func (s *service) Submit(ctx context.Context, rec *EmployeeRecord) (SubmissionResult, error) {
	rid := contextutil.GetRequestID(ctx)
	rec.ID = uuid.New()

	result := SubmissionResult{ID: rec.ID, State: StateValidating}

	s.logger.Debug("submission received",
		zap.String("request_id", rid),
		zap.String("submission_id", rec.ID.String()),
		zap.Int("dependents", len(rec.Dependents)),
	)

	result.Validation = s.validator.Validate(rec)
	if !result.Validation.OK() {
		result.State = StateRejected
		s.logger.Warn("submission rejected",
			zap.String("request_id", rid),
			zap.String("submission_id", rec.ID.String()),
			zap.Strings("missing_fields", result.Validation.MissingFields),
			zap.Bool("invalid_cpf", result.Validation.InvalidCPF),
		)
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditSubmissionRejected,
			Message: "Submission rejected by validation",
			Meta: map[string]any{
				"submission_id":  rec.ID.String(),
				"missing_fields": len(result.Validation.MissingFields),
				"invalid_cpf":    result.Validation.InvalidCPF,
			},
		})
		// Missing fields take precedence so the operator completes the form
		// before being told about the check digits.
		if len(result.Validation.MissingFields) > 0 {
			return result, admissionerrors.ErrMissingRequiredFields
		}
		return result, admissionerrors.ErrInvalidCPF
	}

	result.State = StateExporting
	workbook, err := s.exporter.Export(rec, s.now())
	if err != nil {
		s.logger.Error("export failed",
			zap.String("request_id", rid),
			zap.String("submission_id", rec.ID.String()),
			zap.Error(err),
		)
		return result, apperror.Wrap(err,
			admissionerrors.ErrExportFailed.Code,
			admissionerrors.ErrExportFailed.Message,
			admissionerrors.ErrExportFailed.HTTPStatus,
		)
	}

	result.State = StateArchiving
	archive, err := s.archiver.Assemble(s.archiver.Entries(rec, workbook))
	if err != nil {
		s.logger.Error("archive failed",
			zap.String("request_id", rid),
			zap.String("submission_id", rec.ID.String()),
			zap.Error(err),
		)
		return result, apperror.Wrap(err,
			admissionerrors.ErrArchiveFailed.Code,
			admissionerrors.ErrArchiveFailed.Message,
			admissionerrors.ErrArchiveFailed.HTTPStatus,
		)
	}

	bundle := &SubmissionBundle{Workbook: *workbook, Archive: archive}

	result.State = StateDispatching
	if err := s.dispatcher.Dispatch(ctx, rec, bundle); err != nil {
		result.State = StateDispatchFailed
		kind := DispatchRejected
		var derr *DispatchError
		if errors.As(err, &derr) {
			kind = derr.Kind
		}
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  bootstrap.AuditSubmissionDispatchFailed,
			Message: "Submission dispatch failed",
			Meta: map[string]any{
				"submission_id": rec.ID.String(),
				"kind":          string(kind),
			},
		})
		return result, apperror.Wrap(err,
			admissionerrors.ErrDispatchFailed.Code,
			admissionerrors.ErrDispatchFailed.Message,
			admissionerrors.ErrDispatchFailed.HTTPStatus,
		)
	}

	if s.store != nil {
		if err := s.store.Save(rec, workbook); err != nil {
			// The bundle is already delivered; local persistence is a legacy
			// convenience, so a failure here does not fail the submission.
			s.logger.Error("local store save failed",
				zap.String("request_id", rid),
				zap.String("submission_id", rec.ID.String()),
				zap.Error(err),
			)
		}
	}

	result.State = StateDelivered
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditSubmissionDelivered,
		Message: "Submission delivered",
		Meta: map[string]any{
			"submission_id": rec.ID.String(),
		},
	})
	s.logger.Info("submission delivered",
		zap.String("request_id", rid),
		zap.String("submission_id", rec.ID.String()),
	)
	return result, nil
}

func (s *service) Schema() SchemaResponse {
	return SchemaResponse{
		Employee:  s.employeeFields,
		Dependent: s.dependentFields,
	}
}
