package admission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"go-admissao/internal/shared/contextutil"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZip  = "application/zip"

	archiveAttachmentName = "documentos_admissao.zip"
)

type DispatchKind string

const (
	DispatchAuth       DispatchKind = "auth"
	DispatchConnection DispatchKind = "connection"
	DispatchTimeout    DispatchKind = "timeout"
	DispatchRejected   DispatchKind = "rejected"
)

// DispatchError is a typed transport failure. The submission is reported as
// failed; nothing is retried and the aggregate survives only in memory.
type DispatchError struct {
	Kind DispatchKind
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed (%s): %v", e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

type Attachment struct {
	Filename string
	Content  []byte
	MIMEType string
}

// OutboundMessage is the transport-agnostic view of one outgoing e-mail.
type OutboundMessage struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer is the external mail-transport collaborator. The SMTP implementation
// lives below; tests substitute a fake.
type Mailer interface {
	Send(msg OutboundMessage) error
}

// SMTPMailer delivers over an authenticated STARTTLS session via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

func (m *SMTPMailer) Send(msg OutboundMessage) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	for _, att := range msg.Attachments {
		content := att.Content
		gm.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.MIMEType},
			}),
		)
	}

	return m.dialer.DialAndSend(gm)
}

// MailDispatcher builds the outbound message for one finished bundle and
// hands it to the Mailer. Recipient and subject template come from process
// configuration, never from the record itself.
type MailDispatcher struct {
	mailer          Mailer
	recipient       string
	subjectTemplate string
	logger          *zap.Logger
}

func NewMailDispatcher(mailer Mailer, recipient, subjectTemplate string, logger ...*zap.Logger) *MailDispatcher {
	l := zap.L().Named("admission.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admission.dispatcher")
	}
	return &MailDispatcher{
		mailer:          mailer,
		recipient:       recipient,
		subjectTemplate: subjectTemplate,
		logger:          l,
	}
}

// Dispatch sends one message with exactly two attachments: the workbook and
// the zip. The call blocks until the transport accepts or fails; there is no
// cancellation once it begins.
func (d *MailDispatcher) Dispatch(ctx context.Context, rec *EmployeeRecord, bundle *SubmissionBundle) error {
	rid := contextutil.GetRequestID(ctx)

	msg := OutboundMessage{
		To:      d.recipient,
		Subject: fmt.Sprintf(d.subjectTemplate, rec.NomeCompleto),
		Body: fmt.Sprintf("Nova admissão recebida.\n\nNome: %s\nCPF: %s\n",
			rec.NomeCompleto, rec.CPF),
		Attachments: []Attachment{
			{Filename: bundle.Workbook.Filename, Content: bundle.Workbook.Content, MIMEType: mimeXLSX},
			{Filename: archiveAttachmentName, Content: bundle.Archive, MIMEType: mimeZip},
		},
	}

	if err := d.mailer.Send(msg); err != nil {
		derr := &DispatchError{Kind: classifyDispatchError(err), Err: err}
		d.logger.Error("dispatch failed",
			zap.String("request_id", rid),
			zap.String("kind", string(derr.Kind)),
			zap.Error(err),
		)
		return derr
	}

	d.logger.Info("dispatch delivered",
		zap.String("request_id", rid),
		zap.String("recipient", d.recipient),
	)
	return nil
}

// classifyDispatchError folds the opaque transport error into the four
// categories the operator sees. SMTP auth failures carry a 535 reply code;
// everything the server actively refused falls under rejected.
func classifyDispatchError(err error) DispatchKind {
	var nErr net.Error
	if errors.As(err, &nErr) && nErr.Timeout() {
		return DispatchTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return DispatchConnection
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "authentication"):
		return DispatchAuth
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "dial"):
		return DispatchConnection
	case strings.Contains(msg, "timeout"):
		return DispatchTimeout
	default:
		return DispatchRejected
	}
}
