package admission_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"go-admissao/internal/admission"

	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	sent []admission.OutboundMessage
	err  error
}

func (f *fakeMailer) Send(msg admission.OutboundMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func testBundle() *admission.SubmissionBundle {
	return &admission.SubmissionBundle{
		Workbook: admission.TabularBundle{Filename: "dados_admissao.xlsx", Content: []byte("wb")},
		Archive:  []byte("zip"),
	}
}

func TestMailDispatcher_Dispatch(t *testing.T) {
	mailer := &fakeMailer{}
	d := admission.NewMailDispatcher(mailer, "rh@example.com", "Admissão - %s")

	err := d.Dispatch(context.Background(), validRecord(), testBundle())
	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	assert.Equal(t, "rh@example.com", msg.To)
	assert.Equal(t, "Admissão - Maria Silva", msg.Subject)
	assert.Contains(t, msg.Body, "Maria Silva")
	assert.Contains(t, msg.Body, "11144477735")

	assert.Len(t, msg.Attachments, 2, "exactly the workbook and the archive")
	assert.Equal(t, "dados_admissao.xlsx", msg.Attachments[0].Filename)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		msg.Attachments[0].MIMEType,
	)
	assert.Equal(t, "documentos_admissao.zip", msg.Attachments[1].Filename)
	assert.Equal(t, "application/zip", msg.Attachments[1].MIMEType)
}

func TestMailDispatcher_ErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind admission.DispatchKind
	}{
		{
			name: "network timeout",
			err:  timeoutErr{},
			kind: admission.DispatchTimeout,
		},
		{
			name: "dial failure",
			err:  &net.OpError{Op: "dial", Err: errors.New("connection refused")},
			kind: admission.DispatchConnection,
		},
		{
			name: "smtp auth rejected",
			err:  errors.New("535 5.7.8 Authentication credentials invalid"),
			kind: admission.DispatchAuth,
		},
		{
			name: "server refused the message",
			err:  errors.New("552 message size exceeds limit"),
			kind: admission.DispatchRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{err: tt.err}
			d := admission.NewMailDispatcher(mailer, "rh@example.com", "Admissão - %s")

			err := d.Dispatch(context.Background(), validRecord(), testBundle())
			assert.Error(t, err)

			var derr *admission.DispatchError
			assert.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.kind, derr.Kind)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
