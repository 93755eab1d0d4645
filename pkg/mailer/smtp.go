package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"os"
	"time"
)

// SMTPMailer sends messages through an SMTP relay with STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// NewSMTPMailer creates an SMTPMailer. Credentials may be empty; Send then
// fails with ErrNotConfigured before touching the network.
func NewSMTPMailer(host string, port int, username, password string, timeout time.Duration) *SMTPMailer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SMTPMailer{host: host, port: port, username: username, password: password, timeout: timeout}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send performs one complete SMTP dialog: dial, EHLO, STARTTLS, AUTH,
// MAIL/RCPT/DATA, QUIT. The configured timeout bounds the whole attempt
// via a connection deadline.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.host == "" || m.username == "" || m.password == "" {
		return &Error{Stage: StageConfigure, Kind: KindConfig, Err: ErrNotConfigured}
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return classify(StageConnect, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return classify(StageConnect, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return classify(StageConnect, err)
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := c.Auth(auth); err != nil {
		return classify(StageAuthenticate, err)
	}

	if err := c.Mail(msg.From); err != nil {
		return classify(StageSend, err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return classify(StageSend, err)
	}
	w, err := c.Data()
	if err != nil {
		return classify(StageSend, err)
	}
	if _, err := w.Write(msg.bytes()); err != nil {
		return classify(StageSend, err)
	}
	if err := w.Close(); err != nil {
		return classify(StageSend, err)
	}

	// The server accepted the message once DATA completed; a failed QUIT
	// must not report it as undelivered.
	if err := c.Quit(); err != nil {
		slog.Debug("smtp quit failed after accepted message", "error", err)
	}
	return nil
}

// classify wraps a raw transport error with the stage it occurred at and
// a failure kind. Deadline and context timeouts win over the stage default.
func classify(stage Stage, err error) *Error {
	kind := KindTransport
	var ne net.Error
	switch {
	case errors.As(err, &ne) && ne.Timeout(),
		errors.Is(err, os.ErrDeadlineExceeded),
		errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case stage == StageAuthenticate:
		kind = KindAuth
	}
	return &Error{Stage: stage, Kind: kind, Err: err}
}
