// Package mailer provides the outbound email transport for operator
// notifications. Uses a raw SMTP dialog (no SDK) so failures can be
// attributed to the exact stage reached: connect, authenticate, send.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"
)

// Stage identifies how far a delivery attempt got before failing.
type Stage string

const (
	StageConfigure    Stage = "configure"
	StageConnect      Stage = "connect"
	StageAuthenticate Stage = "authenticate"
	StageSend         Stage = "send"
)

// Kind classifies a delivery failure for logging and tests.
type Kind string

const (
	KindConfig    Kind = "configuration"
	KindAuth      Kind = "authentication"
	KindTimeout   Kind = "timeout"
	KindTransport Kind = "transport"
)

// ErrNotConfigured is returned when transport credentials are missing.
// No connection is attempted in that case.
var ErrNotConfigured = errors.New("mailer: not configured")

// Error is a classified delivery failure.
type Error struct {
	Stage Stage
	Kind  Kind
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mailer: %s failed (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify returns the stage and kind of a delivery error. Errors that did
// not come from this package are reported as a generic transport failure.
func Classify(err error) (Stage, Kind) {
	var me *Error
	if errors.As(err, &me) {
		return me.Stage, me.Kind
	}
	return StageSend, KindTransport
}

// Message is one rendered notification ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// bytes renders the RFC 5322 message with an HTML body.
func (m Message) bytes() []byte {
	var b strings.Builder
	b.WriteString("From: " + m.From + "\r\n")
	b.WriteString("To: " + m.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.HTML)
	return []byte(b.String())
}

// Mailer delivers one message per call. One outbound connection per
// delivery attempt; no pooling, no reuse, no automatic retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
