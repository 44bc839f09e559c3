// Package mail renders and sends the transactional emails fired as a side
// effect of booking and inquiry creation. Delivery is best-effort: the
// dispatcher never propagates a failure, callers inspect the Result and
// log-and-continue.
package mail

import (
	"fmt"
	"net/smtp"

	"github.com/google/uuid"

	"tripora/pkg/config"
	"tripora/pkg/logger"
)

// Result is the outcome of a single send. Err is set when Success is false.
type Result struct {
	Success   bool
	MessageID string
	Err       error
}

type Dispatcher struct {
	cfg *config.Config
	log *logger.Logger
}

func NewDispatcher(cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		cfg: cfg,
		log: cfg.Log,
	}
}

// Send renders the template and delivers it over SMTP. Admin-facing kinds
// go to the configured admin address, customer-facing kinds to the
// record's email. All failures come back as a Result value.
func (d *Dispatcher) Send(kind Kind, data Data) Result {
	to, err := d.recipient(kind, data)
	if err != nil {
		return Result{Success: false, Err: err}
	}

	subject, body, err := Render(kind, data)
	if err != nil {
		return Result{Success: false, Err: err}
	}

	if d.cfg.SMTPHost == "" || d.cfg.SMTPUsername == "" || d.cfg.SMTPPassword == "" {
		return Result{Success: false, Err: fmt.Errorf("mail credentials not configured")}
	}

	auth := smtp.PlainAuth("", d.cfg.SMTPUsername, d.cfg.SMTPPassword, d.cfg.SMTPHost)

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		d.cfg.FromName, d.cfg.FromEmail, to, subject, body))

	addr := d.cfg.SMTPHost + ":" + d.cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, d.cfg.FromEmail, []string{to}, message); err != nil {
		return Result{Success: false, Err: fmt.Errorf("failed to send %s email: %w", kind, err)}
	}

	return Result{Success: true, MessageID: uuid.New().String()}
}

func (d *Dispatcher) recipient(kind Kind, data Data) (string, error) {
	switch kind {
	case KindBookingConfirmation:
		if data.Booking == nil || data.Booking.Email == "" {
			return "", fmt.Errorf("no customer email for %s", kind)
		}
		return data.Booking.Email, nil
	case KindInquiryAck:
		if data.Inquiry == nil || data.Inquiry.Email == "" {
			return "", fmt.Errorf("no customer email for %s", kind)
		}
		return data.Inquiry.Email, nil
	case KindBookingAlert, KindInquiryAlert:
		if d.cfg.AdminEmail == "" {
			return "", fmt.Errorf("admin email not configured")
		}
		return d.cfg.AdminEmail, nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}
