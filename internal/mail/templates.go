package mail

import (
	"fmt"
	"strings"

	"tripora/pkg/model"
)

// Kind selects one of the four transactional templates.
type Kind string

const (
	KindBookingConfirmation Kind = "booking_confirmation"
	KindBookingAlert        Kind = "booking_alert"
	KindInquiryAck          Kind = "inquiry_ack"
	KindInquiryAlert        Kind = "inquiry_alert"
)

// Data carries everything a template may reference. Templates are pure
// functions of this value.
type Data struct {
	Booking *model.Booking
	Inquiry *model.Inquiry
	Package *model.Package
}

// Render produces the subject line and self-contained HTML body for a
// template kind. It never performs I/O.
func Render(kind Kind, data Data) (subject string, body string, err error) {
	switch kind {
	case KindBookingConfirmation:
		if data.Booking == nil {
			return "", "", fmt.Errorf("booking confirmation requires booking data")
		}
		subject, body = bookingConfirmation(data)
	case KindBookingAlert:
		if data.Booking == nil {
			return "", "", fmt.Errorf("booking alert requires booking data")
		}
		subject, body = bookingAlert(data)
	case KindInquiryAck:
		if data.Inquiry == nil {
			return "", "", fmt.Errorf("inquiry acknowledgment requires inquiry data")
		}
		subject, body = inquiryAck(data)
	case KindInquiryAlert:
		if data.Inquiry == nil {
			return "", "", fmt.Errorf("inquiry alert requires inquiry data")
		}
		subject, body = inquiryAlert(data)
	default:
		return "", "", fmt.Errorf("unknown template kind: %s", kind)
	}
	return subject, body, nil
}

func bookingConfirmation(d Data) (string, string) {
	b := d.Booking
	packageName := "your selected package"
	if d.Package != nil {
		packageName = d.Package.Name
	}

	subject := fmt.Sprintf("Booking received - %s", packageName)
	body := wrapHTML(fmt.Sprintf(`
		<h2>Thank you for your booking, %s!</h2>
		<p>We have received your booking for <strong>%s</strong> and our team
		will confirm it shortly.</p>
		<table>
			<tr><td>Travel date</td><td>%s</td></tr>
			<tr><td>Travelers</td><td>%d</td></tr>
			<tr><td>Total price</td><td>$%.2f</td></tr>
			<tr><td>Status</td><td>%s</td></tr>
		</table>
		<p>We will reach you at %s with any updates.</p>`,
		htmlEscape(b.CustomerName),
		htmlEscape(packageName),
		b.TravelDate.Format("January 2, 2006"),
		b.NumberOfTravelers,
		b.TotalPrice,
		b.Status,
		htmlEscape(b.Email),
	))
	return subject, body
}

func bookingAlert(d Data) (string, string) {
	b := d.Booking
	packageName := b.PackageID
	if d.Package != nil {
		packageName = d.Package.Name
	}

	subject := fmt.Sprintf("New booking: %s (%d travelers)", packageName, b.NumberOfTravelers)
	body := wrapHTML(fmt.Sprintf(`
		<h2>New booking received</h2>
		<table>
			<tr><td>Customer</td><td>%s</td></tr>
			<tr><td>Email</td><td>%s</td></tr>
			<tr><td>Phone</td><td>%s</td></tr>
			<tr><td>Package</td><td>%s</td></tr>
			<tr><td>Travel date</td><td>%s</td></tr>
			<tr><td>Travelers</td><td>%d</td></tr>
			<tr><td>Total price</td><td>$%.2f</td></tr>
		</table>`,
		htmlEscape(b.CustomerName),
		htmlEscape(b.Email),
		htmlEscape(b.Phone),
		htmlEscape(packageName),
		b.TravelDate.Format("January 2, 2006"),
		b.NumberOfTravelers,
		b.TotalPrice,
	))
	return subject, body
}

func inquiryAck(d Data) (string, string) {
	i := d.Inquiry

	subject := "We received your inquiry"
	body := wrapHTML(fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Thanks for getting in touch. Our travel specialists will respond
		to your message within one business day.</p>
		<blockquote>%s</blockquote>`,
		htmlEscape(i.Name),
		htmlEscape(i.Message),
	))
	return subject, body
}

func inquiryAlert(d Data) (string, string) {
	i := d.Inquiry
	packageLine := ""
	if d.Package != nil {
		packageLine = fmt.Sprintf("<tr><td>Package</td><td>%s</td></tr>", htmlEscape(d.Package.Name))
	}

	subject := fmt.Sprintf("New inquiry from %s", i.Name)
	body := wrapHTML(fmt.Sprintf(`
		<h2>New inquiry received</h2>
		<table>
			<tr><td>Name</td><td>%s</td></tr>
			<tr><td>Email</td><td>%s</td></tr>
			<tr><td>Phone</td><td>%s</td></tr>
			%s
		</table>
		<p>%s</p>`,
		htmlEscape(i.Name),
		htmlEscape(i.Email),
		htmlEscape(i.Phone),
		packageLine,
		htmlEscape(i.Message),
	))
	return subject, body
}

func wrapHTML(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
%s
	</div>
</body>
</html>`, content)
}

func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
