package notify

import (
	"context"
	"fmt"
	"html"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/LLEndaya/LeaseUp/internal/utils"
)

const emailHTML = `<p>%s</p><p>The LeaseUp team</p>`

type EmailNotifier struct {
	fromName  string
	fromEmail string
	sandbox   bool
	send      func(*mail.SGMailV3) error
}

// NewEmailNotifier returns nil when apiKey or fromEmail is empty.
func NewEmailNotifier(apiKey, fromEmail string, sandbox bool) *EmailNotifier {
	if apiKey == "" || fromEmail == "" {
		return nil
	}
	client := sendgrid.NewSendClient(apiKey)
	return &EmailNotifier{
		fromName:  "LeaseUp",
		fromEmail: fromEmail,
		sandbox:   sandbox,
		send: func(m *mail.SGMailV3) error {
			resp, err := client.Send(m)
			if err != nil {
				return err
			}
			if resp.StatusCode >= http.StatusBadRequest {
				return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
			}
			return nil
		},
	}
}

func (e *EmailNotifier) BookingDecided(ctx context.Context, d BookingDecision) {
	if d.Account == nil || d.Account.Email == "" {
		return
	}
	msg := e.buildMessage(d)
	if err := e.send(msg); err != nil {
		utils.Logger.WithError(err).Warnf("Booking email to account %d failed", d.Account.ID)
		return
	}
	utils.Logger.Debugf("Booking email sent to account %d", d.Account.ID)
}

func (e *EmailNotifier) buildMessage(d BookingDecision) *mail.SGMailV3 {
	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(d.Account.Username, d.Account.Email)
	body := d.Body()
	msg := mail.NewSingleEmail(from, d.Subject(), to, body, fmt.Sprintf(emailHTML, html.EscapeString(body)))
	msg.TrackingSettings = &mail.TrackingSettings{
		ClickTracking: &mail.ClickTrackingSetting{
			Enable: utils.Ptr(false),
		},
	}
	if e.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}
	return msg
}
