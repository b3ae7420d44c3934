package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func decision(approved bool, phone *string) BookingDecision {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return BookingDecision{
		Account:  &models.TenantAccount{ID: 4, Username: "u1", Email: "u1@example.com", Phone: phone},
		Unit:     &models.Unit{ID: 5, Number: "Room 5"},
		Request:  &models.BookingRequest{StartDate: start, EndDate: start.AddDate(1, 0, 0)},
		Approved: approved,
	}
}

func TestDecisionText(t *testing.T) {
	d := decision(true, nil)
	assert.Contains(t, d.Subject(), "approved")
	assert.Contains(t, d.Body(), "Room 5")
	assert.Contains(t, d.Body(), "2025-03-01")

	r := decision(false, nil)
	assert.Contains(t, r.Subject(), "not approved")
	assert.Contains(t, r.Body(), "rejected")
}

func TestUnconfiguredChannelsAreNil(t *testing.T) {
	assert.Nil(t, NewEmailNotifier("", "from@example.com", false))
	assert.Nil(t, NewEmailNotifier("key", "", false))
	assert.Nil(t, NewSMSNotifier("sid", "", "+1555"))
}

func TestEmailNotifierBuildsSandboxedMessage(t *testing.T) {
	var sent *mail.SGMailV3
	e := &EmailNotifier{fromName: "LeaseUp", fromEmail: "noreply@example.com", sandbox: true,
		send: func(m *mail.SGMailV3) error { sent = m; return nil }}

	e.BookingDecided(context.Background(), decision(true, nil))

	require.NotNil(t, sent)
	assert.Equal(t, "noreply@example.com", sent.From.Address)
	require.Len(t, sent.Personalizations, 1)
	assert.Equal(t, "u1@example.com", sent.Personalizations[0].To[0].Address)
	require.NotNil(t, sent.MailSettings)
	require.NotNil(t, sent.MailSettings.SandboxMode)
	assert.True(t, *sent.MailSettings.SandboxMode.Enable)
}

func TestSMSNotifierSkipsAccountsWithoutPhone(t *testing.T) {
	calls := 0
	s := &SMSNotifier{fromPhone: "+15550000000", send: func(*twilioApi.CreateMessageParams) error {
		calls++
		return nil
	}}

	s.BookingDecided(context.Background(), decision(true, nil))
	assert.Zero(t, calls)

	s.BookingDecided(context.Background(), decision(true, utils.Ptr("+15551112222")))
	assert.Equal(t, 1, calls)
}

func TestDeliveryFailuresAreSwallowed(t *testing.T) {
	e := &EmailNotifier{fromEmail: "x@example.com", send: func(*mail.SGMailV3) error { return errors.New("boom") }}
	s := &SMSNotifier{fromPhone: "+1", send: func(*twilioApi.CreateMessageParams) error { return errors.New("boom") }}

	assert.NotPanics(t, func() {
		Multi(e, s).BookingDecided(context.Background(), decision(false, utils.Ptr("+15551112222")))
	})
}

func TestMultiWithoutChannelsIsNoop(t *testing.T) {
	assert.Equal(t, Noop(), Multi(nil))
	assert.Equal(t, Noop(), Multi())
}
