package notify

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type SMSNotifier struct {
	fromPhone string
	send      func(*twilioApi.CreateMessageParams) error
}

// NewSMSNotifier returns nil unless all three Twilio settings are present.
func NewSMSNotifier(accountSID, authToken, fromPhone string) *SMSNotifier {
	if accountSID == "" || authToken == "" || fromPhone == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSNotifier{
		fromPhone: fromPhone,
		send: func(p *twilioApi.CreateMessageParams) error {
			_, err := client.Api.CreateMessage(p)
			return err
		},
	}
}

func (s *SMSNotifier) BookingDecided(ctx context.Context, d BookingDecision) {
	if d.Account == nil || d.Account.Phone == nil || *d.Account.Phone == "" {
		return
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(*d.Account.Phone)
	params.SetFrom(s.fromPhone)
	params.SetBody(d.Subject() + " :: " + d.Body())
	if err := s.send(params); err != nil {
		utils.Logger.WithError(err).Warnf("Booking SMS to account %d failed", d.Account.ID)
	}
}
