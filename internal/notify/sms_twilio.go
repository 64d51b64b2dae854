package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client: client,
		from:   from,
	}
}

func (s *TwilioSender) SendConfirmation(_ context.Context, msg Confirmation) error {
	body := fmt.Sprintf(
		"Olá %s! A sua marcação ficou registada para %s. Até já!",
		msg.Name,
		msg.FormattedTime,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.Phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
