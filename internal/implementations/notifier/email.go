package notifier

import (
	"context"
	"georemind/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Email sends notifications as plain text emails through Amazon SES.
type Email struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender    string
	recipient string
}

func NewEmail(awsConfig aws.Config, sender string, recipient string) *Email {
	return &Email{
		ses:       ses.NewFromConfig(awsConfig),
		sender:    sender,
		recipient: recipient,
	}
}

func (s *Email) Present(ctx context.Context, n notification.Notification) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: aws.String(s.sender),
			Destination: &types.Destination{
				ToAddresses: []string{s.recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(n.Title)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(n.Body)},
				},
			},
		},
	)
	return err
}
