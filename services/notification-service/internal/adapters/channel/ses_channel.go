// Package channel содержит каналы доставки писем о новых объявлениях.
package channel

import (
	"context"
	"fmt"

	"real-estate-platform/services/notification-service/internal/core/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService метод клиента SES, который нужен каналу
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESChannel отправляет письма через Amazon SES
type SESChannel struct {
	client SESService
	from   string
}

func NewSESClient(ctx context.Context, region string) (*ses.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return ses.NewFromConfig(awsCfg), nil
}

func NewSESChannel(client SESService, from string) (*SESChannel, error) {
	if client == nil {
		return nil, fmt.Errorf("ses channel: client cannot be nil")
	}
	if from == "" {
		return nil, fmt.Errorf("ses channel: sender address is required")
	}
	return &SESChannel{client: client, from: from}, nil
}

func (c *SESChannel) Send(ctx context.Context, msg domain.Message) error {
	_, err := c.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
			},
		},
		Source: aws.String(c.from),
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
