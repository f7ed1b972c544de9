package channel

import (
	"context"
	"fmt"

	"real-estate-platform/services/notification-service/internal/core/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSService метод клиента SNS, который нужен каналу
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSChannel публикует письмо в топик SNS с email-подписками.
// Получателей определяют подписки топика, поле To не используется.
type SNSChannel struct {
	client   SNSService
	topicARN string
}

func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return sns.NewFromConfig(awsCfg), nil
}

func NewSNSChannel(client SNSService, topicARN string) (*SNSChannel, error) {
	if client == nil {
		return nil, fmt.Errorf("sns channel: client cannot be nil")
	}
	if topicARN == "" {
		return nil, fmt.Errorf("sns channel: topic ARN is required")
	}
	return &SNSChannel{client: client, topicARN: topicARN}, nil
}

func (c *SNSChannel) Send(ctx context.Context, msg domain.Message) error {
	_, err := c.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicARN),
		Subject:  aws.String(msg.Subject),
		Message:  aws.String(msg.Body),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
