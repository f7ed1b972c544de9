package channel

import (
	"context"
	"errors"
	"testing"

	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/notification-service/internal/core/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	mock.Mock
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type MockSNSService struct {
	mock.Mock
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

var testMessage = domain.Message{
	To:      "team@example.com",
	Subject: "New Property Listed in Koper",
	Body:    "New Property Listed!",
}

func TestSESChannel_Send(t *testing.T) {
	client := new(MockSESService)
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.ToString(in.Source) == "noreply@example.com" &&
			len(in.Destination.ToAddresses) == 1 && in.Destination.ToAddresses[0] == "team@example.com" &&
			aws.ToString(in.Message.Subject.Data) == testMessage.Subject &&
			aws.ToString(in.Message.Body.Text.Data) == testMessage.Body
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil)

	ch, err := NewSESChannel(client, "noreply@example.com")
	require.NoError(t, err)

	require.NoError(t, ch.Send(context.Background(), testMessage))
	client.AssertExpectations(t)
}

func TestSESChannel_SendError(t *testing.T) {
	client := new(MockSESService)
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("MessageRejected"))

	ch, err := NewSESChannel(client, "noreply@example.com")
	require.NoError(t, err)

	err = ch.Send(context.Background(), testMessage)
	assert.ErrorContains(t, err, "MessageRejected")
}

func TestNewSESChannel_Validation(t *testing.T) {
	_, err := NewSESChannel(nil, "noreply@example.com")
	assert.Error(t, err)

	_, err = NewSESChannel(new(MockSESService), "")
	assert.Error(t, err)
}

func TestSNSChannel_Send(t *testing.T) {
	client := new(MockSNSService)
	client.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		return aws.ToString(in.TopicArn) == "arn:aws:sns:eu-central-1:123:listings" &&
			aws.ToString(in.Subject) == testMessage.Subject &&
			aws.ToString(in.Message) == testMessage.Body
	})).Return(&sns.PublishOutput{MessageId: aws.String("m-1")}, nil)

	ch, err := NewSNSChannel(client, "arn:aws:sns:eu-central-1:123:listings")
	require.NoError(t, err)

	require.NoError(t, ch.Send(context.Background(), testMessage))
	client.AssertExpectations(t)
}

func TestSNSChannel_Errors(t *testing.T) {
	_, err := NewSNSChannel(new(MockSNSService), "")
	assert.Error(t, err)

	client := new(MockSNSService)
	client.On("Publish", mock.Anything, mock.Anything).Return(nil, errors.New("AuthorizationError"))
	ch, err := NewSNSChannel(client, "arn:topic")
	require.NoError(t, err)
	assert.ErrorContains(t, ch.Send(context.Background(), testMessage), "AuthorizationError")
}

func TestLogChannel_Send(t *testing.T) {
	assert.NoError(t, NewLogChannel(logging.NewNoop()).Send(context.Background(), testMessage))
}
