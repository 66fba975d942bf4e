package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

type MockSES struct {
	mock.Mock
}

func (m *MockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sesv2.SendEmailOutput), args.Error(1)
}

func TestSESNotifier_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Builds a plain text email", func(t *testing.T) {
		client := new(MockSES)
		n := newSESNotifier(client, "bot@example.com", "me@example.com", domain.PermissionGranted)

		client.On("SendEmail", ctx, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
			return aws.ToString(in.FromEmailAddress) == "bot@example.com" &&
				len(in.Destination.ToAddresses) == 1 &&
				in.Destination.ToAddresses[0] == "me@example.com" &&
				aws.ToString(in.Content.Simple.Subject.Data) == domain.PerfectDayNotification.Title &&
				aws.ToString(in.Content.Simple.Body.Text.Data) == domain.PerfectDayNotification.Body &&
				aws.ToString(in.EmailTags[0].Value) == "completion"
		})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil).Once()

		require.NoError(t, domain.Deliver(ctx, n, domain.PerfectDayNotification))
		client.AssertExpectations(t)
	})

	t.Run("SES failure is wrapped", func(t *testing.T) {
		client := new(MockSES)
		n := newSESNotifier(client, "bot@example.com", "me@example.com", domain.PermissionGranted)
		boom := errors.New("throttled")

		client.On("SendEmail", ctx, mock.Anything).Return(nil, boom).Once()

		err := n.Send(ctx, domain.TestNotification)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Permission not granted never calls SES", func(t *testing.T) {
		client := new(MockSES)
		n := newSESNotifier(client, "bot@example.com", "me@example.com", domain.PermissionDenied)

		require.NoError(t, domain.Deliver(ctx, n, domain.DailyReminderNotification))
		client.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})
}

func TestSESNotifier_Unconfigured(t *testing.T) {
	ctx := context.Background()

	n, err := NewSESNotifier(ctx, "eu-west-1", "", "", domain.PermissionDefault)
	require.NoError(t, err)

	assert.False(t, n.Supported())

	p, err := n.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDefault, p, "unsupported channel never prompts")

	assert.NoError(t, n.Send(ctx, domain.TestNotification))
}
