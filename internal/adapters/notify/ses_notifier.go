package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

var _ domain.Notifier = (*SESNotifier)(nil)

// sesAPI is the slice of the SES client the notifier needs.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier delivers notifications as plain emails through Amazon SES.
type SESNotifier struct {
	permissionGate

	client    sesAPI
	fromEmail string
	toEmail   string
}

// NewSESNotifier loads the default AWS configuration for region. The
// notifier reports itself unsupported when either address is missing.
func NewSESNotifier(ctx context.Context, region, fromEmail, toEmail string, initial domain.Permission) (*SESNotifier, error) {
	if fromEmail == "" || toEmail == "" {
		log.Println("[NOTIFY] SES channel disabled: SES_FROM_EMAIL or SES_TO_EMAIL not configured")
		return &SESNotifier{permissionGate: newPermissionGate(initial)}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("[NOTIFY] SES channel enabled: from=%s, region=%s", fromEmail, region)
	return newSESNotifier(sesv2.NewFromConfig(cfg), fromEmail, toEmail, initial), nil
}

func newSESNotifier(client sesAPI, fromEmail, toEmail string, initial domain.Permission) *SESNotifier {
	return &SESNotifier{
		permissionGate: newPermissionGate(initial),
		client:         client,
		fromEmail:      fromEmail,
		toEmail:        toEmail,
	}
}

func (n *SESNotifier) Supported() bool {
	return n.client != nil && n.fromEmail != "" && n.toEmail != ""
}

func (n *SESNotifier) RequestPermission(ctx context.Context) (domain.Permission, error) {
	if !n.Supported() {
		return n.Permission(), nil
	}
	return n.request(), nil
}

func (n *SESNotifier) Send(ctx context.Context, msg domain.Notification) error {
	if !n.Supported() {
		return nil
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{n.toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(msg.Title),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(msg.Body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}
	if msg.Tag != "" {
		input.EmailTags = []types.MessageTag{
			{Name: aws.String("kind"), Value: aws.String(msg.Tag)},
		}
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send notification to %s: %w", n.toEmail, err)
	}

	log.Printf("[NOTIFY] Email sent: to=%s, subject=%s", n.toEmail, msg.Title)
	return nil
}
