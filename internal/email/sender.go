// Package email delivers transactional league notifications through SES and
// renders their HTML and plain-text bodies.
package email

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"golang.org/x/sync/errgroup"
)

const charset = "UTF-8"

// maxConcurrentSends bounds the fan-out so a large league does not exhaust
// connections to SES.
const maxConcurrentSends = 8

// SESAPI is the subset of the SES client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, opts ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender delivers messages through SES.
type Sender struct {
	client SESAPI
	from   string
	logger *slog.Logger
}

// NewSender creates a Sender using the given SES client and verified sender
// address.
func NewSender(client SESAPI, from string, logger *slog.Logger) *Sender {
	return &Sender{client: client, from: from, logger: logger}
}

// Send delivers a single message. Returns false on failure; delivery failures
// are logged, not propagated, so a batch can continue past individual bounces.
func (s *Sender) Send(ctx context.Context, msg Message) bool {
	out, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charset)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String(charset)},
					Text: &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String(charset)},
				},
			},
		},
	})
	if err != nil {
		s.logger.Error("email send failed",
			slog.String("to", msg.To), slog.String("error", err.Error()))
		return false
	}

	s.logger.Info("email sent",
		slog.String("to", msg.To), slog.String("message_id", aws.ToString(out.MessageId)))
	return true
}

// SendBatch fans the messages out concurrently and returns the success and
// failure counts. Individual failures never abort the batch.
func (s *Sender) SendBatch(ctx context.Context, messages []Message) (successes, failures int) {
	results := make([]bool, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSends)

	for i, msg := range messages {
		g.Go(func() error {
			results[i] = s.Send(gctx, msg)
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	for _, ok := range results {
		if ok {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures
}
