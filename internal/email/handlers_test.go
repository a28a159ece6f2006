package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/handler"
)

func testHandlers(client SESAPI) *Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := NewSender(client, "noreply@xomper.xomware.com", logger)
	return NewHandlers(sender, NewTemplates("https://xomper.xomware.com"), logger)
}

func proposalBody() map[string]any {
	return map[string]any{
		"proposal": map[string]any{
			"title":                "Allow IR stashing",
			"description":          "Players on IR can be stashed without a roster spot.",
			"proposed_by_username": "Dom",
			"league_name":          "The Dynasty League",
		},
		"recipients": []any{"a@example.com", "b@example.com"},
	}
}

func TestSendRuleProposal(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return aws.ToString(in.Content.Simple.Subject.Data) == "New Rule Proposal: Allow IR stashing"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m")}, nil).Twice()

	result, err := testHandlers(client).SendRuleProposal(context.Background(), handler.Event{Body: proposalBody()})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"successfulEmails": 2, "failedEmails": 0}, result)
	client.AssertExpectations(t)
}

func TestSendRuleProposal_MissingField(t *testing.T) {
	body := proposalBody()
	delete(body, "recipients")

	_, err := testHandlers(&MockSESAPI{}).SendRuleProposal(context.Background(), handler.Event{Body: body})

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
	assert.Contains(t, typed.Message, "recipients")
}

func TestSendRuleProposal_BadRecipient(t *testing.T) {
	body := proposalBody()
	body["recipients"] = []any{"not-an-address"}

	_, err := testHandlers(&MockSESAPI{}).SendRuleProposal(context.Background(), handler.Event{Body: body})

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
}

func TestSendRuleAccepted_CountsVotes(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return aws.ToString(in.Content.Simple.Subject.Data) == "Rule Accepted: Allow IR stashing"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m")}, nil)

	body := proposalBody()
	body["approved_by"] = []any{"Dom", "Steve", "Mike"}
	body["rejected_by"] = []any{"Jake"}

	result, err := testHandlers(client).SendRuleAccepted(context.Background(), handler.Event{Body: body})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"successfulEmails": 2, "failedEmails": 0}, result)
}

func TestSendRuleDenied_ReportsFailures(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("bounce"))

	body := proposalBody()
	body["approved_by"] = []any{"Dom"}
	body["rejected_by"] = []any{"Steve", "Mike", "Jake"}

	result, err := testHandlers(client).SendRuleDenied(context.Background(), handler.Event{Body: body})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"successfulEmails": 0, "failedEmails": 2}, result)
}

func TestSendTaxiSteal_OwnerGetsAlert(t *testing.T) {
	client := &MockSESAPI{}
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return in.Destination.ToAddresses[0] == "owner@example.com" &&
			aws.ToString(in.Content.Simple.Subject.Data) == "Your taxi squad is under attack: Puka Nacua"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m")}, nil).Once()
	client.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		return aws.ToString(in.Content.Simple.Subject.Data) == "Taxi Squad Steal: Puka Nacua"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m")}, nil).Once()

	body := map[string]any{
		"user":       "Dom",
		"targetUser": "Alex",
		"player":     "Puka Nacua",
		"emails":     []any{"league@example.com", "owner@example.com"},
		"ownerEmail": "owner@example.com",
		"leagueName": "The Dynasty League",
	}

	result, err := testHandlers(client).SendTaxiSteal(context.Background(), handler.Event{Body: body})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"successfulEmails": 2, "failedEmails": 0}, result)
	client.AssertExpectations(t)
}

func TestSendTaxiSteal_UnexpectedField(t *testing.T) {
	body := map[string]any{
		"user":       "Dom",
		"targetUser": "Alex",
		"player":     "Puka Nacua",
		"emails":     []any{"league@example.com"},
		"bogus":      true,
	}

	_, err := testHandlers(&MockSESAPI{}).SendTaxiSteal(context.Background(), handler.Event{Body: body})

	typed, ok := apperrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, typed.Kind)
	assert.Contains(t, typed.Message, "bogus")
}
