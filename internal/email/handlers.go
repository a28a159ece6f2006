package email

import (
	"context"
	"log/slog"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
	"github.com/domgiordano/xomper-back-end/internal/handler"
	"github.com/domgiordano/xomper-back-end/internal/validation"
)

const (
	ruleProposalHandler = "email_rule_proposal"
	ruleAcceptHandler   = "email_rule_accept"
	ruleDenyHandler     = "email_rule_deny"
	taxiStealHandler    = "email_taxi"
)

// Handlers exposes the notification operations over a Sender and Templates.
type Handlers struct {
	sender    *Sender
	templates *Templates
	logger    *slog.Logger
}

// NewHandlers returns email Handlers.
func NewHandlers(sender *Sender, templates *Templates, logger *slog.Logger) *Handlers {
	return &Handlers{sender: sender, templates: templates, logger: logger}
}

// SendRuleProposal notifies every league member about a new rule proposal.
// The payload carries a proposal object and a recipients list.
func (h *Handlers) SendRuleProposal(ctx context.Context, event handler.Event) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	if err := validation.RequireFields(body, ruleProposalHandler, []string{"proposal", "recipients"}); err != nil {
		return nil, err
	}

	proposal, err := proposalFields(body, ruleProposalHandler)
	if err != nil {
		return nil, err
	}
	recipients, err := recipientList(body, "recipients", ruleProposalHandler)
	if err != nil {
		return nil, err
	}

	h.logger.Info("sending rule proposal emails",
		slog.String("rule", proposal.RuleTitle),
		slog.Int("recipients", len(recipients)),
	)

	subject := RuleProposedSubject(proposal)
	htmlBody := h.templates.RuleProposedHTML(proposal)
	textBody := h.templates.RuleProposedText(proposal)

	successes, failures := h.sender.SendBatch(ctx, buildMessages(recipients, subject, htmlBody, textBody))
	return batchResult(successes, failures), nil
}

// SendRuleAccepted notifies every league member that a proposal passed the vote.
func (h *Handlers) SendRuleAccepted(ctx context.Context, event handler.Event) (any, error) {
	return h.sendRuleDecision(ctx, event, ruleAcceptHandler, true)
}

// SendRuleDenied notifies every league member that a proposal failed the vote.
func (h *Handlers) SendRuleDenied(ctx context.Context, event handler.Event) (any, error) {
	return h.sendRuleDecision(ctx, event, ruleDenyHandler, false)
}

func (h *Handlers) sendRuleDecision(
	ctx context.Context, event handler.Event, name string, accepted bool,
) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	required := []string{"proposal", "approved_by", "rejected_by", "recipients"}
	if err := validation.RequireFields(body, name, required); err != nil {
		return nil, err
	}

	proposal, err := proposalFields(body, name)
	if err != nil {
		return nil, err
	}
	approvedBy, ok := validation.StringList(body["approved_by"])
	if !ok {
		return nil, apperrors.New(apperrors.KindValidation, "approved_by must be a list of names", name, "sendRuleDecision")
	}
	rejectedBy, ok := validation.StringList(body["rejected_by"])
	if !ok {
		return nil, apperrors.New(apperrors.KindValidation, "rejected_by must be a list of names", name, "sendRuleDecision")
	}
	recipients, err := recipientList(body, "recipients", name)
	if err != nil {
		return nil, err
	}

	decision := RuleDecision{
		RuleTitle:    proposal.RuleTitle,
		LeagueName:   proposal.LeagueName,
		Accepted:     accepted,
		VotesFor:     len(approvedBy),
		VotesAgainst: len(rejectedBy),
	}

	h.logger.Info("sending rule decision emails",
		slog.String("rule", decision.RuleTitle),
		slog.Bool("accepted", accepted),
		slog.Int("votes_for", decision.VotesFor),
		slog.Int("votes_against", decision.VotesAgainst),
		slog.Int("recipients", len(recipients)),
	)

	subject := RuleDecisionSubject(decision)
	htmlBody := h.templates.RuleDecisionHTML(decision)
	textBody := h.templates.RuleDecisionText(decision)

	successes, failures := h.sender.SendBatch(ctx, buildMessages(recipients, subject, htmlBody, textBody))
	return batchResult(successes, failures), nil
}

// SendTaxiSteal notifies the league that a taxi squad player is being stolen.
// When ownerEmail is present the owner gets a dedicated alert instead of the
// league-wide notice.
func (h *Handlers) SendTaxiSteal(ctx context.Context, event handler.Event) (any, error) {
	body, err := event.ParseBody()
	if err != nil {
		return nil, err
	}
	required := []string{"user", "targetUser", "player", "emails"}
	if err := validation.RequireFields(body, taxiStealHandler, required, "ownerEmail", "leagueName"); err != nil {
		return nil, err
	}

	steal := TaxiSteal{
		StealerName: stringField(body, "user"),
		OwnerName:   stringField(body, "targetUser"),
		PlayerName:  stringField(body, "player"),
		LeagueName:  stringField(body, "leagueName"),
	}
	recipients, err := recipientList(body, "emails", taxiStealHandler)
	if err != nil {
		return nil, err
	}
	ownerEmail := stringField(body, "ownerEmail")

	h.logger.Info("sending taxi steal emails",
		slog.String("player", steal.PlayerName),
		slog.String("owner", steal.OwnerName),
		slog.Int("recipients", len(recipients)),
	)

	leagueHTML := h.templates.TaxiStealLeagueHTML(steal)
	leagueText := h.templates.TaxiStealLeagueText(steal)

	messages := make([]Message, 0, len(recipients))
	for _, addr := range recipients {
		if addr == ownerEmail {
			messages = append(messages, Message{
				To:       addr,
				Subject:  TaxiStealOwnerSubject(steal),
				HTMLBody: h.templates.TaxiStealOwnerHTML(steal),
				TextBody: h.templates.TaxiStealOwnerText(steal),
			})
			continue
		}
		messages = append(messages, Message{
			To:       addr,
			Subject:  TaxiStealSubject(steal),
			HTMLBody: leagueHTML,
			TextBody: leagueText,
		})
	}

	successes, failures := h.sender.SendBatch(ctx, messages)
	return batchResult(successes, failures), nil
}

// proposalFields extracts the proposal object used by every rule notification.
func proposalFields(body map[string]any, name string) (RuleProposal, error) {
	raw, ok := body["proposal"].(map[string]any)
	if !ok {
		return RuleProposal{}, apperrors.New(
			apperrors.KindValidation, "proposal must be an object", name, "proposalFields",
		)
	}

	proposal := RuleProposal{
		ProposerName: stringField(raw, "proposed_by_username"),
		RuleTitle:    stringField(raw, "title"),
		Description:  stringField(raw, "description"),
		LeagueName:   stringField(raw, "league_name"),
	}
	if proposal.ProposerName == "" {
		proposal.ProposerName = "A league member"
	}
	if proposal.RuleTitle == "" {
		proposal.RuleTitle = "Untitled Rule"
	}
	return proposal, nil
}

func recipientList(body map[string]any, field, name string) ([]string, error) {
	recipients, ok := validation.StringList(body[field])
	if !ok {
		return nil, apperrors.New(
			apperrors.KindValidation, field+" must be a list of addresses", name, "recipientList",
		)
	}
	if err := validation.EmailAddresses(recipients, name); err != nil {
		return nil, err
	}
	return recipients, nil
}

func buildMessages(recipients []string, subject, htmlBody, textBody string) []Message {
	messages := make([]Message, 0, len(recipients))
	for _, addr := range recipients {
		messages = append(messages, Message{
			To:       addr,
			Subject:  subject,
			HTMLBody: htmlBody,
			TextBody: textBody,
		})
	}
	return messages
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func batchResult(successes, failures int) map[string]any {
	return map[string]any{
		"successfulEmails": successes,
		"failedEmails":     failures,
	}
}
