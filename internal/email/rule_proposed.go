package email

import "fmt"

// RuleProposal carries the fields interpolated into the rule-proposal
// notification sent to all league members.
type RuleProposal struct {
	ProposerName string
	RuleTitle    string
	Description  string
	LeagueName   string
	VoteURL      string
}

type ruleProposedData struct {
	htmlData
	ProposerName string
	RuleTitle    string
	Description  string
	VoteURL      string
}

// RuleProposedSubject builds the subject line for a new rule proposal.
func RuleProposedSubject(p RuleProposal) string {
	return fmt.Sprintf("New Rule Proposal: %s", p.RuleTitle)
}

// RuleProposedHTML renders the HTML body for a new rule proposal notification.
func (t *Templates) RuleProposedHTML(p RuleProposal) string {
	return t.render("rule_proposed", t.ruleProposedData(p))
}

// RuleProposedText renders the plain-text body for a new rule proposal.
func (t *Templates) RuleProposedText(p RuleProposal) string {
	return t.renderText("rule_proposed_text", t.ruleProposedData(p))
}

func (t *Templates) ruleProposedData(p RuleProposal) ruleProposedData {
	voteURL := p.VoteURL
	if voteURL == "" {
		voteURL = t.SiteURL
	}
	return ruleProposedData{
		htmlData:     t.chromeData(p.LeagueName),
		ProposerName: p.ProposerName,
		RuleTitle:    p.RuleTitle,
		Description:  p.Description,
		VoteURL:      voteURL,
	}
}

const ruleProposedHTMLTpl = `
{{define "rule_proposed"}}{{template "top" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 8px 24px 16px; font-family: {{.FontDisplay}};
                        font-size: 28px; letter-spacing: 2px; color: {{.ChampionGold}};">New Rule Proposal</td>
        </tr>
    </table>
{{template "league_badge" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 0 24px 16px;">
                <span style="display: inline-block; padding: 4px 12px; background-color: {{.SurfaceLight}};
                             border-radius: 20px; font-family: {{.FontBody}}; font-size: 12px;
                             font-weight: 600; color: {{.TextSecondary}};">
                    Proposed by <span style="color: {{.ChampionGold}};">{{.ProposerName}}</span>
                </span>
            </td>
        </tr>
    </table>
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 0 24px 12px; font-family: {{.FontBody}}; font-size: 20px;
                        font-weight: 700; color: {{.TextPrimary}}; line-height: 1.3;">{{.RuleTitle}}</td>
        </tr>
    </table>
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td style="padding: 0 24px 20px;">
                <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"
                       style="background-color: {{.DarkNavy}}; border-radius: 12px;">
                    <tr>
                        <td style="padding: 20px; font-family: {{.FontBody}}; font-size: 14px;
                                    color: {{.TextSecondary}}; line-height: 1.6;">{{.Description}}</td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
    <table role="presentation" cellpadding="0" cellspacing="0" border="0" align="center" style="margin: 0 auto;">
        <tr>
            <td style="border-radius: 8px; background-color: {{.ChampionGold}};" align="center">
                <a href="{{.VoteURL}}" target="_blank"
                   style="display: inline-block; padding: 14px 32px; color: {{.DeepNavy}};
                          text-decoration: none; font-weight: 700; font-size: 15px;
                          font-family: {{.FontBody}};">Cast Your Vote</a>
            </td>
        </tr>
    </table>
{{template "bottom" .}}{{end}}`

const ruleProposedTextTpl = `
{{define "rule_proposed_text"}}New Rule Proposal

{{.ProposerName}} proposed a new rule in {{.LeagueName}}:

{{.RuleTitle}}
{{.Description}}

Cast your vote: {{.VoteURL}}
{{template "text_footer" .}}{{end}}`
