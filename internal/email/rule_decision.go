package email

import (
	"fmt"
	"html/template"
)

// RuleDecision carries the fields for the accepted/denied outcome notification
// sent once voting on a proposal closes.
type RuleDecision struct {
	RuleTitle    string
	LeagueName   string
	Accepted     bool
	VotesFor     int
	VotesAgainst int
}

type ruleDecisionData struct {
	htmlData
	Heading      string
	Outcome      string
	RuleTitle    string
	BadgeColor   template.CSS
	VotesFor     int
	VotesAgainst int
}

// RuleDecisionSubject builds the subject line for a rule decision.
func RuleDecisionSubject(d RuleDecision) string {
	if d.Accepted {
		return fmt.Sprintf("Rule Accepted: %s", d.RuleTitle)
	}
	return fmt.Sprintf("Rule Denied: %s", d.RuleTitle)
}

// RuleDecisionHTML renders the HTML body for a rule decision notification.
func (t *Templates) RuleDecisionHTML(d RuleDecision) string {
	return t.render("rule_decision", t.ruleDecisionData(d))
}

// RuleDecisionText renders the plain-text body for a rule decision.
func (t *Templates) RuleDecisionText(d RuleDecision) string {
	return t.renderText("rule_decision_text", t.ruleDecisionData(d))
}

func (t *Templates) ruleDecisionData(d RuleDecision) ruleDecisionData {
	data := ruleDecisionData{
		htmlData:     t.chromeData(d.LeagueName),
		Heading:      "Rule Denied",
		Outcome:      "was denied",
		RuleTitle:    d.RuleTitle,
		BadgeColor:   accentRed,
		VotesFor:     d.VotesFor,
		VotesAgainst: d.VotesAgainst,
	}
	if d.Accepted {
		data.Heading = "Rule Accepted"
		data.Outcome = "was accepted"
		data.BadgeColor = successGreen
	}
	return data
}

const ruleDecisionHTMLTpl = `
{{define "rule_decision"}}{{template "top" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 8px 24px 16px; font-family: {{.FontDisplay}};
                        font-size: 28px; letter-spacing: 2px; color: {{.ChampionGold}};">{{.Heading}}</td>
        </tr>
    </table>
{{template "league_badge" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 0 24px 12px; font-family: {{.FontBody}}; font-size: 20px;
                        font-weight: 700; color: {{.TextPrimary}}; line-height: 1.3;">{{.RuleTitle}}</td>
        </tr>
        <tr>
            <td align="center" style="padding: 0 24px 16px;">
                <span style="display: inline-block; padding: 4px 12px; background-color: {{.BadgeColor}};
                             border-radius: 20px; font-family: {{.FontBody}}; font-size: 12px;
                             font-weight: 700; color: {{.DeepNavy}};">{{.VotesFor}} for &middot; {{.VotesAgainst}} against</span>
            </td>
        </tr>
    </table>
    <table role="presentation" cellpadding="0" cellspacing="0" border="0" align="center" style="margin: 0 auto;">
        <tr>
            <td style="border-radius: 8px; background-color: {{.ChampionGold}};" align="center">
                <a href="{{.SiteURL}}" target="_blank"
                   style="display: inline-block; padding: 14px 32px; color: {{.DeepNavy}};
                          text-decoration: none; font-weight: 700; font-size: 15px;
                          font-family: {{.FontBody}};">View League Rules</a>
            </td>
        </tr>
    </table>
{{template "bottom" .}}{{end}}`

const ruleDecisionTextTpl = `
{{define "rule_decision_text"}}Rule Decision

The proposal "{{.RuleTitle}}" in {{.LeagueName}} {{.Outcome}} ({{.VotesFor}} for, {{.VotesAgainst}} against).

View league rules: {{.SiteURL}}
{{template "text_footer" .}}{{end}}`
