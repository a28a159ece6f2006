package email

import "fmt"

// TaxiSteal carries the fields for the taxi-squad steal notifications: one
// variant addressed to the whole league, one to the owner losing the player.
type TaxiSteal struct {
	StealerName string
	OwnerName   string
	PlayerName  string
	LeagueName  string
}

type taxiStealData struct {
	htmlData
	StealerName string
	OwnerName   string
	PlayerName  string
}

// TaxiStealSubject builds the league-wide subject line.
func TaxiStealSubject(s TaxiSteal) string {
	return fmt.Sprintf("Taxi Squad Steal: %s", s.PlayerName)
}

// TaxiStealOwnerSubject builds the subject line for the owner losing the player.
func TaxiStealOwnerSubject(s TaxiSteal) string {
	return fmt.Sprintf("Your taxi squad is under attack: %s", s.PlayerName)
}

// TaxiStealLeagueHTML renders the league-wide notification.
func (t *Templates) TaxiStealLeagueHTML(s TaxiSteal) string {
	return t.render("taxi_league", t.taxiStealData(s))
}

// TaxiStealOwnerHTML renders the notification for the owner losing the player.
func (t *Templates) TaxiStealOwnerHTML(s TaxiSteal) string {
	return t.render("taxi_owner", t.taxiStealData(s))
}

// TaxiStealLeagueText renders the plain-text league-wide notification.
func (t *Templates) TaxiStealLeagueText(s TaxiSteal) string {
	return t.renderText("taxi_league_text", t.taxiStealData(s))
}

// TaxiStealOwnerText renders the plain-text owner notification.
func (t *Templates) TaxiStealOwnerText(s TaxiSteal) string {
	return t.renderText("taxi_owner_text", t.taxiStealData(s))
}

func (t *Templates) taxiStealData(s TaxiSteal) taxiStealData {
	return taxiStealData{
		htmlData:    t.chromeData(s.LeagueName),
		StealerName: s.StealerName,
		OwnerName:   s.OwnerName,
		PlayerName:  s.PlayerName,
	}
}

const taxiStealHTMLTpl = `
{{define "taxi_headline"}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 0 24px 12px; font-family: {{.FontBody}}; font-size: 20px;
                        font-weight: 700; color: {{.TextPrimary}}; line-height: 1.3;">
                <span style="color: {{.ChampionGold}};">{{.StealerName}}</span> is stealing
                <span style="color: {{.AccentRed}};">{{.PlayerName}}</span> from {{.OwnerName}}'s taxi squad
            </td>
        </tr>
    </table>{{end}}

{{define "taxi_league"}}{{template "top" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 8px 24px 16px; font-family: {{.FontDisplay}};
                        font-size: 28px; letter-spacing: 2px; color: {{.ChampionGold}};">Taxi Squad Steal</td>
        </tr>
    </table>
{{template "league_badge" .}}
{{template "taxi_headline" .}}
    <table role="presentation" cellpadding="0" cellspacing="0" border="0" align="center" style="margin: 0 auto;">
        <tr>
            <td style="border-radius: 8px; background-color: {{.ChampionGold}};" align="center">
                <a href="{{.SiteURL}}" target="_blank"
                   style="display: inline-block; padding: 14px 32px; color: {{.DeepNavy}};
                          text-decoration: none; font-weight: 700; font-size: 15px;
                          font-family: {{.FontBody}};">Watch It Unfold</a>
            </td>
        </tr>
    </table>
{{template "bottom" .}}{{end}}

{{define "taxi_owner"}}{{template "top" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 8px 24px 16px; font-family: {{.FontDisplay}};
                        font-size: 28px; letter-spacing: 2px; color: {{.ChampionGold}};">Taxi Squad Alert</td>
        </tr>
    </table>
{{template "league_badge" .}}
{{template "taxi_headline" .}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td style="padding: 0 24px 20px;">
                <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"
                       style="background-color: {{.DarkNavy}}; border-radius: 12px;">
                    <tr>
                        <td style="padding: 20px; font-family: {{.FontBody}}; font-size: 14px;
                                    color: {{.TextSecondary}}; line-height: 1.6;">You have until the steal window closes to protect your player.</td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
    <table role="presentation" cellpadding="0" cellspacing="0" border="0" align="center" style="margin: 0 auto;">
        <tr>
            <td style="border-radius: 8px; background-color: {{.AccentRed}};" align="center">
                <a href="{{.SiteURL}}" target="_blank"
                   style="display: inline-block; padding: 14px 32px; color: {{.TextPrimary}};
                          text-decoration: none; font-weight: 700; font-size: 15px;
                          font-family: {{.FontBody}};">Protect Your Player</a>
            </td>
        </tr>
    </table>
{{template "bottom" .}}{{end}}`

const taxiStealTextTpl = `
{{define "taxi_league_text"}}Taxi Squad Steal

{{.StealerName}} is stealing {{.PlayerName}} from {{.OwnerName}}'s taxi squad in {{.LeagueName}}.

Watch it unfold: {{.SiteURL}}
{{template "text_footer" .}}{{end}}

{{define "taxi_owner_text"}}Taxi Squad Alert

{{.StealerName}} is stealing {{.PlayerName}} from your taxi squad in {{.LeagueName}}. You have until the steal window closes to protect your player.

Protect your player: {{.SiteURL}}
{{template "text_footer" .}}{{end}}`
