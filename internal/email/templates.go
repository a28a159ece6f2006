package email

import (
	"html/template"
	"strings"
	texttemplate "text/template"
)

// Branding palette shared by all templates. The values are typed template.CSS
// so the HTML engine interpolates them into style attributes verbatim.
const (
	deepNavy      template.CSS = "#050a08"
	darkNavy      template.CSS = "#0c1612"
	surfaceLight  template.CSS = "#1a2e26"
	championGold  template.CSS = "#00ffab"
	accentRed     template.CSS = "#ff4757"
	successGreen  template.CSS = "#00e676"
	textPrimary   template.CSS = "#f0f5f0"
	textSecondary template.CSS = "#8fadA0"
	textMuted     template.CSS = "#4a6b5c"

	fontBody    template.CSS = "'Plus Jakarta Sans', -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif"
	fontDisplay template.CSS = "'Bebas Neue', Impact, 'Arial Black', sans-serif"
)

// chrome carries the branding every template interpolates: the link targets
// and the palette.
type chrome struct {
	SiteURL   string
	LogoURL   string
	BannerURL string

	DeepNavy      template.CSS
	DarkNavy      template.CSS
	SurfaceLight  template.CSS
	ChampionGold  template.CSS
	AccentRed     template.CSS
	SuccessGreen  template.CSS
	TextPrimary   template.CSS
	TextSecondary template.CSS
	TextMuted     template.CSS
	FontBody      template.CSS
	FontDisplay   template.CSS
}

// htmlData is the base payload for every email body.
type htmlData struct {
	chrome
	LeagueName string
}

// Templates renders the transactional email bodies. HTML bodies go through
// html/template, so user-provided strings are escaped by the engine; plain-text
// twins go through text/template. All HTML is table-based with inline CSS for
// email client compatibility.
type Templates struct {
	// SiteURL is the public product URL linked from every email.
	SiteURL string

	html *template.Template
	text *texttemplate.Template
}

// NewTemplates parses the template set for the given site.
func NewTemplates(siteURL string) *Templates {
	htmlTpl := template.New("email")
	for _, src := range []string{htmlChromeTpl, ruleProposedHTMLTpl, ruleDecisionHTMLTpl, taxiStealHTMLTpl} {
		htmlTpl = template.Must(htmlTpl.Parse(src))
	}

	textTpl := texttemplate.New("email")
	for _, src := range []string{textChromeTpl, ruleProposedTextTpl, ruleDecisionTextTpl, taxiStealTextTpl} {
		textTpl = texttemplate.Must(textTpl.Parse(src))
	}

	return &Templates{SiteURL: siteURL, html: htmlTpl, text: textTpl}
}

// chromeData builds the base payload for one email body.
func (t *Templates) chromeData(leagueName string) htmlData {
	return htmlData{
		chrome: chrome{
			SiteURL:       t.SiteURL,
			LogoURL:       t.SiteURL + "/assets/img/xomper-logo.jpg",
			BannerURL:     t.SiteURL + "/assets/img/xomper-banner.jpg",
			DeepNavy:      deepNavy,
			DarkNavy:      darkNavy,
			SurfaceLight:  surfaceLight,
			ChampionGold:  championGold,
			AccentRed:     accentRed,
			SuccessGreen:  successGreen,
			TextPrimary:   textPrimary,
			TextSecondary: textSecondary,
			TextMuted:     textMuted,
			FontBody:      fontBody,
			FontDisplay:   fontDisplay,
		},
		LeagueName: leagueName,
	}
}

func (t *Templates) render(name string, data any) string {
	var b strings.Builder
	_ = t.html.ExecuteTemplate(&b, name, data)
	return b.String()
}

func (t *Templates) renderText(name string, data any) string {
	var b strings.Builder
	_ = t.text.ExecuteTemplate(&b, name, data)
	return b.String()
}

// htmlChromeTpl holds the document shell shared by every HTML body: "top" opens
// the document and renders the banner header, "league_badge" renders the
// league-name pill, "bottom" renders the footer and closes the document.
const htmlChromeTpl = `
{{define "top"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin: 0; padding: 0; background-color: {{.DeepNavy}};">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: {{.DeepNavy}};">
        <tr>
            <td align="center" style="padding: 0 12px;">
                <table role="presentation" width="600" cellpadding="0" cellspacing="0" border="0" style="max-width: 600px; width: 100%;">
                    <tr><td>
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 24px 0 16px;">
                <a href="{{.SiteURL}}" target="_blank" style="text-decoration: none;">
                    <img src="{{.BannerURL}}" alt="Xomper" width="240" style="display: block; max-width: 240px; height: auto; border: 0;" />
                </a>
            </td>
        </tr>
    </table>{{end}}

{{define "league_badge"}}{{if .LeagueName}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="padding: 0 24px 16px;">
                <span style="display: inline-block; padding: 4px 12px; background-color: {{.SurfaceLight}};
                             border-radius: 20px; font-family: {{.FontBody}}; font-size: 12px;
                             font-weight: 600; color: {{.TextSecondary}};">{{.LeagueName}}</span>
            </td>
        </tr>
    </table>{{end}}{{end}}

{{define "bottom"}}
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td style="border-top: 1px solid {{.SurfaceLight}}; padding: 20px 0 8px;" align="center">
                <img src="{{.LogoURL}}" alt="Xomper" width="36" style="display: block; width: 36px; height: 36px; border-radius: 8px; border: 0;" />
            </td>
        </tr>
        <tr>
            <td align="center" style="padding: 8px 0; font-family: {{.FontBody}}; font-size: 12px; color: {{.TextMuted}};">
                <a href="{{.SiteURL}}" style="color: {{.TextMuted}}; text-decoration: none;">xomper.com</a>
                &nbsp;&middot;&nbsp; Fantasy Football
            </td>
        </tr>
        <tr>
            <td align="center" style="padding: 0 0 24px; font-family: {{.FontBody}}; font-size: 11px; color: {{.TextMuted}};">
                You received this email because you are a member of a Xomper league.
            </td>
        </tr>
    </table>
                    </td></tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>{{end}}`

// textChromeTpl is the plain-text twin of the HTML chrome.
const textChromeTpl = `
{{define "text_footer"}}
--
Xomper - Fantasy Football
{{.SiteURL}}
You received this email because you are a member of a Xomper league.
{{end}}`
