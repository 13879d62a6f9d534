package welcome

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/greetmail/core/email"
)

// emailTag groups welcome sends in provider dashboards.
const emailTag = "welcome"

// nl2br escapes the text and converts newlines to <br> tags so that
// paragraph breaks from generated copy survive HTML rendering.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var welcomeTemplate = template.Must(template.New("welcome").Funcs(template.FuncMap{
	"nl2br": nl2br,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f7;padding:24px 0;">
<tr><td align="center">
<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:32px;">
<tr><td>
<h1 style="margin:0 0 16px;color:#1a1a2e;font-size:24px;">Welcome, {{.Name}}!</h1>
<p style="margin:0 0 24px;color:#3d3d4e;font-size:16px;line-height:1.6;">{{nl2br .Paragraph}}</p>
<table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#f0f4ff;border-radius:6px;">
<tr><td style="padding:16px 20px;">
<p style="margin:0;color:#3d3d4e;font-size:14px;line-height:1.6;">You're joining a growing group of {{.Industry}} professionals. Introduce yourself in the community space, browse the member directory, and keep an eye out for {{.Industry}} meetups and discussions.</p>
</td></tr>
</table>
<p style="margin:24px 0 0;color:#8a8a9a;font-size:13px;line-height:1.6;">You're receiving this email because you signed up for our community. We're glad you're here.</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>
`))

// ComposeWelcomeEmail renders the welcome email for a submission. The subject
// interpolates the member's name; the body embeds the generated paragraph with
// newlines converted to line breaks plus an industry section. All submission
// values pass through html/template escaping.
func ComposeWelcomeEmail(sub Submission, paragraph string) (email.SendEmailParams, error) {
	var body bytes.Buffer
	err := welcomeTemplate.Execute(&body, struct {
		Name      string
		Industry  string
		Paragraph string
	}{
		Name:      sub.Name,
		Industry:  sub.Industry,
		Paragraph: paragraph,
	})
	if err != nil {
		return email.SendEmailParams{}, errors.Join(ErrComposeFailed, err)
	}

	return email.SendEmailParams{
		SendTo:   sub.Email,
		Subject:  fmt.Sprintf("Welcome to the community, %s!", sub.Name),
		BodyHTML: body.String(),
		Tag:      emailTag,
	}, nil
}
