package mailing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

const welcomeSubject = "Welcome to CashPulse"

const welcomeMarkdown = `# Welcome, %s!

Thanks for joining **CashPulse**. Every month you enter a few numbers from your
books and we turn them into a plain-English report on profit, cash and what to
do next.

To get your first report:

1. Open your [dashboard](%s/dashboard).
2. Enter this month's revenue, costs, cash and what customers owe you.
3. Read your three actions and share the meeting summary with your partners.

It takes about five minutes. Reply to this email if anything is unclear.

The CashPulse team
`

// htmlShell wraps rendered markdown in a minimal layout that renders the same
// in web and desktop mail clients.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background:#f4f6f8;font-family:Helvetica,Arial,sans-serif;color:#1f2933;">
<table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
<tr><td align="center" style="padding:32px 16px;">
<table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;line-height:1.6;">
<tr><td>
%s
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

// renderWelcome returns the HTML body and the plain text alternative.
func renderWelcome(name, appURL string) (string, string, error) {
	markdown := fmt.Sprintf(welcomeMarkdown, markdownEscaper.Replace(name), appURL)

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &body); err != nil {
		return "", "", err
	}

	return fmt.Sprintf(htmlShell, welcomeSubject, body.String()), markdown, nil
}

// markdownEscaper keeps user supplied names from being read as markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`#`, `\#`,
)
