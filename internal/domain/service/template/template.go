// Package template renders notification subjects and bodies for deal
// lifecycle events. Rendering is pure: no I/O, no lookups, deterministic
// output for a given (event, language, data) triple.
package template

import (
	"fmt"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

const platformURL = "https://farmtotable.app"

// Data carries everything a template may reference. The shape is shared by
// all event types and both roles.
type Data struct {
	RecipientName  string
	RecipientRole  value.Role
	ProductName    string
	DealID         string
	OtherPartyName string
}

// Message is a rendered notification ready for a delivery channel.
type Message struct {
	Subject   string
	PlainText string
	HTML      string
}

// Render produces the message for an event in the requested language.
// Unknown language codes fall back to the default locale; unknown event
// types render a generic "deal update" message. Render never fails.
func Render(event entity.EventType, lang value.Language, data Data) Message {
	if !lang.Valid() {
		lang = value.DefaultLanguage
	}

	if lang == value.LanguageKannada {
		return Message{
			Subject:   subjectKannada(event, data.RecipientRole),
			PlainText: plainTextKannada(event, data),
			HTML:      htmlKannada(event, data),
		}
	}

	return Message{
		Subject:   subjectEnglish(event, data.RecipientRole),
		PlainText: plainTextEnglish(event, data),
		HTML:      htmlEnglish(event, data),
	}
}

const baseStyles = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #10B981; color: white; padding: 20px; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 5px; margin: 20px 0; }
    .detail { background: white; padding: 15px; margin: 15px 0; border-left: 4px solid #10B981; }
    .footer { text-align: center; color: #666; font-size: 12px; margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; }
    .button { display: inline-block; background: #10B981; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin: 20px 0; }
`

// htmlPage wraps rendered content in the shared email layout.
func htmlPage(heading, greeting, content, button, footer string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><style>%s</style></head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      <p>%s</p>
      %s
      <a href="%s/my-deals" class="button">%s</a>
    </div>
    <div class="footer">
      %s
    </div>
  </div>
</body>
</html>`, baseStyles, heading, greeting, content, platformURL, button, footer)
}
