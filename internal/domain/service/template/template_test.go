package template_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/service/template"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

func buyerData() template.Data {
	return template.Data{
		RecipientName:  "Anand",
		RecipientRole:  value.RoleBuyer,
		ProductName:    "Tomatoes",
		DealID:         "deal-1",
		OtherPartyName: "Lakshmi",
	}
}

func farmerData() template.Data {
	return template.Data{
		RecipientName:  "Lakshmi",
		RecipientRole:  value.RoleFarmer,
		ProductName:    "Tomatoes",
		DealID:         "deal-1",
		OtherPartyName: "Anand",
	}
}

func TestRenderEnglishConfirmed(t *testing.T) {
	rq := require.New(t)

	msg := template.Render(entity.EventDealConfirmed, value.LanguageEnglish, buyerData())

	rq.Contains(msg.Subject, "Deal Confirmed")
	rq.Contains(msg.PlainText, "Anand")
	rq.Contains(msg.PlainText, "Tomatoes")
	rq.Contains(msg.PlainText, "Lakshmi")
	rq.Contains(msg.PlainText, "deal-1")
	rq.Contains(msg.HTML, "Tomatoes")
	rq.Contains(msg.HTML, "<html>")
}

func TestRenderRoleSensitivePhrasing(t *testing.T) {
	rq := require.New(t)

	buyerMsg := template.Render(entity.EventDealConfirmed, value.LanguageEnglish, buyerData())
	farmerMsg := template.Render(entity.EventDealConfirmed, value.LanguageEnglish, farmerData())

	rq.Contains(buyerMsg.Subject, "Farmer Accepted")
	rq.Contains(farmerMsg.Subject, "Buyer is Ready")
	rq.Contains(buyerMsg.PlainText, "Farmer: Lakshmi")
	rq.Contains(farmerMsg.PlainText, "Buyer: Anand")
}

func TestRenderKannada(t *testing.T) {
	rq := require.New(t)

	msg := template.Render(entity.EventDealConfirmed, value.LanguageKannada, farmerData())

	rq.Contains(msg.Subject, "ಒಪ್ಪಂದ ದೃಢೀಕರಿಸಲಾಗಿದೆ")
	rq.Contains(msg.PlainText, "Lakshmi")
	rq.Contains(msg.PlainText, "Tomatoes")
}

func TestRenderFallsBackToEnglishOnUnknownLanguage(t *testing.T) {
	rq := require.New(t)

	msg := template.Render(entity.EventDealConfirmed, value.Language("fr"), buyerData())

	rq.Contains(msg.Subject, "Deal Confirmed")
}

func TestRenderUnknownEventIsGeneric(t *testing.T) {
	rq := require.New(t)

	english := template.Render(entity.EventType("SOMETHING_NEW"), value.LanguageEnglish, buyerData())
	rq.Contains(english.Subject, "Deal Update")

	kannada := template.Render(entity.EventType("SOMETHING_NEW"), value.LanguageKannada, buyerData())
	rq.NotEmpty(kannada.Subject)
	rq.NotEqual(english.Subject, kannada.Subject)
}
