package template

import (
	"fmt"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

func subjectEnglish(event entity.EventType, role value.Role) string {
	switch event {
	case entity.EventDealConfirmed:
		if role == value.RoleFarmer {
			return "Deal Confirmed - Buyer is Ready to Proceed"
		}
		return "Deal Confirmed - Farmer Accepted Your Request"
	case entity.EventDealCompleted:
		return "Deal Completed - Transaction Successful"
	default:
		return "Farm To Table - Deal Update"
	}
}

const englishFooter = `---
This is an automated transactional message. Please do not reply to this email.
Farm To Table - Connecting Farmers Directly to Buyers`

func plainTextEnglish(event entity.EventType, data Data) string {
	switch event {
	case entity.EventDealConfirmed:
		if data.RecipientRole == value.RoleFarmer {
			return fmt.Sprintf(`Hello %s,

Great news! Your deal has been confirmed.

Product: %s
Buyer: %s
Deal ID: %s

Both you and the buyer have confirmed this deal. You can now proceed with the transaction using the contact details provided on the platform.

Please log in to Farm To Table to view full deal details and coordinate delivery.

Thank you for using Farm To Table!

%s`, data.RecipientName, data.ProductName, data.OtherPartyName, data.DealID, englishFooter)
		}

		return fmt.Sprintf(`Hello %s,

Great news! Your deal has been confirmed.

Product: %s
Farmer: %s
Deal ID: %s

Both you and the farmer have confirmed this deal. You can now proceed with payment and coordinate delivery using the contact details on the platform.

Please log in to Farm To Table to view payment information and delivery details.

Thank you for using Farm To Table!

%s`, data.RecipientName, data.ProductName, data.OtherPartyName, data.DealID, englishFooter)

	case entity.EventDealCompleted:
		return fmt.Sprintf(`Hello %s,

Your deal has been marked as completed.

Product: %s
Deal ID: %s

Thank you for using Farm To Table. We hope this transaction was successful.

You can leave feedback for this deal by visiting your dashboard.

Thank you for being part of our community!

%s`, data.RecipientName, data.ProductName, data.DealID, englishFooter)

	default:
		return fmt.Sprintf(`Hello %s,

There has been an update to your deal (ID: %s).

Please log in to Farm To Table to view details.

Thank you!

---
Farm To Table - Connecting Farmers Directly to Buyers`, data.RecipientName, data.DealID)
	}
}

func htmlEnglish(event entity.EventType, data Data) string {
	greeting := fmt.Sprintf("Hello %s,", data.RecipientName)
	footer := `<p>This is an automated transactional message. Please do not reply to this email.</p>
      <p>Farm To Table - Connecting Farmers Directly to Buyers</p>`

	switch event {
	case entity.EventDealConfirmed:
		otherPartyLabel := "Farmer"
		action := "You can now proceed with payment and coordinate delivery with the farmer."
		if data.RecipientRole == value.RoleFarmer {
			otherPartyLabel = "Buyer"
			action = "You can now coordinate with the buyer for payment and delivery arrangements."
		}

		content := fmt.Sprintf(`<p><strong>Great news!</strong> Your deal has been confirmed by both parties.</p>
      <div class="detail">
        <p><strong>Product:</strong> %s</p>
        <p><strong>%s:</strong> %s</p>
        <p><strong>Deal ID:</strong> %s</p>
      </div>
      <p>%s</p>`, data.ProductName, otherPartyLabel, data.OtherPartyName, data.DealID, action)

		return htmlPage("Deal Confirmed!", greeting, content, "View Deal Details", footer)

	case entity.EventDealCompleted:
		content := fmt.Sprintf(`<p>Your deal has been marked as completed.</p>
      <div class="detail">
        <p><strong>Product:</strong> %s</p>
        <p><strong>Deal ID:</strong> %s</p>
      </div>
      <p>Thank you for using Farm To Table. We hope this transaction was successful!</p>`,
			data.ProductName, data.DealID)

		return htmlPage("Deal Completed", greeting, content, "Leave Feedback", footer)

	default:
		content := fmt.Sprintf(`<p>There has been an update to your deal (ID: %s).</p>
      <p>Please log in to view details.</p>`, data.DealID)

		return htmlPage("Deal Update", greeting, content, "View Details",
			"<p>Farm To Table - Connecting Farmers Directly to Buyers</p>")
	}
}
