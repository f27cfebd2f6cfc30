package template

import (
	"fmt"

	"github.com/sanjanb/k-tech-nain/internal/domain/entity"
	"github.com/sanjanb/k-tech-nain/internal/domain/value"
)

// Kannada (ಕನ್ನಡ) renditions of every event template. Keep full parity with
// the English locale: every event type must render here as well.

func subjectKannada(event entity.EventType, role value.Role) string {
	switch event {
	case entity.EventDealConfirmed:
		if role == value.RoleFarmer {
			return "ಒಪ್ಪಂದ ದೃಢೀಕರಿಸಲಾಗಿದೆ - ಖರೀದಿದಾರ ಮುಂದುವರಿಯಲು ಸಿದ್ಧರಾಗಿದ್ದಾರೆ"
		}
		return "ಒಪ್ಪಂದ ದೃಢೀಕರಿಸಲಾಗಿದೆ - ರೈತ ನಿಮ್ಮ ವಿನಂತಿಯನ್ನು ಸ್ವೀಕರಿಸಿದ್ದಾರೆ"
	case entity.EventDealCompleted:
		return "ಒಪ್ಪಂದ ಪೂರ್ಣಗೊಂಡಿದೆ - ವಹಿವಾಟು ಯಶಸ್ವಿಯಾಗಿದೆ"
	default:
		return "ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ - ಒಪ್ಪಂದ ನವೀಕರಣ"
	}
}

const kannadaFooter = `---
ಇದು ಸ್ವಯಂಚಾಲಿತ ವ್ಯವಹಾರ ಸಂದೇಶವಾಗಿದೆ. ದಯವಿಟ್ಟು ಈ ಇಮೇಲ್‌ಗೆ ಉತ್ತರಿಸಬೇಡಿ.
ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ - ರೈತರನ್ನು ನೇರವಾಗಿ ಖರೀದಿದಾರರೊಂದಿಗೆ ಸಂಪರ್ಕಿಸುವುದು`

func plainTextKannada(event entity.EventType, data Data) string {
	switch event {
	case entity.EventDealConfirmed:
		if data.RecipientRole == value.RoleFarmer {
			return fmt.Sprintf(`ನಮಸ್ಕಾರ %s,

ಅದ್ಭುತ ಸುದ್ದಿ! ನಿಮ್ಮ ಒಪ್ಪಂದವನ್ನು ದೃಢೀಕರಿಸಲಾಗಿದೆ.

ಉತ್ಪನ್ನ: %s
ಖರೀದಿದಾರ: %s
ಒಪ್ಪಂದ ಐಡಿ: %s

ನೀವು ಮತ್ತು ಖರೀದಿದಾರರು ಈ ಒಪ್ಪಂದವನ್ನು ದೃಢೀಕರಿಸಿದ್ದೀರಿ. ನೀವು ಈಗ ಪ್ಲಾಟ್‌ಫಾರ್ಮ್‌ನಲ್ಲಿ ಒದಗಿಸಲಾದ ಸಂಪರ್ಕ ವಿವರಗಳನ್ನು ಬಳಸಿಕೊಂಡು ವಹಿವಾಟಿಗೆ ಮುಂದುವರಿಯಬಹುದು.

ಸಂಪೂರ್ಣ ಒಪ್ಪಂದ ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಲು ಮತ್ತು ವಿತರಣೆಯನ್ನು ಸಂಯೋಜಿಸಲು ದಯವಿಟ್ಟು ಫಾರ್ಮ್ ಟು ಟೇಬಲ್‌ಗೆ ಲಾಗಿನ್ ಆಗಿ.

ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ ಬಳಸಿದ್ದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು!

%s`, data.RecipientName, data.ProductName, data.OtherPartyName, data.DealID, kannadaFooter)
		}

		return fmt.Sprintf(`ನಮಸ್ಕಾರ %s,

ಅದ್ಭುತ ಸುದ್ದಿ! ನಿಮ್ಮ ಒಪ್ಪಂದವನ್ನು ದೃಢೀಕರಿಸಲಾಗಿದೆ.

ಉತ್ಪನ್ನ: %s
ರೈತ: %s
ಒಪ್ಪಂದ ಐಡಿ: %s

ನೀವು ಮತ್ತು ರೈತರು ಈ ಒಪ್ಪಂದವನ್ನು ದೃಢೀಕರಿಸಿದ್ದೀರಿ. ನೀವು ಈಗ ಪಾವತಿಗೆ ಮುಂದುವರಿಯಬಹುದು ಮತ್ತು ಪ್ಲಾಟ್‌ಫಾರ್ಮ್‌ನಲ್ಲಿನ ಸಂಪರ್ಕ ವಿವರಗಳನ್ನು ಬಳಸಿಕೊಂಡು ವಿತರಣೆಯನ್ನು ಸಂಯೋಜಿಸಬಹುದು.

ಪಾವತಿ ಮಾಹಿತಿ ಮತ್ತು ವಿತರಣಾ ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಲು ದಯವಿಟ್ಟು ಫಾರ್ಮ್ ಟು ಟೇಬಲ್‌ಗೆ ಲಾಗಿನ್ ಆಗಿ.

ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ ಬಳಸಿದ್ದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು!

%s`, data.RecipientName, data.ProductName, data.OtherPartyName, data.DealID, kannadaFooter)

	case entity.EventDealCompleted:
		return fmt.Sprintf(`ನಮಸ್ಕಾರ %s,

ನಿಮ್ಮ ಒಪ್ಪಂದವನ್ನು ಪೂರ್ಣಗೊಂಡಂತೆ ಗುರುತಿಸಲಾಗಿದೆ.

ಉತ್ಪನ್ನ: %s
ಒಪ್ಪಂದ ಐಡಿ: %s

ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ ಬಳಸಿದ್ದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು. ಈ ವಹಿವಾಟು ಯಶಸ್ವಿಯಾಗಿದೆ ಎಂದು ನಾವು ಭಾವಿಸುತ್ತೇವೆ.

ನಿಮ್ಮ ಡ್ಯಾಶ್‌ಬೋರ್ಡ್ ಭೇಟಿ ನೀಡುವ ಮೂಲಕ ಈ ಒಪ್ಪಂದಕ್ಕಾಗಿ ಪ್ರತಿಕ್ರಿಯೆ ನೀಡಬಹುದು.

ನಮ್ಮ ಸಮುದಾಯದ ಭಾಗವಾಗಿರುವುದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು!

%s`, data.RecipientName, data.ProductName, data.DealID, kannadaFooter)

	default:
		return fmt.Sprintf(`ನಮಸ್ಕಾರ %s,

ನಿಮ್ಮ ಒಪ್ಪಂದಕ್ಕೆ (ಐಡಿ: %s) ನವೀಕರಣವಿದೆ.

ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಲು ದಯವಿಟ್ಟು ಫಾರ್ಮ್ ಟು ಟೇಬಲ್‌ಗೆ ಲಾಗಿನ್ ಆಗಿ.

ಧನ್ಯವಾದಗಳು!

---
ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ - ರೈತರನ್ನು ನೇರವಾಗಿ ಖರೀದಿದಾರರೊಂದಿಗೆ ಸಂಪರ್ಕಿಸುವುದು`, data.RecipientName, data.DealID)
	}
}

func htmlKannada(event entity.EventType, data Data) string {
	greeting := fmt.Sprintf("ನಮಸ್ಕಾರ %s,", data.RecipientName)
	footer := `<p>ಇದು ಸ್ವಯಂಚಾಲಿತ ವ್ಯವಹಾರ ಸಂದೇಶವಾಗಿದೆ. ದಯವಿಟ್ಟು ಈ ಇಮೇಲ್‌ಗೆ ಉತ್ತರಿಸಬೇಡಿ.</p>
      <p>ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ - ರೈತರನ್ನು ನೇರವಾಗಿ ಖರೀದಿದಾರರೊಂದಿಗೆ ಸಂಪರ್ಕಿಸುವುದು</p>`

	switch event {
	case entity.EventDealConfirmed:
		otherPartyLabel := "ರೈತ"
		action := "ನೀವು ಈಗ ಪಾವತಿಗೆ ಮುಂದುವರಿಯಬಹುದು ಮತ್ತು ರೈತರೊಂದಿಗೆ ವಿತರಣೆಯನ್ನು ಸಂಯೋಜಿಸಬಹುದು."
		if data.RecipientRole == value.RoleFarmer {
			otherPartyLabel = "ಖರೀದಿದಾರ"
			action = "ನೀವು ಈಗ ಪಾವತಿ ಮತ್ತು ವಿತರಣಾ ವ್ಯವಸ್ಥೆಗಳಿಗಾಗಿ ಖರೀದಿದಾರರೊಂದಿಗೆ ಸಂಯೋಜನೆ ಮಾಡಬಹುದು."
		}

		content := fmt.Sprintf(`<p><strong>ಅದ್ಭುತ ಸುದ್ದಿ!</strong> ನಿಮ್ಮ ಒಪ್ಪಂದವನ್ನು ಎರಡೂ ಪಕ್ಷಗಳು ದೃಢೀಕರಿಸಿದ್ದಾರೆ.</p>
      <div class="detail">
        <p><strong>ಉತ್ಪನ್ನ:</strong> %s</p>
        <p><strong>%s:</strong> %s</p>
        <p><strong>ಒಪ್ಪಂದ ಐಡಿ:</strong> %s</p>
      </div>
      <p>%s</p>`, data.ProductName, otherPartyLabel, data.OtherPartyName, data.DealID, action)

		return htmlPage("ಒಪ್ಪಂದ ದೃಢೀಕರಿಸಲಾಗಿದೆ!", greeting, content, "ಒಪ್ಪಂದ ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಿ", footer)

	case entity.EventDealCompleted:
		content := fmt.Sprintf(`<p>ನಿಮ್ಮ ಒಪ್ಪಂದವನ್ನು ಪೂರ್ಣಗೊಂಡಂತೆ ಗುರುತಿಸಲಾಗಿದೆ.</p>
      <div class="detail">
        <p><strong>ಉತ್ಪನ್ನ:</strong> %s</p>
        <p><strong>ಒಪ್ಪಂದ ಐಡಿ:</strong> %s</p>
      </div>
      <p>ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ ಬಳಸಿದ್ದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು. ಈ ವಹಿವಾಟು ಯಶಸ್ವಿಯಾಗಿದೆ ಎಂದು ನಾವು ಭಾವಿಸುತ್ತೇವೆ!</p>`,
			data.ProductName, data.DealID)

		return htmlPage("ಒಪ್ಪಂದ ಪೂರ್ಣಗೊಂಡಿದೆ", greeting, content, "ಪ್ರತಿಕ್ರಿಯೆ ನೀಡಿ", footer)

	default:
		content := fmt.Sprintf(`<p>ನಿಮ್ಮ ಒಪ್ಪಂದಕ್ಕೆ (ಐಡಿ: %s) ನವೀಕರಣವಿದೆ.</p>
      <p>ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಲು ದಯವಿಟ್ಟು ಲಾಗಿನ್ ಆಗಿ.</p>`, data.DealID)

		return htmlPage("ಒಪ್ಪಂದ ನವೀಕರಣ", greeting, content, "ವಿವರಗಳನ್ನು ವೀಕ್ಷಿಸಿ",
			"<p>ಫಾರ್ಮ್ ಟು ಟೇಬಲ್ - ರೈತರನ್ನು ನೇರವಾಗಿ ಖರೀದಿದಾರರೊಂದಿಗೆ ಸಂಪರ್ಕಿಸುವುದು</p>")
	}
}
