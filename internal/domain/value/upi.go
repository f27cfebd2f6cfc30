package value

import (
	"regexp"
	"strings"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

// upiPattern covers the NPCI virtual payment address format:
// username@bankhandle, e.g. farmer123@paytm or 9876543210@ybl.
var upiPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

const (
	upiMinLen      = 5
	upiMaxLen      = 50
	upiMinUserLen  = 3
	upiMinBankLen  = 2
)

// UPIID is a validated, normalized (lowercase) UPI virtual payment address.
type UPIID string

func (u UPIID) String() string {
	return string(u)
}

// ParseUPIID validates and normalizes a raw UPI ID.
func ParseUPIID(raw string) (UPIID, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return "", domain.NewError(errcodes.InvalidUpiID, "UPI ID cannot be empty")
	}

	if len(trimmed) < upiMinLen || len(trimmed) > upiMaxLen {
		return "", domain.NewError(errcodes.InvalidUpiID, "UPI ID must be between 5 and 50 characters")
	}

	if !upiPattern.MatchString(trimmed) {
		return "", domain.NewError(errcodes.InvalidUpiID, "UPI ID must be in the format username@bank")
	}

	username, bank, _ := strings.Cut(trimmed, "@")

	if len(username) < upiMinUserLen {
		return "", domain.NewError(errcodes.InvalidUpiID, "UPI username must be at least 3 characters")
	}

	if len(bank) < upiMinBankLen {
		return "", domain.NewError(errcodes.InvalidUpiID, "UPI bank handle must be at least 2 characters")
	}

	return UPIID(strings.ToLower(trimmed)), nil
}
