package value

import (
	"fmt"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
)

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleBuyer:
		return Role(s), nil
	default:
		return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown role %q", s))
	}
}
