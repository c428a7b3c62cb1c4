package code

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a 6-character uppercase referral code: the first 6 chars of a
// random UUID, upper-cased. Generated once at creation; edits keep the code.
func New() string {
	return strings.ToUpper(uuid.NewString()[:6])
}
