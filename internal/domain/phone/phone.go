package phone

import (
	"regexp"
	"strings"

	"github.com/killyross/barbershop-booking/internal/httperr"
)

// Portuguese subscriber numbers: nine digits, first digit nonzero,
// optionally carrying the +351 / 00351 prefix already.
var ptPattern = regexp.MustCompile(`^[1-9][0-9]{8}$`)

// Format normalizes a raw phone into the canonical +<country> form.
// Idempotent on already-normalized input. Unknown countries and
// malformed numbers yield an invalid_phone_format business error.
func Format(raw, country string) (string, error) {
	clean := strings.ReplaceAll(raw, " ", "")

	switch country {
	case "PT":
		switch {
		case strings.HasPrefix(clean, "+351"):
			clean = clean[len("+351"):]
		case strings.HasPrefix(clean, "00351"):
			clean = clean[len("00351"):]
		}
		clean = strings.TrimLeft(clean, "0")

		if !ptPattern.MatchString(clean) {
			return "", httperr.ErrBusiness(httperr.CodeInvalidPhoneFormat)
		}
		return "+351" + clean, nil

	default:
		return "", httperr.ErrBusiness(httperr.CodeInvalidPhoneFormat)
	}
}
