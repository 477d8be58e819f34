package services

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/farellandr/ticketservice/internal/models"
)

// ParseAccountID decodes an account id from raw JSON. Only integer literals are
// accepted; strings, fractions, booleans and null are rejected with the same
// error as a non-positive id.
func ParseAccountID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return 0, models.NewInvalidPurchaseError(models.RuleAccountID)
	}

	accountID, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, models.NewInvalidPurchaseError(models.RuleAccountID)
	}

	if err := ValidateAccountID(accountID); err != nil {
		return 0, err
	}
	return accountID, nil
}
