package tickets

import (
	"strings"

	"tickets-app/config"
)

const fallbackPrefix = "HALLOWEEN2025"

func codePrefix() string {
	if config.TICKET_CODE_PREFIX != "" {
		return config.TICKET_CODE_PREFIX
	}
	return fallbackPrefix
}

// CodeFor derives the scannable value for a purchase. It is deterministic on
// purpose: the emailed QR and the door scanner never need a shared secret.
func CodeFor(purchaseID string) string {
	return codePrefix() + "-" + purchaseID
}

// PurchaseIDFromCode strips the event prefix from a scanned value. Raw ids are
// accepted too, for manual entry at the door.
func PurchaseIDFromCode(code string) string {
	return strings.TrimPrefix(strings.TrimSpace(code), codePrefix()+"-")
}
