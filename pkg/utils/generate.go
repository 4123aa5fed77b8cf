package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING CODE ====================

const bookingCodePrefix = "wr"

// GenerateBookingCode builds the human-readable booking code shown on
// invoices: prefix + last 4 letters of the customer name (lowercased,
// padded with 'x' for short names) + 4 random digits. Display only;
// the booking row key is a UUID, so code collisions are harmless.
func GenerateBookingCode(customerName string) string {
	name := strings.ToLower(strings.TrimSpace(customerName))
	name = strings.ReplaceAll(name, " ", "")

	// Slice runes, not bytes: a multibyte customer name must not yield
	// a torn, invalid-UTF-8 fragment.
	runes := []rune(name)
	if len(runes) > 4 {
		runes = runes[len(runes)-4:]
	}
	fragment := string(runes)
	for len([]rune(fragment)) < 4 {
		fragment = "x" + fragment
	}

	return fmt.Sprintf("%s-%s%04d", bookingCodePrefix, fragment, rand.Intn(10000))
}
