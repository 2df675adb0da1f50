package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== TICKET CODE ====================

// GenerateTicketCode creates a short ticket code like T48213. The caller
// must check the code against existing tickets and retry on collision.
func GenerateTicketCode() string {
	return fmt.Sprintf("T%05d", 10000+rand.Intn(90000))
}
