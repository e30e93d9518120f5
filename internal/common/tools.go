package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates a UUID with an optional prefix
func GenerateUUID(prefix string) string {
	id := uuid.New()
	if prefix != "" {
		return fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(id.String(), "-", ""))
	}
	return id.String()
}

// GenerateContractID generates a contract ID with "opt" prefix
func GenerateContractID() string {
	return GenerateUUID("opt")
}

// GenerateTradeID generates a trade ID with "trd" prefix
func GenerateTradeID() string {
	return GenerateUUID("trd")
}
