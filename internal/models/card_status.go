package models

import "fmt"

// CardStatus is the state of the card inserted for a session
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
	CardStatusExpired CardStatus = "EXPIRED"
)

// IsUsable reports whether the card may authenticate and transact
func (s CardStatus) IsUsable() bool {
	return s == CardStatusActive
}

// ParseCardStatus accepts the upper-case status names
func ParseCardStatus(s string) (CardStatus, error) {
	switch status := CardStatus(s); status {
	case CardStatusActive, CardStatusBlocked, CardStatusExpired:
		return status, nil
	default:
		return "", fmt.Errorf("invalid card status: %s", s)
	}
}
