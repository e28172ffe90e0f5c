package security

import "time"

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token bound to a chain address
	CreateToken(address string, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}
