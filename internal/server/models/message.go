package models

import "time"

// Message is a directed text message enriched with both participants'
// profiles. ReadAt stays nil until the recipient marks it read and is never
// changed after that.
type Message struct {
	ID       int64
	FromUser UserSummary
	ToUser   UserSummary
	Body     string
	SentAt   time.Time
	ReadAt   *time.Time
}

// NewMessage is the row returned right after a message is stored.
type NewMessage struct {
	ID           int64
	FromUsername string
	ToUsername   string
	Body         string
	SentAt       time.Time
}

// ReadReceipt is the result of marking a message read.
type ReadReceipt struct {
	ID     int64
	ReadAt time.Time
}
