package entity

import "time"

// Message satu pertukaran chat AI yang tercatat
type Message struct {
	ID        string
	ChatID    int64
	Username  string
	Text      string
	Response  string
	Timestamp time.Time
}
