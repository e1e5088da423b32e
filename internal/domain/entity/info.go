package entity

// Kunci info toko yang tersedia
const (
	InfoWorkingHours = "working_hours"
	InfoContact      = "contact"
)

// InfoEntry informasi toko (FAQ) berbasis kunci
type InfoEntry struct {
	Key   string
	Value string
}
