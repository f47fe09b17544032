package repositories

// IDGenerator hands out identifiers for newly created records
type IDGenerator interface {
	NewID() string
}
