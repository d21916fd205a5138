package models

// Showroom represents a dealership that owns cars. The Password field is a
// login credential and must never appear in projections returned to clients.
type Showroom struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	City     string `bson:"city" json:"city"`
	Address  string `bson:"address" json:"address"`
	Phone    string `bson:"phone" json:"phone"`
	Password string `bson:"password" json:"-"`
}
