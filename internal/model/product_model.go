package model

import "time"

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	OldPrice    *float64  `bson:"old_price,omitempty" json:"oldPrice,omitempty"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	Rating      float64   `bson:"rating" json:"rating"`
	IsNew       bool      `bson:"is_new" json:"isNew"`
	IsPromo     bool      `bson:"is_promo" json:"isPromo"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
