package models

// Wishlist is a named collection of products owned by a customer. The
// customer itself lives in an external system, so customer_id carries no
// referential constraint.
type Wishlist struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID int64  `gorm:"column:customer_id;not null;index:wishlists_customer_id_idx"`
	Name       string `gorm:"column:wishlist_name;size:40"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
