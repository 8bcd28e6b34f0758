package models

// Item is a product entry belonging to exactly one wishlist. product_id
// points at an external catalog and is not modeled here.
type Item struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	WishlistID  int64  `gorm:"column:wishlist_id;not null;index:items_wishlist_id_idx"`
	ProductID   int64  `gorm:"column:product_id;not null"`
	Name        string `gorm:"column:name;size:63;not null;index:items_name_idx"`
	Description string `gorm:"column:description;size:100"`

	Wishlist *Wishlist `gorm:"foreignKey:WishlistID"`
}

func (Item) TableName() string {
	return "items"
}
