package domain

import "github.com/google/uuid"

// Category groups packing items for display. The set is closed; templates
// only ever use the constants below. Categories are still compared by exact
// string equality, so items restored from storage keep whatever label they
// were saved with.
type Category string

const (
	CategoryAccessories     Category = "Accessories"
	CategoryBeachGear       Category = "Beach Gear"
	CategoryCampingGear     Category = "Camping Gear"
	CategoryClothing        Category = "Clothing"
	CategoryDocuments       Category = "Documents"
	CategoryElectronics     Category = "Electronics"
	CategoryEquipment       Category = "Equipment"
	CategoryFoodDrinks      Category = "Food & Drinks"
	CategoryFootwear        Category = "Footwear"
	CategoryHealthSafety    Category = "Health & Safety"
	CategoryPersonalCare    Category = "Personal Care"
	CategoryPhotographyGear Category = "Photography Gear"
	CategorySafetyGear      Category = "Safety Gear"
	CategorySportsGear      Category = "Sports Gear"
)

// ItemTemplate is a recommended item, independent of any particular trip.
type ItemTemplate struct {
	Name     string
	Category Category
}

// PackingItem is one line of a packing list.
// ID is unique within its list; nothing else is promised about it.
type PackingItem struct {
	ID       uuid.UUID
	Name     string
	Category Category
	Quantity int
	Packed   bool
}
