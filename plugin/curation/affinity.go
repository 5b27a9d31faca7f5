package curation

// Static affinity data used by the rule-based fallback path. Pure
// lookup tables, no behavior.

// styleCategoryAffinity maps a style to the furniture categories most
// commonly associated with it. Order matters: the fallback selector
// walks target categories in declaration order.
var styleCategoryAffinity = map[StyleTag][]ProductCategory{
	StyleModern: {
		CategorySofa, CategoryCoffeeTable, CategoryTVUnit,
		CategoryFloorLamp, CategoryRug, CategoryWallArt,
	},
	StyleMinimalist: {
		CategorySofa, CategoryCoffeeTable, CategoryBookshelf,
		CategoryFloorLamp, CategoryDesk,
	},
	StyleScandinavian: {
		CategorySofa, CategoryArmchair, CategoryCoffeeTable,
		CategoryRug, CategoryBookshelf, CategoryTableLamp,
	},
	StyleIndustrial: {
		CategorySofa, CategoryCoffeeTable, CategoryBookshelf,
		CategoryFloorLamp, CategoryDesk, CategoryMirror,
	},
	StyleBohemian: {
		CategoryArmchair, CategoryRug, CategoryWallArt,
		CategoryCurtains, CategoryDecor, CategoryTableLamp,
	},
	StyleTraditional: {
		CategorySofa, CategoryArmchair, CategoryDiningTable,
		CategoryDiningChair, CategorySideboard, CategoryCurtains,
	},
	StyleContemporary: {
		CategorySofa, CategoryCoffeeTable, CategoryTVUnit,
		CategoryCeilingLight, CategoryMirror,
	},
	StyleRustic: {
		CategoryDiningTable, CategoryDiningChair, CategorySideboard,
		CategoryBookshelf, CategoryDecor,
	},
	StyleCoastal: {
		CategorySofa, CategoryArmchair, CategoryRug,
		CategoryCurtains, CategoryWallArt,
	},
	StyleLuxury: {
		CategorySofa, CategoryBed, CategoryMirror,
		CategoryCeilingLight, CategoryRug, CategoryWallArt,
	},
}

// styleMaterialAffinity maps a style to material keywords. Matching is
// case-insensitive substring matching against product material tags.
var styleMaterialAffinity = map[StyleTag][]string{
	StyleModern:       {"leather", "glass", "metal", "chrome"},
	StyleMinimalist:   {"oak", "ash", "linen", "steel"},
	StyleScandinavian: {"pine", "birch", "wool", "cotton"},
	StyleIndustrial:   {"iron", "steel", "reclaimed wood", "concrete"},
	StyleBohemian:     {"rattan", "jute", "macrame", "velvet"},
	StyleTraditional:  {"mahogany", "walnut", "brass", "silk"},
	StyleContemporary: {"glass", "lacquer", "chrome", "marble"},
	StyleRustic:       {"oak", "reclaimed wood", "wrought iron", "stone"},
	StyleCoastal:      {"rattan", "linen", "driftwood", "cotton"},
	StyleLuxury:       {"marble", "velvet", "brass", "gold"},
}

// roomTypeCategories maps a room type to the categories a furnished
// room of that type is expected to contain.
var roomTypeCategories = map[RoomType][]ProductCategory{
	RoomLivingRoom: {
		CategorySofa, CategoryCoffeeTable, CategoryTVUnit,
		CategoryRug, CategoryFloorLamp, CategorySideTable,
	},
	RoomBedroom: {
		CategoryBed, CategoryWardrobe, CategoryNightstand,
		CategoryDresser, CategoryTableLamp, CategoryRug,
	},
	RoomDiningRoom: {
		CategoryDiningTable, CategoryDiningChair, CategorySideboard,
		CategoryCeilingLight, CategoryRug,
	},
	RoomKitchen: {
		CategoryDiningTable, CategoryDiningChair, CategoryCeilingLight,
	},
	RoomOffice: {
		CategoryDesk, CategoryOfficeChair, CategoryBookshelf,
		CategoryTableLamp,
	},
	RoomKidsRoom: {
		CategoryBed, CategoryWardrobe, CategoryDesk,
		CategoryRug, CategoryDecor,
	},
	RoomOutdoor: {
		CategoryOutdoorSet, CategoryRug, CategoryDecor,
	},
}

// roomNameKeywords drives the zero-network name-based room classifier.
var roomNameKeywords = map[RoomType][]string{
	RoomLivingRoom: {"living", "lounge", "majlis", "family room", "sitting"},
	RoomBedroom:    {"bedroom", "bed room", "master", "guest room", "sleep"},
	RoomDiningRoom: {"dining", "breakfast"},
	RoomKitchen:    {"kitchen", "pantry"},
	RoomOffice:     {"office", "study", "work"},
	RoomKidsRoom:   {"kids", "child", "nursery", "play"},
	RoomOutdoor:    {"outdoor", "balcony", "terrace", "garden", "patio"},
}
