package model

const (
	EntityName = "room"
)

// Room is a fixed catalog entry for a bookable room category. The catalog is
// defined at build time and never persisted; bookings copy the name and price
// at creation time instead of referencing the catalog.
type Room struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
}

func Catalog() []Room {
	return []Room{
		{ID: 1, Name: "Standard Room", Image: "assets/room1.jpg", Price: "$100/night"},
		{ID: 2, Name: "Deluxe Room", Image: "assets/room2.jpg", Price: "$150/night"},
		{ID: 3, Name: "Suite", Image: "assets/room3.jpg", Price: "$200/night"},
	}
}
