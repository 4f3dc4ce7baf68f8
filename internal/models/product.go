package models

import "time"

type Review struct {
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Timestamp time.Time `json:"timestamp"`
}

// Product mirrors the catalog document served by the commerce backend.
type Product struct {
	ID                 string   `json:"_id" validate:"required"`
	ItemName           string   `json:"itemName"`
	Price              float64  `json:"price" validate:"gte=0"`
	Category           string   `json:"category,omitempty"`
	Description        string   `json:"description,omitempty"`
	IsInStock          bool     `json:"isInStock"`
	Discount           float64  `json:"discount,omitempty"`
	MainImageURL       string   `json:"mainImageUrl,omitempty"`
	SecondaryImageURLs []string `json:"secondaryImageUrls,omitempty"`
	Reviews            []Review `json:"reviews"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}

type ProductResponse struct {
	Product Product `json:"product"`
}

// ProductDetail is the product page payload: the product with any local reviews merged in.
type ProductDetail struct {
	Product       Product `json:"product"`
	AverageRating float64 `json:"averageRating"`
	InWishlist    bool    `json:"inWishlist"`
}

type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required"`
}
