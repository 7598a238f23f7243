package models

type CarouselImage struct {
	ID      string `json:"_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type CarouselImageUpdate struct {
	Title   *string `json:"title,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
