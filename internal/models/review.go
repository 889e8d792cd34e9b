package models

import "time"

// Review is a client testimonial resolved for one locale.
type Review struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
}

// Stars returns a slice of length Rating clamped to 1..5, for ranging over
// in templates.
func (r Review) Stars() []struct{} {
	n := r.Rating
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return make([]struct{}, n)
}
