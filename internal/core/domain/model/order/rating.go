package order

import (
	"strings"

	"laundry/internal/pkg/errs"
)

const (
	MinStars = 1
	MaxStars = 5
)

// Rating is the customer's feedback on a completed order.
type Rating struct {
	stars   int
	comment string
}

func NewRating(stars int, comment string) (Rating, error) {
	if stars < MinStars || stars > MaxStars {
		return Rating{}, errs.NewValueIsOutOfRangeError("stars", stars, MinStars, MaxStars)
	}
	return Rating{stars: stars, comment: strings.TrimSpace(comment)}, nil
}

func (r Rating) Stars() int      { return r.stars }
func (r Rating) Comment() string { return r.comment }
