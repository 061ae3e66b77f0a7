package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the order can be invoiced. It never calls anything external.
func (o *Order) Validate() error {
	if o == nil || strings.TrimSpace(o.ID) == "" {
		return ErrMissingOrderID
	}

	if len(o.Items) == 0 {
		return ErrNoItems
	}

	for i, item := range o.Items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("%w: item %d (%s): %s", ErrInvalidItem, i, item.Name, err)
		}
	}

	return nil
}
