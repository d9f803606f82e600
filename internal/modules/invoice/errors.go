package invoice

import "errors"

var ErrStayNotFound = errors.New("stay not found")
