package types

import "github.com/go-playground/validator/v10"

// validate backs the Validate methods in this package. A single instance
// caches parsed struct tags between calls and is safe for concurrent use.
var validate = validator.New()
