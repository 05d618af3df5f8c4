// Package errors provides custom error types for store manager operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")

var ErrCreateSale = errors.New("failed to create sale")
var ErrCreateSaleItem = errors.New("failed to create sale line item")
