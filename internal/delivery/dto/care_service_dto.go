package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CareServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}
