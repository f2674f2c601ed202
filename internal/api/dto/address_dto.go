package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// AddressResponse is one shipping address.
type AddressResponse struct {
	AddressID    int64  `json:"address_id"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Province     string `json:"province"`
}

// NewAddressResponses shapes a customer's address list.
func NewAddressResponses(addresses []domain.Address) []AddressResponse {
	result := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		result = append(result, AddressResponse{
			AddressID:    address.ID,
			StreetName:   address.StreetName,
			StreetNumber: address.StreetNumber,
			Country:      address.Country,
			City:         address.City,
			PostalCode:   address.PostalCode,
			Province:     address.Province,
		})
	}
	return result
}
