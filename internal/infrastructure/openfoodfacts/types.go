package openfoodfacts

import (
	"bytes"
	"encoding/json"
	"strings"
)

// productResponse is the body of GET /api/v0/product/{barcode}
type productResponse struct {
	Status        *int            `json:"status"`
	StatusVerbose string          `json:"status_verbose"`
	Code          string          `json:"code"`
	Product       *productPayload `json:"product"`
}

// productPayload holds the product fields used locally
type productPayload struct {
	ID                  string     `json:"_id"`
	Code                string     `json:"code"`
	ProductName         string     `json:"product_name"`
	GenericName         string     `json:"generic_name"`
	ProductQuantity     flexString `json:"product_quantity"`
	ProductQuantityUnit string     `json:"product_quantity_unit"`
}

// notFound reports whether the body describes a catalog miss.
// A missing status with a product present counts as found.
func (r *productResponse) notFound() bool {
	if r.Product == nil {
		return true
	}
	return r.Status != nil && *r.Status == 0
}

// flexString decodes a JSON string or number into its textual form.
// OpenFoodFacts serves product_quantity as either.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
