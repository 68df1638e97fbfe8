package entity

// CartEntry holds a product snapshot taken when the product was first added.
// Later changes to the product are not reflected here.
type CartEntry struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

func (e CartEntry) Subtotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}

func (e CartEntry) Clone() CartEntry {
	cp := e
	cp.Product = e.Product.Clone()
	return cp
}
