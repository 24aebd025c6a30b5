package offer

// TestSource is a fully working Source object for testing
type TestSource struct {
	Name   string
	Offers []Offer
	Err    error
}

// NewTestSource returns a realistic source object for testing
func NewTestSource(name string) TestSource {
	return TestSource{
		Name: name,
		Offers: []Offer{
			{
				Name:            "Notebook Lenovo IdeaPad 3 15.6 8GB 256GB",
				Link:            "https://www.mercadolibre.com.ar/notebook-lenovo/p/MLA18955740",
				Image:           "https://http2.mlstatic.com/D_889617-MLA-O.jpg",
				Price:           849999,
				DiscountPercent: 35,
				ProductID:       "MLA18955740",
			},
			{
				Name:            "Auriculares Inalámbricos JBL Tune 510BT",
				Link:            "https://www.mercadolibre.com.ar/auriculares-jbl/p/MLA15240560",
				Image:           "https://http2.mlstatic.com/D_712398-MLA-O.jpg",
				Price:           74999,
				DiscountPercent: 25,
				ProductID:       "MLA15240560",
			},
		},
	}
}

// GetName identifies the test source
func (t TestSource) GetName() string {
	return t.Name
}

// Get returns the canned offers; implements Source
func (t TestSource) Get(productionFlag bool) ([]Offer, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	return t.Offers, nil
}
