package offer

// Source is implemented via a get method that generates an array of offers.
// The aggregator does not care whether a source parses embedded state or
// scrapes markup heuristically.
type Source interface {
	GetName() string
	Get(productionFlag bool) ([]Offer, error)
}
