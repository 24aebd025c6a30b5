package mercado

import (
	"fmt"

	"github.com/sebasfavaron/ml-scraper/pkg/collection"
	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
)

const imageHost = "http2.mlstatic.com"

// ParseItems maps the embedded state into canonical offers.
// Items missing any of name, link, or image are expected noise in scraped
// data and are dropped without comment.
func ParseItems(state *State) (offers []offer.Offer) {
	for i := range state.Data.Items {
		card := state.Data.Items[i].Card
		if card == nil {
			continue
		}

		var image string
		if len(card.Pictures.Pictures) > 0 && card.Pictures.Pictures[0].ID != "" {
			image = ImageURL(card.Pictures.Pictures[0].ID)
		}

		var link string
		if card.Metadata.URL != "" {
			link = "https://" + card.Metadata.URL
		}

		var (
			name     string
			price    float64
			discount float64
		)
		for j := range card.Components {
			switch card.Components[j].Type {
			case "title":
				name = card.Components[j].Title.Text
			case "price":
				price = card.Components[j].Price.CurrentPrice.Value
				discount = card.Components[j].Price.Discount.Value
			}
		}

		if collection.AnyEmpty(
			[]*string{
				&name,
				&link,
				&image,
			},
		) {
			continue
		}

		offers = append(offers, offer.Offer{
			Name:            name,
			Link:            link,
			Image:           image,
			Price:           price,
			DiscountPercent: discount,
			ProductID:       offer.ExtractProductID(link),
		})
	}

	return offers
}

// ImageURL synthesizes the CDN thumbnail URL for a picture or product ID
func ImageURL(id string) string {
	return fmt.Sprintf("https://%s/D_%s-O.jpg", imageHost, id)
}
