package vivinoweb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cellarbook.org/CellarBook/pkg/integrations/vivino-web"
	"cellarbook.org/CellarBook/pkg/model"
)

func TestWineFromScraped_FullDetail(t *testing.T) {
	scraped := WineScraped{
		IDLink:  "/wines/1234567",
		Name:    "Sassicaia 2018",
		Winery:  "Tenuta San Guido",
		Region:  "Bolgheri",
		Country: "Italy",
	}

	detail := WineJSON{}
	detail.Description = "Legendary Super Tuscan from a stellar vintage."
	detail.Brand.Name = "Tenuta San Guido"
	detail.Image.ContentURL = "https://images.example.com/sassicaia.png"
	detail.Category = "Red wine"
	detail.AggregateRating.RatingValue = 4.6
	detail.AggregateRating.ReviewCount = 28411

	wine := WineFromScraped(scraped, detail)

	assert.Equal(t, "Sassicaia 2018", wine.Name)
	require.NotNil(t, wine.Vintage)
	assert.Equal(t, 2018, *wine.Vintage)
	require.NotNil(t, wine.Type)
	assert.Equal(t, model.WineTypeRed, *wine.Type)
	require.NotNil(t, wine.Producer)
	assert.Equal(t, "Tenuta San Guido", *wine.Producer)
	require.NotNil(t, wine.Region)
	assert.Equal(t, "Bolgheri", *wine.Region)
	require.NotNil(t, wine.Country)
	assert.Equal(t, "Italy", *wine.Country)
	require.NotNil(t, wine.RatingNotes)
	assert.Contains(t, *wine.RatingNotes, "Super Tuscan")
	require.NotNil(t, wine.ImageURL)
	assert.Equal(t, "https://images.example.com/sassicaia.png", *wine.ImageURL)
	require.NotNil(t, wine.RatingMin)
	assert.Equal(t, 92, *wine.RatingMin)
	assert.Equal(t, 92, *wine.RatingMax)
}

func TestWineFromScraped_SparseDetail(t *testing.T) {
	scraped := WineScraped{
		IDLink: "/wines/7654321",
		Name:   "House White",
	}

	wine := WineFromScraped(scraped, WineJSON{})

	assert.Equal(t, "House White", wine.Name)
	assert.Nil(t, wine.Vintage)
	assert.Nil(t, wine.Producer)
	assert.Nil(t, wine.Region)
	assert.Nil(t, wine.Country)
	assert.Nil(t, wine.RatingNotes)
	assert.Nil(t, wine.ImageURL)
	assert.Nil(t, wine.RatingMin)
	assert.Nil(t, wine.RatingMax)
}

func TestWineFromScraped_BrandFallsBackWhenWineryMissing(t *testing.T) {
	scraped := WineScraped{Name: "Pommard 1er Cru"}
	detail := WineJSON{}
	detail.Brand.Name = "Domaine de Courcel"

	wine := WineFromScraped(scraped, detail)

	require.NotNil(t, wine.Producer)
	assert.Equal(t, "Domaine de Courcel", *wine.Producer)
}

func TestExtractVintage(t *testing.T) {
	tests := []struct {
		name     string
		expected *int
	}{
		{"Sassicaia 2018", intPtr(2018)},
		{"Château Margaux 1982", intPtr(1982)},
		{"NV Champagne Brut", nil},
		{"Cuvée 100 Reserve", nil},
		{"Port 1899 Colheita", intPtr(1899)},
	}

	for _, test := range tests {
		vintage := ExtractVintage(test.name)
		if test.expected == nil {
			assert.Nil(t, vintage, test.name)
		} else {
			require.NotNil(t, vintage, test.name)
			assert.Equal(t, *test.expected, *vintage, test.name)
		}
	}
}

func intPtr(value int) *int {
	return &value
}
