package vivinoweb

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cellarbook.org/CellarBook/pkg/model"
)

type WineJSON struct {
	Description string `json:"description"`
	Brand       struct {
		Name string `json:"name"`
	} `json:"brand"`
	Image struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Category        string `json:"category"`
	AggregateRating struct {
		RatingValue float64 `json:"ratingValue"`
		ReviewCount int     `json:"reviewCount"`
	} `json:"aggregateRating"`
}

type WineScraped struct {
	IDLink  string `attr:"href"                      selector:"a.wine-card__name-link"`
	Name    string `selector:".wine-card__name"`
	Winery  string `selector:".wine-card__winery"`
	Region  string `selector:".wine-card__region a"`
	Country string `selector:".wine-card__country"`
}

type scrapeResults struct {
	wines []model.Wine
	err   error
}

var vintagePattern = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)

func (v *VivinoWebIntegration) FindWine(name string) ([]model.Wine, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains("www.vivino.com", "vivino.com"),
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	var (
		errs         error
		results      []model.Wine
		scrapedPages []WineScraped
	)

	collector.OnHTML(".wine-card", func(element *colly.HTMLElement) {
		scraped := WineScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			v.logger.Error("failed to unmarshal scraped wine", zap.Error(err))

			return
		}

		v.logger.Info("successfully scraped item from results", zap.String("link", scraped.IDLink), zap.String("name", scraped.Name))

		scrapedPages = append(scrapedPages, scraped)
	})

	collector.OnError(func(response *colly.Response, err error) {
		v.logger.Error("error while scraping wine search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	v.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit("https://www.vivino.com/search/wines?q="+name))

	wineChan := make(chan scrapeResults, len(scrapedPages))

	for _, scraped := range scrapedPages {
		go v.getWineData(collector.Clone(), scraped, wineChan)
	}

	detailed, err := collectResults(wineChan, len(scrapedPages))
	results = append(results, detailed...)
	multierr.AppendInto(&errs, err)

	v.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

// collectResults drains one result per detail-page goroutine; it is the only
// place the merged slice and error are touched.
func collectResults(wineChan <-chan scrapeResults, pending int) ([]model.Wine, error) {
	var (
		errs    error
		results []model.Wine
	)

	for ; pending > 0; pending-- {
		scraped := <-wineChan
		results = append(results, scraped.wines...)
		multierr.AppendInto(&errs, scraped.err)
	}

	return results, errs
}

func (v *VivinoWebIntegration) getWineData(detailCollector *colly.Collector, scraped WineScraped, wineChan chan scrapeResults) {
	detail := WineJSON{}

	detailCollector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		_ = json.Unmarshal([]byte(element.Text), &detail)

		v.logger.Info("successfully scraped wine from JSON data", zap.String("name", scraped.Name), zap.String("description", detail.Description))
	})

	err := detailCollector.Visit("https://www.vivino.com" + scraped.IDLink)

	wineChan <- scrapeResults{wines: []model.Wine{WineFromScraped(scraped, detail)}, err: err}
}

// WineFromScraped maps a search hit and its detail-page JSON onto a catalog
// record. Missing JSON fields fall back to what the search card carried.
func WineFromScraped(scraped WineScraped, detail WineJSON) model.Wine {
	wine := model.Wine{
		Name:    strings.TrimSpace(scraped.Name),
		Vintage: ExtractVintage(scraped.Name),
		Type:    wineTypeFromCategory(detail.Category),
	}

	if winery := strings.TrimSpace(scraped.Winery); winery != "" {
		wine.Producer = pointy.String(winery)
	} else if detail.Brand.Name != "" {
		wine.Producer = pointy.String(detail.Brand.Name)
	}

	if region := strings.TrimSpace(scraped.Region); region != "" {
		wine.Region = pointy.String(region)
	}

	if country := strings.TrimSpace(scraped.Country); country != "" {
		wine.Country = pointy.String(country)
	}

	if detail.Description != "" {
		wine.RatingNotes = pointy.String(detail.Description)
	}

	if detail.Image.ContentURL != "" {
		wine.ImageURL = pointy.String(detail.Image.ContentURL)
	}

	if rating := ratingToScale(detail.AggregateRating.RatingValue); rating != nil {
		wine.RatingMin = rating
		wine.RatingMax = rating
	}

	return wine
}

// ExtractVintage pulls a plausible vintage year out of a wine's display name.
func ExtractVintage(name string) *int {
	match := vintagePattern.FindString(name)
	if match == "" {
		return nil
	}

	vintage, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}

	return &vintage
}

// ratingToScale converts a five-star community rating to the 0-100 scale.
func ratingToScale(rating float64) *int {
	if rating <= 0 || rating > 5 {
		return nil
	}

	scaled := int(rating * 20)

	return &scaled
}

func wineTypeFromCategory(category string) *model.WineType {
	normalized := strings.ToLower(category)

	for _, wineType := range model.WineTypes() {
		if strings.Contains(normalized, strings.ToLower(string(wineType))) {
			return pointy.Pointer(wineType)
		}
	}

	return nil
}
