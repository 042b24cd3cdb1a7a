package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/AgusMolinaCode/Forecast_Api.git/internal/models"
)

const newsCacheTTL = 10 * time.Minute

// Categorías genéricas usadas cuando la moneda no tiene noticias propias
const fallbackNewsCategories = "Market,Trading,Blockchain"

const maxNewsItems = 6

// Caché de noticias por moneda
var (
	newsCache      = make(map[string]cachedNews)
	newsCacheMutex sync.RWMutex
)

type cachedNews struct {
	Items     []models.NewsItem
	Timestamp time.Time
}

// GetNews obtiene las últimas noticias de una moneda desde CryptoCompare.
// Si no hay noticias específicas cae a las categorías genéricas de mercado.
func GetNews(symbol string) ([]models.NewsItem, error) {
	symbol = strings.ToUpper(symbol)

	newsCacheMutex.RLock()
	if cached, exists := newsCache[symbol]; exists {
		if time.Since(cached.Timestamp) < newsCacheTTL {
			newsCacheMutex.RUnlock()
			return cached.Items, nil
		}
	}
	newsCacheMutex.RUnlock()

	items, err := fetchNewsByCategory(symbol)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		log.Printf("Sin noticias para %s, usando categorías genéricas", symbol)
		items, err = fetchNewsByCategory(fallbackNewsCategories)
		if err != nil {
			return nil, err
		}
	}

	if len(items) > 0 {
		newsCacheMutex.Lock()
		newsCache[symbol] = cachedNews{Items: items, Timestamp: time.Now()}
		newsCacheMutex.Unlock()
	}

	return items, nil
}

func fetchNewsByCategory(category string) ([]models.NewsItem, error) {
	url := fmt.Sprintf("https://min-api.cryptocompare.com/data/v2/news/?lang=EN&categories=%s", category)

	resp, err := httpClient.Get(url)
	if err != nil {
		log.Printf("Error al obtener noticias de %s: %v", category, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error al leer respuesta de noticias para %s: %v", category, err)
		return nil, err
	}

	var result struct {
		Data []struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			URL         string `json:"url"`
			ImageURL    string `json:"imageurl"`
			PublishedOn int64  `json:"published_on"`
			SourceInfo  struct {
				Name string `json:"name"`
			} `json:"source_info"`
		} `json:"Data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Error al parsear noticias para %s: %v", category, err)
		return nil, err
	}

	items := []models.NewsItem{}
	for _, item := range result.Data {
		if len(items) >= maxNewsItems {
			break
		}
		items = append(items, models.NewsItem{
			ID:          item.ID,
			Title:       item.Title,
			URL:         item.URL,
			ImageURL:    item.ImageURL,
			Source:      item.SourceInfo.Name,
			PublishedOn: item.PublishedOn,
		})
	}
	return items, nil
}
