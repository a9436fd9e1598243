package items

import (
	"slices"
	"strconv"

	"marketplace-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Jetons de tri acceptés par la recherche. Un jeton inconnu retombe sur newest.
const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortPriceLow      = "price_low"
	SortPriceHigh     = "price_high"
	SortMostViewed    = "most_viewed"
	SortMostFavorited = "most_favorited"
)

// ItemFilter porte les critères optionnels de la recherche d'annonces.
// Un champ vide ne filtre pas.
type ItemFilter struct {
	Query             string                 `json:"query"`
	CategoryID        string                 `json:"categoryId"`
	Conditions        []models.ItemCondition `json:"conditions"`
	MinPrice          *float64               `json:"minPrice"`
	MaxPrice          *float64               `json:"maxPrice"`
	Location          string                 `json:"location"`
	DeliveryAvailable bool                   `json:"deliveryAvailable"`
	PickupAvailable   bool                   `json:"pickupAvailable"`
	IsNegotiable      bool                   `json:"isNegotiable"`
	SortBy            string                 `json:"sortBy"`
}

// ParseItemFilter lit les critères depuis la query string. Les valeurs
// malformées ne font jamais échouer la requête : le critère est ignoré et un
// message de validation est remonté à l'appelant.
func ParseItemFilter(c *gin.Context) (ItemFilter, []string) {
	filter := ItemFilter{
		Query:             c.Query("query"),
		CategoryID:        c.Query("category"),
		Location:          c.Query("location"),
		DeliveryAvailable: c.Query("delivery_available") == "true",
		PickupAvailable:   c.Query("pickup_available") == "true",
		IsNegotiable:      c.Query("is_negotiable") == "true",
		SortBy:            c.Query("sort_by"),
	}
	warnings := []string{}

	for _, raw := range c.QueryArray("condition") {
		cond := models.ItemCondition(raw)
		if slices.Contains(models.ValidConditions(), cond) {
			filter.Conditions = append(filter.Conditions, cond)
		} else {
			warnings = append(warnings, "unknown condition ignored: "+raw)
		}
	}

	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			filter.MinPrice = &v
		} else {
			warnings = append(warnings, "invalid min_price ignored: "+raw)
		}
	}

	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			filter.MaxPrice = &v
		} else {
			warnings = append(warnings, "invalid max_price ignored: "+raw)
		}
	}

	return filter, warnings
}

// Apply ajoute les prédicats conjonctifs des critères renseignés. Le prédicat
// de base (status actif + approbation admin) est posé par l'appelant.
func (f *ItemFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Query != "" {
		like := "%" + f.Query + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ? OR location ILIKE ?)", like, like, like)
	}

	if f.CategoryID != "" {
		query = query.Where("category_id = ?", f.CategoryID)
	}

	if len(f.Conditions) > 0 {
		query = query.Where("condition IN ?", f.Conditions)
	}

	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}

	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	if f.Location != "" {
		query = query.Where("location ILIKE ?", "%"+f.Location+"%")
	}

	if f.DeliveryAvailable {
		query = query.Where("delivery_available = ?", true)
	}

	if f.PickupAvailable {
		query = query.Where("pickup_available = ?", true)
	}

	if f.IsNegotiable {
		query = query.Where("is_negotiable = ?", true)
	}

	return query
}

// OrderClause traduit le jeton de tri en clause ORDER BY. L'id sert de clé
// secondaire pour garder un ordre déterministe entre ex æquo.
func (f *ItemFilter) OrderClause() string {
	switch f.SortBy {
	case SortOldest:
		return "created_at ASC, id ASC"
	case SortPriceLow:
		return "price ASC, id DESC"
	case SortPriceHigh:
		return "price DESC, id DESC"
	case SortMostViewed:
		return "views DESC, id DESC"
	case SortMostFavorited:
		return "favorites DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}
