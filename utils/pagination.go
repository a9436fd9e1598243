package utils

import (
	"strconv"
)

// ItemsPerPage est la taille de page fixe des listes d'annonces.
const ItemsPerPage = 12

// ParsePage convertit le paramètre page de la requête. Une valeur absente,
// non numérique ou inférieure à 1 donne la page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ClampPage ramène la page demandée dans [1, dernière page]. Une requête
// au-delà de la dernière page retourne la dernière page, pas une erreur.
func ClampPage(page int, total int64, perPage int) (int, int) {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page, totalPages
}
