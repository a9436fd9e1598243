package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestClampPage(t *testing.T) {
	// Aucun résultat : une seule page vide
	page, totalPages := ClampPage(5, 0, 12)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, totalPages)

	// 25 annonces sur des pages de 12 : 3 pages
	page, totalPages = ClampPage(2, 25, 12)
	assert.Equal(t, 2, page)
	assert.Equal(t, 3, totalPages)

	// Page au-delà de la dernière : ramenée à la dernière
	page, totalPages = ClampPage(99, 25, 12)
	assert.Equal(t, 3, page)
	assert.Equal(t, 3, totalPages)

	// Dernière page exactement pleine
	page, totalPages = ClampPage(2, 24, 12)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, totalPages)
}
