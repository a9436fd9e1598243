package main

import (
	"log"
	"os"

	"marketplace-backend/db"
	"marketplace-backend/routes"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API Marketplace Backend
// @version 1.0
// @description API de petites annonces entre particuliers
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	// Initialiser Cloudinary
	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Avertissement: Initialisation de Cloudinary a échoué: %v", err)
		log.Println("Le téléchargement d'images ne fonctionnera pas correctement.")
	}

	if os.Getenv("SEED_CATEGORIES") == "true" {
		if err := db.SeedCategories(); err != nil {
			log.Printf("Avertissement: L'initialisation des catégories a échoué: %v", err)
		}
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
