package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"real-estate-listings/internal/config"
	"real-estate-listings/internal/database"
	"real-estate-listings/internal/models"
)

var (
	seedCount  int
	configPath string
)

var propertyTypes = []string{"house", "condo", "townhouse", "apartment", "single-family", "loft"}

var adjectives = []string{"Modern", "Cozy", "Spacious", "Charming", "Luxury", "Historic"}

var cities = []struct {
	City  string
	State string
	Zip   string
}{
	{"San Francisco", "CA", "94102"},
	{"Seattle", "WA", "98101"},
	{"Austin", "TX", "78701"},
	{"Denver", "CO", "80202"},
	{"Portland", "OR", "97201"},
	{"Chicago", "IL", "60614"},
	{"Miami", "FL", "33139"},
	{"Boston", "MA", "02101"},
}

var streets = []string{"Main St", "Oak Avenue", "Maple Street", "Ridge Road", "Park Place", "Elm Street", "Lakeview Dr", "Heritage Lane"}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the listings database with sample properties",
		RunE:  runSeed,
	}
	rootCmd.Flags().IntVar(&seedCount, "count", 100, "Number of properties to create")
	rootCmd.Flags().StringVar(&configPath, "config", "config/app.yaml", "Path to the config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := database.New(appConfig.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		return err
	}

	log.Printf("Seeding %d properties...", seedCount)

	created := 0
	for i := 0; i < seedCount; i++ {
		property := randomProperty()
		if err := db.DB().Create(property).Error; err != nil {
			return err
		}
		created++
		if created%50 == 0 {
			log.Printf("Created %d properties...", created)
		}
	}

	log.Printf("Done. Created %d properties.", created)
	return nil
}

func randomProperty() *models.Property {
	bedrooms := 1 + rand.Intn(6)
	bathrooms := float64(10+rand.Intn(40)) / 10
	sqft := 600 + rand.Intn(5400)
	lot := 1000 + rand.Intn(19000)
	year := 1950 + rand.Intn(74)
	loc := cities[rand.Intn(len(cities))]
	propertyType := propertyTypes[rand.Intn(len(propertyTypes))]

	property := &models.Property{
		Title: fmt.Sprintf("%dBR %s %s",
			bedrooms, adjectives[rand.Intn(len(adjectives))], propertyType),
		Description:  "A well-maintained home close to schools, parks, and transit.",
		Address:      fmt.Sprintf("%d %s", 100+rand.Intn(900), streets[rand.Intn(len(streets))]),
		City:         loc.City,
		State:        loc.State,
		Zipcode:      loc.Zip,
		Price:        150_000 + rand.Intn(2_350)*1000,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		SquareFeet:   &sqft,
		LotSize:      &lot,
		YearBuilt:    &year,
		PropertyType: propertyType,
		ListingType:  "sale",
		Status:       models.PropertyStatusActive,
	}

	// 3-6 placeholder images, first one primary
	numImages := 3 + rand.Intn(4)
	for j := 0; j < numImages; j++ {
		property.Images = append(property.Images, models.PropertyImage{
			URL:       fmt.Sprintf("https://picsum.photos/800/540?random=%d", rand.Int31()),
			IsPrimary: j == 0,
		})
	}

	return property
}
