package main

import (
	"fmt"
	"log"
	"time"

	"tour-agency-server/models"
	"tour-agency-server/storage"
)

// Seeds a development database with a small demo data set. Safe to run
// more than once: rows are matched by their natural keys.
func main() {
	db := storage.InitializeDB()

	demoUser := models.User{
		Email:     "demo.client@example.com",
		FirstName: "Demo",
		LastName:  "Client",
		Role:      "client",
		TimeZone:  "Europe/Minsk",
	}
	if err := db.Where("email = ?", demoUser.Email).FirstOrCreate(&demoUser).Error; err != nil {
		log.Fatalf("seed user: %v", err)
	}

	birth := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	demoClient := models.ClientProfile{
		UserID:      demoUser.ID,
		Address:     "Minsk, Nezavisimosti ave 1",
		PhoneNumber: "+375 (29) 123-45-67",
		BirthDate:   &birth,
	}
	if err := db.Where("user_id = ?", demoUser.ID).FirstOrCreate(&demoClient).Error; err != nil {
		log.Fatalf("seed client profile: %v", err)
	}

	egypt := models.Country{Name: "Egypt", Description: "Red Sea resorts and ancient sites."}
	turkey := models.Country{Name: "Turkey", Description: "Mediterranean coast, all-inclusive classics."}
	for _, c := range []*models.Country{&egypt, &turkey} {
		if err := db.Where("name = ?", c.Name).FirstOrCreate(c).Error; err != nil {
			log.Fatalf("seed country %s: %v", c.Name, err)
		}
	}

	climates := []models.SeasonClimate{
		{CountryID: egypt.ID, Season: "summer", ClimateDescription: "Hot and dry, 35C+"},
		{CountryID: egypt.ID, Season: "winter", ClimateDescription: "Mild, around 22C"},
		{CountryID: turkey.ID, Season: "summer", ClimateDescription: "Hot, around 32C"},
	}
	for i := range climates {
		c := &climates[i]
		if err := db.Where("country_id = ? AND season = ?", c.CountryID, c.Season).FirstOrCreate(c).Error; err != nil {
			log.Fatalf("seed climate: %v", err)
		}
	}

	sunrise := models.Hotel{Name: "Sunrise Bay", CountryID: egypt.ID, Stars: 4, PricePerNight: 95}
	lagoon := models.Hotel{Name: "Blue Lagoon", CountryID: turkey.ID, Stars: 5, PricePerNight: 140}
	for _, h := range []*models.Hotel{&sunrise, &lagoon} {
		if err := db.Where("name = ?", h.Name).FirstOrCreate(h).Error; err != nil {
			log.Fatalf("seed hotel %s: %v", h.Name, err)
		}
	}

	start := time.Date(time.Now().Year(), time.June, 1, 0, 0, 0, 0, time.UTC)
	packages := []models.TourPackage{
		{Name: "Red Sea Week", HotelID: sunrise.ID, DurationWeeks: 1, Price: 1200, IsHotDeal: true, AdditionalServices: "airport transfer", StartDate: &start, ClientID: demoClient.ID},
		{Name: "Red Sea Fortnight", HotelID: sunrise.ID, DurationWeeks: 2, Price: 2100, StartDate: &start, ClientID: demoClient.ID},
		{Name: "Lagoon Escape", HotelID: lagoon.ID, DurationWeeks: 1, Price: 1800, IsHotDeal: true, AdditionalServices: "spa access, airport transfer", StartDate: &start, ClientID: demoClient.ID},
	}
	for i := range packages {
		p := &packages[i]
		if err := db.Where("name = ?", p.Name).FirstOrCreate(p).Error; err != nil {
			log.Fatalf("seed package %s: %v", p.Name, err)
		}
	}

	today := time.Now()
	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	promos := []models.PromoCode{
		{Code: "SUMMER10", Discount: 10, ValidFrom: from, ValidUntil: from.AddDate(0, 2, 0), IsActive: true},
		{Code: "EXPIRED5", Discount: 5, ValidFrom: from.AddDate(-1, 0, 0), ValidUntil: from.AddDate(0, -6, 0), IsActive: true},
	}
	for i := range promos {
		p := &promos[i]
		if err := db.Where("code = ?", p.Code).FirstOrCreate(p).Error; err != nil {
			log.Fatalf("seed promo %s: %v", p.Code, err)
		}
	}

	faqs := []models.FAQ{
		{Question: "How do I book a tour?", Answer: "Pick a package in the catalog and contact our managers."},
		{Question: "Can I pay in installments?", Answer: "Yes, for orders above 1000."},
	}
	for i := range faqs {
		f := &faqs[i]
		if err := db.Where("question = ?", f.Question).FirstOrCreate(f).Error; err != nil {
			log.Fatalf("seed faq: %v", err)
		}
	}

	fmt.Println("Demo data seeded successfully!")
}
