// Command seed populates the blog collection with sample posts so a
// fresh database has something to render.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/liyedanpdx/WEB602-Project-2/internal/config"
	"github.com/liyedanpdx/WEB602-Project-2/internal/database"
	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/repository"
)

var samplePosts = []model.Post{
	{
		Title:       "Slow-Braised Short Ribs",
		Description: "A Sunday project worth every minute: short ribs braised until they fall apart.",
		ImageURL:    "/public/img/short-ribs.jpg",
		Date:        "January 12, 2025",
		Content:     "Season the ribs generously and sear them hard before anything else touches the pot. Deglaze with red wine, add stock, aromatics, and let the oven do the rest for three hours.",
		Author:      "Dan Li",
	},
	{
		Title:       "Weeknight Miso Ramen",
		Description: "Restaurant-depth broth on a Tuesday schedule.",
		ImageURL:    "/public/img/miso-ramen.jpg",
		Date:        "February 3, 2025",
		Content:     "The shortcut is white miso whisked into good chicken stock with a spoonful of sesame paste. Soft egg, scallions, and whatever vegetables the fridge offers.",
		Author:      "Dan Li",
	},
	{
		Title:       "Sourdough for Beginners",
		Description: "Everything I wish someone had told me before my first loaf.",
		ImageURL:    "/public/img/sourdough.jpg",
		Date:        "March 21, 2025",
		Content:     "Your starter is ready when it doubles reliably, not when the calendar says so. Wet hands beat floured hands for folding, and a dutch oven forgives almost every other mistake.",
		Author:      "Dan Li",
	},
}

func main() {
	clean := flag.Bool("clean", false, "Delete existing posts before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if *clean {
		if _, err := db.ExecContext(ctx, `DELETE FROM blog`); err != nil {
			log.Fatalf("Failed to clean blog table: %v", err)
		}
		log.Println("Cleared existing posts")
	}

	posts := repository.NewPostRepository(db)
	for i := range samplePosts {
		p := samplePosts[i]
		if err := posts.Create(ctx, &p); err != nil {
			log.Fatalf("Failed to insert post %q: %v", p.Title, err)
		}
		log.Printf("Inserted post %d: %s", p.ID, p.Title)
	}

	log.Printf("Done: %d posts seeded", len(samplePosts))
}
