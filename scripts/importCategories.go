package main

import (
	"encoding/csv"
	"log"
	"os"
	"strings"

	"skillora/config"
	"skillora/database"
	"skillora/models"
	"skillora/utils"
)

// Bulk-imports catalog categories from Categories.csv. Existing categories
// are matched by slug and updated in place, so the import is re-runnable.
func main() {
	config.Load()
	database.ConnectDb()

	file, err := os.Open("Categories.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	db := database.Database.Db
	for _, row := range records[1:] {
		name := getField(row, headerIndex, "name")
		if name == "" {
			skipped++
			continue
		}

		category := models.Category{
			Name:        name,
			Slug:        utils.Slugify(name),
			Description: getField(row, headerIndex, "description"),
			IconName:    getField(row, headerIndex, "iconName"),
			ColorClass:  getField(row, headerIndex, "colorClass"),
		}

		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == nil {
			existing.Name = category.Name
			existing.Description = category.Description
			existing.IconName = category.IconName
			existing.ColorClass = category.ColorClass
			if err := db.Save(&existing).Error; err != nil {
				log.Printf("Failed to update category %q: %v", name, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := db.Create(&category).Error; err != nil {
			log.Printf("Failed to insert category %q: %v", name, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import complete: %d inserted, %d updated, %d skipped", inserted, updated, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
