package repositories

import (
	"testing"

	"travel-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var packageListCols = []string{
	"package_id", "destination_id", "title", "description",
	"duration_days", "duration_nights", "price", "max_people",
	"included_services", "excluded_services", "itinerary", "image_url",
	"available", "created_at",
	"name", "country", "avg_rating", "review_count",
}

func TestPackageListAppliesAllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	minPrice, maxPrice := 100.0, 500.0
	available := true

	rows := sqlmock.NewRows(packageListCols).AddRow(
		1, 2, "Bali Getaway", "Sun and surf",
		4, 3, 350.0, 10,
		"hotel", "flights", "day 1: beach", "https://img/bali.jpg",
		true, "2025-05-01 09:00:00",
		"Bali", "Indonesia", 4.5, 12,
	)

	mock.ExpectQuery(`FROM packages p`).
		WithArgs("%Bali%", minPrice, maxPrice, available).
		WillReturnRows(rows)

	repo := PackageRepository{DB: db}
	list, err := repo.List(models.PackageFilter{
		Destination: "Bali",
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		Available:   &available,
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 package, got %d", len(list))
	}

	p := list[0]
	if p.ID != 1 || p.Title != "Bali Getaway" {
		t.Fatalf("unexpected package: %+v", p)
	}
	if p.DestinationName != "Bali" || p.Country != "Indonesia" {
		t.Fatalf("destination fields not scanned: %+v", p)
	}
	if p.AvgRating != 4.5 || p.ReviewCount != 12 {
		t.Fatalf("review aggregate not scanned: %+v", p)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageListNoFiltersSendsNoArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM packages p`).
		WillReturnRows(sqlmock.NewRows(packageListCols))

	repo := PackageRepository{DB: db}
	list, err := repo.List(models.PackageFilter{})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageUpdateKeepsStoredValuesForNilFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	price := 999.0
	// Only price is set; every other placeholder must be NULL so COALESCE
	// keeps the stored value.
	mock.ExpectExec(`UPDATE packages SET`).
		WithArgs(
			nil, nil, nil, nil, nil,
			price, nil, nil, nil, nil,
			nil, nil, int64(7),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := PackageRepository{DB: db}
	if err := repo.Update(7, models.PackageUpdate{Price: &price}); err != nil {
		t.Fatalf("update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
