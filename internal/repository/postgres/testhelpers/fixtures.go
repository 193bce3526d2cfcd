package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lib/pq"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetIDByName returns the ID of the row with the given name
func GetIDByName(db *sql.DB, table, name string) (int64, error) {
	var id int64
	query := fmt.Sprintf("SELECT id FROM %s WHERE name = $1", table)
	if err := db.QueryRowContext(context.Background(), query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("get %s ID by name %q: %w", table, name, err)
	}
	return id, nil
}

// GetOutletMenu returns the stored menu ID list of an outlet
func GetOutletMenu(db *sql.DB, outletID int64) ([]int64, error) {
	var menu pq.Int64Array
	err := db.QueryRowContext(context.Background(),
		"SELECT menu FROM food_outlets WHERE id = $1", outletID,
	).Scan(&menu)
	if err != nil {
		return nil, fmt.Errorf("get outlet %d menu: %w", outletID, err)
	}
	return menu, nil
}
