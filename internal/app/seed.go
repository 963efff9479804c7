package app

import (
	"context"
	"database/sql"
	"fmt"
)

// seedGenomeDB populates the warehouse with a small genomic data set the
// embedded templates run against. Idempotent — skips when the genes table
// already exists.
func seedGenomeDB(ctx context.Context, db *sql.DB) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT count(*) > 0 FROM information_schema.tables WHERE table_name = 'genes'`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check genes table: %w", err)
	}
	if exists {
		return nil
	}

	stmts := []string{
		`CREATE TABLE genes (
			id INTEGER PRIMARY KEY,
			symbol VARCHAR NOT NULL,
			organism VARCHAR NOT NULL,
			chromosome VARCHAR,
			length INTEGER
		)`,
		`CREATE TABLE proteins (
			accession VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			gene_id INTEGER
		)`,
		`CREATE TABLE protein_interactions (
			protein_a VARCHAR NOT NULL,
			protein_b VARCHAR NOT NULL,
			interaction_type VARCHAR NOT NULL
		)`,
		`INSERT INTO genes VALUES
			(1, 'zen',  'D. melanogaster', '3R', 1331),
			(2, 'eve',  'D. melanogaster', '2R', 1746),
			(3, 'bcd',  'D. melanogaster', '3R', 3607),
			(4, 'ftz',  'D. melanogaster', '3R', 1930),
			(5, 'hb',   'D. melanogaster', '3R', 3198),
			(6, 'Kr',   'D. melanogaster', '2R', 2879),
			(7, 'kni',  'D. melanogaster', '3L', 2352),
			(8, 'gt',   'D. melanogaster', 'X',  1907),
			(9, 'tll',  'D. melanogaster', '3R', 2148),
			(10, 'hkb', 'D. melanogaster', '3R', 1621)`,
		`INSERT INTO proteins VALUES
			('P09089', 'Zerknullt',    1),
			('P06602', 'Even-skipped', 2),
			('P09081', 'Bicoid',       3),
			('P02835', 'Fushi tarazu', 4),
			('P05084', 'Hunchback',    5),
			('P07247', 'Kruppel',      6),
			('P13285', 'Knirps',       7),
			('Q04865', 'Giant',        8)`,
		`INSERT INTO protein_interactions VALUES
			('P09081', 'P05084', 'physical'),
			('P05084', 'P07247', 'genetic'),
			('P07247', 'P13285', 'genetic'),
			('P06602', 'P02835', 'physical'),
			('P09081', 'P06602', 'genetic'),
			('Q04865', 'P07247', 'genetic')`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed warehouse: %w", err)
		}
	}
	return nil
}
