// Command bootstrap prepares the database: it creates the schema, seeds the
// first admin account, and optionally a handful of sample brands.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"brandhub/api/internal/config"
	"brandhub/api/internal/database"
	"brandhub/api/internal/ids"
	"brandhub/api/internal/log"
	"brandhub/api/internal/security"
)

const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id             TEXT PRIMARY KEY,
	username       TEXT NOT NULL UNIQUE,
	email          TEXT NOT NULL UNIQUE,
	password_hash  BYTEA NOT NULL,
	role           TEXT NOT NULL DEFAULT 'moderator',
	is_active      BOOLEAN NOT NULL DEFAULT TRUE,
	last_login     TIMESTAMPTZ,
	login_attempts INT NOT NULL DEFAULT 0,
	lock_until     TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS brands (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL UNIQUE,
	description       TEXT NOT NULL DEFAULT '',
	short_description TEXT NOT NULL DEFAULT '',
	logo              TEXT NOT NULL DEFAULT 'fas fa-tag',
	logo_type         TEXT NOT NULL DEFAULT 'icon',
	telegram          TEXT NOT NULL DEFAULT '',
	whatsapp          TEXT NOT NULL DEFAULT '',
	website           TEXT NOT NULL DEFAULT '',
	category          TEXT NOT NULL DEFAULT 'giyim',
	is_active         BOOLEAN NOT NULL DEFAULT TRUE,
	sort_order        INT NOT NULL DEFAULT 0,
	tags              TEXT[] NOT NULL DEFAULT '{}',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_brands_category ON brands (category);
CREATE INDEX IF NOT EXISTS idx_brands_is_active ON brands (is_active);
CREATE INDEX IF NOT EXISTS idx_brands_sort_order ON brands (sort_order);
`

func main() {
	var (
		adminUsername = flag.String("admin-username", "admin", "username for the seed admin")
		adminEmail    = flag.String("admin-email", "admin@example.com", "email for the seed admin")
		adminPassword = flag.String("admin-password", "", "password for the seed admin (required)")
		seedBrands    = flag.Bool("seed-brands", false, "insert a few sample brands")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := log.New(cfg.Environment)

	if *adminPassword == "" {
		logger.Fatal().Msg("-admin-password is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Fatal().Err(err).Msg("create schema failed")
	}
	logger.Info().Msg("schema ready")

	hash, err := security.HashPassword(*adminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash admin password failed")
	}

	const insertAdmin = `
		INSERT INTO admins (id, username, email, password_hash, role, is_active, login_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'admin', TRUE, 0, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`
	cmd, err := pool.Exec(ctx, insertAdmin, ids.New(), *adminUsername, *adminEmail, hash)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed admin failed")
	}
	if cmd.RowsAffected() == 0 {
		logger.Info().Str("email", *adminEmail).Msg("admin already present, skipped")
	} else {
		logger.Info().Str("email", *adminEmail).Msg("admin created")
	}

	if *seedBrands {
		seedSampleBrands(ctx, pool, logger)
	}
}

type sampleBrand struct {
	name        string
	description string
	category    string
	sortOrder   int
	tags        []string
}

var sampleBrands = []sampleBrand{
	{"Anadolu Tekstil", "Klasik ve modern giyim koleksiyonları", "giyim", 1, []string{"giyim", "klasik"}},
	{"Marmara Ayakkabı", "El yapımı deri ayakkabılar", "ayakkabı", 2, []string{"deri", "el yapımı"}},
	{"Ege Ev Tekstili", "Nevresim ve perde üretimi", "ev tekstili", 3, []string{"nevresim", "perde"}},
}

func seedSampleBrands(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) {
	const insertBrand = `
		INSERT INTO brands (id, name, description, category, sort_order, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING
	`

	seeded := 0
	for _, brand := range sampleBrands {
		cmd, err := pool.Exec(ctx, insertBrand,
			ids.New(), brand.name, brand.description, brand.category, brand.sortOrder, brand.tags)
		if err != nil {
			logger.Fatal().Err(err).Str("brand", brand.name).Msg("seed brand failed")
		}
		seeded += int(cmd.RowsAffected())
	}
	logger.Info().Int("seeded", seeded).Msg("sample brands ready")
}
