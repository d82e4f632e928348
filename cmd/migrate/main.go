package main

import (
	"log"
	"os"

	"rlc-hub-be/internal/model"
	"rlc-hub-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// Extensions and enums first; AutoMigrate doesn't manage these.
	log.Println("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('super_admin', 'tenant_admin', 'user'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('active', 'blocked'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'tenant_status') THEN CREATE TYPE tenant_status AS ENUM ('pending', 'provisioning', 'ready', 'failed'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'payment_status') THEN CREATE TYPE payment_status AS ENUM ('pending', 'success', 'failed'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.PasswordResetToken{},
		&model.Tenant{},
		&model.Project{},
		&model.IntegrationEvent{},
		&model.KeyDecision{},
		&model.KnowledgeGap{},
		&model.ArchiveDocument{},
		&model.DocumentEmbedding{},
		&model.CoachConversation{},
		&model.CoachMessage{},
		&model.ReportSession{},
		&model.TokenUsage{},
		&model.Feedback{},
		&model.SubscriptionPlan{},
		&model.TenantSubscription{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 3: Creating Indexes and Views...")

	postMigrationSQL := []string{
		// ANN index for archive search
		`CREATE INDEX IF NOT EXISTS idx_document_embeddings_vector
		 ON document_embeddings USING hnsw (embedding_value vector_cosine_ops);`,

		// View: searchable chunks joined with their live documents
		`CREATE OR REPLACE VIEW searchable_document_chunks AS
		 SELECT de.id AS chunk_id, de.document_id, ad.file_name, ad.project_id, de.chunk, de.embedding_value
		 FROM document_embeddings de
		 JOIN archive_documents ad ON ad.id = de.document_id
		 WHERE ad.deleted_at IS NULL;`,

		// View: subscription history per tenant
		`CREATE OR REPLACE VIEW tenant_payment_history AS
		 SELECT ts.tenant_id, t.name AS tenant_name, sp.name AS plan_name, sp.price, ts.payment_status, ts.order_id, ts.created_at AS payment_date
		 FROM tenant_subscriptions ts
		 JOIN tenants t ON ts.tenant_id = t.id
		 JOIN subscription_plans sp ON ts.plan_id = sp.id
		 ORDER BY ts.created_at DESC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
